package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/budget-buzz/internal/auth"
	"github.com/Veraticus/budget-buzz/internal/service"
)

func TestAuthSignInPromptsForMissingFields(t *testing.T) {
	kv := setupCLI(t)

	out := mustRun(t, "auth", "whoami")
	assert.Contains(t, out, "Not signed in")

	out, err := runBuzz(t, "bee@example.com\nhunter2\n", "auth", "signin")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Signed in as "+auth.SignInFullName+" (bee@example.com)")

	email, found, err := kv.Get(context.Background(), service.KeyUserEmail)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "bee@example.com", string(email))

	out = mustRun(t, "auth", "whoami")
	assert.Contains(t, out, auth.SignInFullName)
	assert.Contains(t, out, "<bee@example.com>")

	out = mustRun(t, "auth", "signout")
	assert.Contains(t, out, "Signed out")
	out = mustRun(t, "auth", "whoami")
	assert.Contains(t, out, "Not signed in")

	out = mustRun(t, "auth", "signout")
	assert.Contains(t, out, "Not signed in.")
}

func TestAuthSignInValidation(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{name: "missing password", stdin: "\n", args: []string{"--email", "bee@example.com"}, want: auth.MsgFillAllFields},
		{name: "invalid email", args: []string{"--email", "bee", "--password", "pw"}, want: auth.MsgInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := setupCLI(t)
			_, err := runBuzz(t, tt.stdin, append([]string{"auth", "signin"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			keys, err := kv.Keys(context.Background())
			require.NoError(t, err)
			assert.Empty(t, keys)
		})
	}
}

func TestAuthSignUpValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "weak password", args: []string{"-n", "Ada", "-e", "ada@example.com", "-p", "password", "--confirm", "password"}, want: auth.MsgWeakPassword},
		{name: "mismatch", args: []string{"-n", "Ada", "-e", "ada@example.com", "-p", "Engine123", "--confirm", "Engine124"}, want: auth.MsgPasswordMismatch},
		{name: "bad email", args: []string{"-n", "Ada", "-e", "ada", "-p", "Engine123", "--confirm", "Engine123"}, want: auth.MsgInvalidSignUpMail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLI(t)
			_, err := runBuzz(t, "", append([]string{"auth", "signup"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestAuthSignUp(t *testing.T) {
	setupCLI(t)

	out := mustRun(t, "auth", "signup", "-n", "Ada Lovelace", "-e", "ada@example.com", "-p", "Engine123", "--confirm", "Engine123")
	assert.Contains(t, out, "Welcome, Ada Lovelace!")

	out = mustRun(t, "auth", "whoami")
	assert.Contains(t, out, "Ada Lovelace")
}

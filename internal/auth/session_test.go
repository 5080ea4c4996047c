package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/budget-buzz/internal/service"
	"github.com/Veraticus/budget-buzz/internal/storage"
)

func newTestManager(t *testing.T, kv service.KeyValueStore, opts ...Option) *Manager {
	t.Helper()
	opts = append([]Option{WithDelay(0), WithIDGenerator(func() string { return "user-1" })}, opts...)
	m, err := NewManager(context.Background(), kv, opts...)
	require.NoError(t, err)
	return m
}

func TestManager_SignInPersistsAndRestores(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStorage()
	m := newTestManager(t, kv)
	assert.False(t, m.IsAuthenticated())

	user, err := m.SignIn(ctx, "ann@example.com", "anything")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.Equal(t, SignInFullName, user.FullName)
	assert.True(t, m.IsAuthenticated())

	restored := newTestManager(t, kv)
	current, ok := restored.Current()
	require.True(t, ok)
	assert.Equal(t, user, current)
}

func TestManager_SignUpUsesFullName(t *testing.T) {
	m := newTestManager(t, storage.NewMemoryStorage())

	user, err := m.SignUp(context.Background(), "bo@example.com", "Secret123", "Bo Diddley")
	require.NoError(t, err)
	assert.Equal(t, "Bo Diddley", user.FullName)
}

func TestManager_SignOutClearsSession(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStorage()
	m := newTestManager(t, kv)
	_, err := m.SignIn(ctx, "ann@example.com", "pw")
	require.NoError(t, err)

	require.NoError(t, m.SignOut(ctx))
	assert.False(t, m.IsAuthenticated())

	keys, err := kv.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
	assert.False(t, newTestManager(t, kv).IsAuthenticated())
}

func TestManager_PartialSessionIsNotRestored(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStorage()
	require.NoError(t, kv.Set(ctx, service.KeyUserEmail, []byte("ann@example.com")))
	require.NoError(t, kv.Set(ctx, service.KeyUserID, []byte("user-1")))

	assert.False(t, newTestManager(t, kv).IsAuthenticated())
}

func TestManager_ConcurrentSignInIsRejected(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, storage.NewMemoryStorage(), WithDelay(200*time.Millisecond))

	done := make(chan error, 1)
	go func() {
		_, err := m.SignIn(ctx, "first@example.com", "pw")
		done <- err
	}()
	require.Eventually(t, m.IsLoading, time.Second, time.Millisecond)

	_, err := m.SignIn(ctx, "second@example.com", "pw")
	assert.ErrorIs(t, err, ErrAuthInProgress)

	require.NoError(t, <-done)
	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "first@example.com", current.Email)
	assert.False(t, m.IsLoading())
}

func TestManager_CancelledSignInLeavesNoSession(t *testing.T) {
	kv := storage.NewMemoryStorage()
	m := newTestManager(t, kv, WithDelay(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := m.SignIn(ctx, "ann@example.com", "pw")

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, m.IsAuthenticated())
	assert.False(t, m.IsLoading())
	keys, err := kv.Keys(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}

// Package auth holds the signed-in user. Credentials are never verified: a sign-in
// fabricates a user after a short delay and persists it next to the ledger.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Veraticus/budget-buzz/internal/model"
	"github.com/Veraticus/budget-buzz/internal/service"
)

// DefaultDelay is the simulated round trip of a sign-in or sign-up.
const DefaultDelay = 1500 * time.Millisecond

// SignInFullName is the display name given to every signed-in user.
const SignInFullName = "Test User"

// ErrAuthInProgress is returned when a sign-in or sign-up is already running.
var ErrAuthInProgress = errors.New("authentication already in progress")

var sessionKeys = []string{service.KeyUserEmail, service.KeyUserID, service.KeyUserFullName}

// Option configures a Manager.
type Option func(*Manager)

// WithDelay overrides the simulated round trip.
func WithDelay(d time.Duration) Option {
	return func(m *Manager) {
		m.delay = d
	}
}

// WithIDGenerator overrides how user ids are fabricated.
func WithIDGenerator(newID func() string) Option {
	return func(m *Manager) {
		m.newID = newID
	}
}

// Manager tracks whether a user is signed in. It is safe for concurrent use.
type Manager struct {
	kv      service.KeyValueStore
	newID   func() string
	user    *model.User
	delay   time.Duration
	mu      sync.Mutex
	loading bool
}

// NewManager creates a manager and restores a persisted session when the email,
// id and full name are all present.
func NewManager(ctx context.Context, kv service.KeyValueStore, opts ...Option) (*Manager, error) {
	m := &Manager{
		kv:    kv,
		delay: DefaultDelay,
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(m)
	}

	user, err := m.restore(ctx)
	if err != nil {
		return nil, err
	}
	m.user = user
	return m, nil
}

func (m *Manager) restore(ctx context.Context) (*model.User, error) {
	values := make([]string, len(sessionKeys))
	for i, key := range sessionKeys {
		data, found, err := m.kv.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to restore session: %w", err)
		}
		if !found {
			return nil, nil
		}
		values[i] = string(data)
	}
	return &model.User{Email: values[0], ID: values[1], FullName: values[2]}, nil
}

// SignIn signs in as email. The password is accepted as given.
func (m *Manager) SignIn(ctx context.Context, email, _ string) (model.User, error) {
	return m.authenticate(ctx, email, SignInFullName)
}

// SignUp registers and signs in a new user.
func (m *Manager) SignUp(ctx context.Context, email, _, fullName string) (model.User, error) {
	return m.authenticate(ctx, email, fullName)
}

func (m *Manager) authenticate(ctx context.Context, email, fullName string) (model.User, error) {
	if err := m.begin(); err != nil {
		return model.User{}, err
	}
	defer m.end()

	timer := time.NewTimer(m.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return model.User{}, ctx.Err()
	case <-timer.C:
	}

	user := model.User{
		ID:       m.newID(),
		Email:    strings.TrimSpace(email),
		FullName: strings.TrimSpace(fullName),
	}
	if err := m.persist(ctx, user); err != nil {
		return model.User{}, err
	}

	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()
	return user, nil
}

func (m *Manager) persist(ctx context.Context, user model.User) error {
	values := []string{user.Email, user.ID, user.FullName}
	for i, key := range sessionKeys {
		if err := m.kv.Set(ctx, key, []byte(values[i])); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
	}
	return nil
}

func (m *Manager) begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loading {
		return ErrAuthInProgress
	}
	m.loading = true
	return nil
}

func (m *Manager) end() {
	m.mu.Lock()
	m.loading = false
	m.mu.Unlock()
}

// SignOut forgets the current user and removes the persisted session.
func (m *Manager) SignOut(ctx context.Context) error {
	if err := m.kv.Delete(ctx, sessionKeys...); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()
	return nil
}

// Current returns the signed-in user.
func (m *Manager) Current() (model.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return model.User{}, false
	}
	return *m.user, true
}

// IsAuthenticated reports whether a user is signed in.
func (m *Manager) IsAuthenticated() bool {
	_, ok := m.Current()
	return ok
}

// IsLoading reports whether a sign-in or sign-up is running.
func (m *Manager) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

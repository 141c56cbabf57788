// ABOUTME: Profile manager for the authenticated user
// ABOUTME: Fetches and edits the in-memory profile, guarded by session state

package profile

import (
	"context"
	"errors"
	"sync"

	"github.com/rantiputri/booktrack/internal/api"
	"github.com/rantiputri/booktrack/internal/session"
)

// ErrMissingFields is returned when a profile edit has an empty field.
// The request never reaches the server.
var ErrMissingFields = errors.New("All fields are required.")

// Manager holds the user profile in memory for the current session.
// It is re-fetched on each session activation, never persisted.
type Manager struct {
	c    *api.Client
	sess *session.Manager

	mu   sync.Mutex
	user *api.User
}

// NewManager creates a profile manager backed by the given gateway and session
func NewManager(c *api.Client, sess *session.Manager) *Manager {
	return &Manager{c: c, sess: sess}
}

// Load fetches the profile if a token is present. No token yields a nil
// profile without an error: logged out is not a failure.
func (m *Manager) Load(ctx context.Context) (*api.User, error) {
	if m.sess.Token() == "" {
		return nil, nil
	}

	user, err := m.c.Profile(ctx)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.user = user
	m.mu.Unlock()
	return user, nil
}

// Clear drops the cached profile. Called when the session ends so the next
// user never sees the previous one's data.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()
}

// Current returns the last loaded profile, or nil when none is loaded
func (m *Manager) Current() *api.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// Save updates the profile. Both fields must be non-empty; this is checked
// before any network call. On success the in-memory profile is replaced.
func (m *Manager) Save(ctx context.Context, id, username, email string) (*api.User, error) {
	if username == "" || email == "" {
		return nil, ErrMissingFields
	}

	user, err := m.c.UpdateProfile(ctx, id, username, email)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.user = user
	m.mu.Unlock()
	return user, nil
}

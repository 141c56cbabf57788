// ABOUTME: Session manager owning the authentication token lifecycle
// ABOUTME: Handles login exchange, token persistence, and logout

package session

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/rantiputri/booktrack/internal/api"
)

// LoginErrorKind classifies a login failure
type LoginErrorKind int

const (
	// KindMissingFields means a credential field was empty; no request was made
	KindMissingFields LoginErrorKind = iota
	// KindFieldValidation means the server rejected a specific field
	KindFieldValidation
	// KindGeneric covers any other server or transport failure
	KindGeneric
)

// LoginError is a structured login failure with a display-ready message
type LoginError struct {
	Kind    LoginErrorKind
	Message string
}

func (e *LoginError) Error() string {
	return e.Message
}

// ErrMissingFields is returned when either credential field is empty
var ErrMissingFields = &LoginError{Kind: KindMissingFields, Message: "Please fill in all fields"}

// Manager owns the session token. It is the only component that reads or
// writes the persisted token; the gateway receives it through Token.
type Manager struct {
	c     *api.Client
	store *Store

	mu     sync.Mutex
	token  string
	loaded bool
}

// NewManager creates a session manager backed by the given gateway and store
func NewManager(c *api.Client, store *Store) *Manager {
	return &Manager{c: c, store: store}
}

// Login exchanges credentials for a token and persists it. Empty fields are
// rejected before any network call.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrMissingFields
	}

	token, err := m.c.Login(ctx, username, password)
	if err != nil {
		return normalizeLoginError(err)
	}

	m.mu.Lock()
	m.token = token
	m.loaded = true
	m.mu.Unlock()

	return m.store.Save(token)
}

// Register creates a new account. The same field-error composition applies
// as for login.
func (m *Manager) Register(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return ErrMissingFields
	}
	if err := m.c.Register(ctx, username, email, password); err != nil {
		return normalizeLoginError(err)
	}
	return nil
}

// Token returns the current session token, reading the persisted one on
// first use. Empty means logged out.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.loaded {
		m.token, _ = m.store.Load()
		m.loaded = true
	}
	return m.token
}

// Logout clears the token unconditionally. Logging out while already logged
// out is a no-op.
func (m *Manager) Logout() error {
	m.mu.Lock()
	m.token = ""
	m.loaded = true
	m.mu.Unlock()
	return m.store.Clear()
}

// InvalidateOn clears the session when err is an authentication failure
// reported by the gateway. Reports whether the session was cleared.
func (m *Manager) InvalidateOn(err error) bool {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		m.Logout()
		return true
	}
	return false
}

// normalizeLoginError composes a single display message from the server's
// field errors. The password error takes priority over the username error.
func normalizeLoginError(err error) error {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return &LoginError{Kind: KindGeneric, Message: err.Error()}
	}

	message := apiErr.Message
	if message == "" {
		message = "Something went wrong"
	}

	if f := apiErr.FieldErrors["password"]; f != "" {
		return &LoginError{Kind: KindFieldValidation, Message: message + ": " + f}
	}
	if f := apiErr.FieldErrors["username"]; f != "" {
		return &LoginError{Kind: KindFieldValidation, Message: message + ": " + f}
	}
	return &LoginError{Kind: KindGeneric, Message: message}
}

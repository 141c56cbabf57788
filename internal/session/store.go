// ABOUTME: Durable storage for the session token
// ABOUTME: Persists a single token file in the XDG config directory

package session

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Store persists the session token as the one durable key the client keeps.
type Store struct {
	configDir string
}

type tokenData struct {
	Token string `json:"token"`
}

// NewStore creates a token store rooted at the given config directory
func NewStore(configDir string) *Store {
	return &Store{configDir: configDir}
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "booktrack")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "booktrack")
}

// tokenFile returns the path to the token JSON
func (s *Store) tokenFile() string {
	return filepath.Join(s.configDir, "token.json")
}

// Load reads the persisted token. A missing or unreadable file yields an
// empty token rather than an error, so a fresh install starts logged out.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.tokenFile())
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var td tokenData
	if err := json.Unmarshal(data, &td); err != nil {
		// Invalid JSON, start logged out
		return "", nil
	}
	return td.Token, nil
}

// Save writes the token to disk, replacing any previous one
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(s.configDir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(tokenData{Token: token}, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.tokenFile(), data, 0600)
}

// Clear removes the persisted token. Clearing an absent token is a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.tokenFile())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

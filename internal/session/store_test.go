// ABOUTME: Tests for the durable token store
// ABOUTME: Verifies save/load round-trips and idempotent clearing

package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())

	token, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "" {
		t.Errorf("expected empty token, got %q", token)
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested"))

	if err := store.Save("tok-123"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	token, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if token != "tok-123" {
		t.Errorf("expected tok-123, got %q", token)
	}
}

func TestStore_SaveReplacesToken(t *testing.T) {
	store := NewStore(t.TempDir())

	store.Save("first")
	store.Save("second")

	token, _ := store.Load()
	if token != "second" {
		t.Errorf("expected second, got %q", token)
	}
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.Clear(); err != nil {
		t.Fatalf("clearing absent token should succeed: %v", err)
	}

	store.Save("tok-123")
	if err := store.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear should succeed: %v", err)
	}

	token, _ := store.Load()
	if token != "" {
		t.Errorf("expected empty token after clear, got %q", token)
	}
}

func TestStore_InvalidJSONStartsLoggedOut(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "token.json"), []byte("not json"), 0600)

	store := NewStore(dir)
	token, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "" {
		t.Errorf("expected empty token, got %q", token)
	}
}

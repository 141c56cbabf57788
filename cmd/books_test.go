// ABOUTME: Tests for the book collection commands
// ABOUTME: Verifies output formatting, exit codes, and session expiry handling

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rantiputri/booktrack/internal/api"
	"github.com/rantiputri/booktrack/internal/session"
)

func TestFormatBookHuman(t *testing.T) {
	b := &api.Book{
		ID:          "b1",
		Title:       "Dune",
		Author:      "Frank Herbert",
		Genre:       "Science Fiction",
		Description: "Desert planet",
		TotalPages:  412,
	}

	output := formatBookHuman(b)

	checks := []string{"Dune", "Frank Herbert", "Science Fiction", "412", "b1"}
	for _, check := range checks {
		if !strings.Contains(output, check) {
			t.Errorf("expected output to contain %q", check)
		}
	}
}

func TestFormatBookListHuman_Empty(t *testing.T) {
	output := formatBookListHuman(nil)
	if !strings.Contains(output, "No books") {
		t.Error("expected empty-library message")
	}
}

func TestFormatBookListHuman_PreservesServerOrder(t *testing.T) {
	books := []api.Book{
		{ID: "b2", Title: "Zen Mind", Author: "Suzuki"},
		{ID: "b1", Title: "Antifragile", Author: "Taleb"},
	}

	output := formatBookListHuman(books)

	first := strings.Index(output, "Zen Mind")
	second := strings.Index(output, "Antifragile")
	if first == -1 || second == -1 || first > second {
		t.Errorf("expected server order kept, got:\n%s", output)
	}
}

func TestFormatBookListJSON(t *testing.T) {
	books := []api.Book{{ID: "b1", Title: "Dune", Author: "Frank Herbert"}}

	output := formatBookListJSON(books)

	var parsed []map[string]interface{}
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(parsed) != 1 || parsed[0]["title"] != "Dune" {
		t.Errorf("unexpected JSON output: %s", output)
	}
}

func TestBooksListCommand_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer list-token" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]api.Book{
			{ID: "b1", Title: "Dune", Author: "Frank Herbert", TotalPages: 412},
		})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	seedSession(t, "list-token")

	var buf bytes.Buffer
	exitCode := runBooksList(context.Background(), &buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("Dune")) {
		t.Error("expected book title in output")
	}
}

func TestBooksListCommand_ExpiredSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid token"})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	seedSession(t, "stale-token")

	var buf bytes.Buffer
	exitCode := runBooksList(context.Background(), &buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Session expired")) {
		t.Error("expected session expiry notice in output")
	}

	store := session.NewStore(session.DefaultConfigDir())
	if token, _ := store.Load(); token != "" {
		t.Errorf("expected token cleared after 401, got %q", token)
	}
}

func TestBooksAddCommand_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/books" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var draft api.Draft
		json.NewDecoder(r.Body).Decode(&draft)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(api.Book{
			ID:         "b9",
			Title:      draft.Title,
			Author:     draft.Author,
			TotalPages: draft.TotalPages,
		})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	seedSession(t, "add-token")

	var buf bytes.Buffer
	exitCode := runBooksAdd(context.Background(), &buf, "Dune", "Frank Herbert", "", "", "412")

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte(`Added "Dune" (id b9)`)) {
		t.Errorf("expected confirmation, got %s", buf.String())
	}
}

func TestBooksAddCommand_InvalidPages(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	seedSession(t, "add-token")

	var buf bytes.Buffer
	exitCode := runBooksAdd(context.Background(), &buf, "Dune", "Frank Herbert", "", "", "lots")

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if requests != 0 {
		t.Errorf("expected no requests for invalid pages, server saw %d", requests)
	}
}

func TestBooksRmCommand_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/books/b1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	seedSession(t, "rm-token")

	var buf bytes.Buffer
	exitCode := runBooksRm(context.Background(), &buf, "b1")

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("Removed book b1")) {
		t.Error("expected removal confirmation in output")
	}
}

func TestBooksRmCommand_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "Failed to delete book"})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	seedSession(t, "rm-token")

	var buf bytes.Buffer
	exitCode := runBooksRm(context.Background(), &buf, "b1")

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Failed to delete book")) {
		t.Errorf("expected server message in output, got %s", buf.String())
	}
}

func TestBooksShowCommand_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/books/b1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(api.Book{ID: "b1", Title: "Dune", Author: "Frank Herbert"})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	seedSession(t, "show-token")

	var buf bytes.Buffer
	exitCode := runBooksShow(context.Background(), &buf, "b1")

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("Dune")) {
		t.Error("expected book title in output")
	}
}

// ABOUTME: Tests for the API client
// ABOUTME: Verifies request shapes, token attachment, and error normalization

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogin_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["username"] != "ranti" || req["password"] != "secret" {
			t.Errorf("unexpected credentials: %v", req)
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
	}))
	defer server.Close()

	c := New(server.URL)
	token, err := c.Login(context.Background(), "ranti", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "tok-123" {
		t.Errorf("expected tok-123, got %q", token)
	}
}

func TestLogin_FieldErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Invalid credentials",
			"errors":  map[string]string{"password": "Password is incorrect"},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Login(context.Background(), "ranti", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", apiErr.Status)
	}
	if apiErr.Message != "Invalid credentials" {
		t.Errorf("unexpected message: %q", apiErr.Message)
	}
	if apiErr.FieldErrors["password"] != "Password is incorrect" {
		t.Errorf("expected password field error, got %v", apiErr.FieldErrors)
	}
}

func TestError_UndecodableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.ListBooks(context.Background())

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Error() != "server returned status 500" {
		t.Errorf("unexpected message: %q", apiErr.Error())
	}
}

func TestTokenAttachment(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]Book{})
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetTokenSource(func() string { return "tok-abc" })

	if _, err := c.ListBooks(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok-abc" {
		t.Errorf("expected bearer token header, got %q", gotAuth)
	}
}

func TestTokenAttachment_EmptyTokenOmitted(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]Book{})
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetTokenSource(func() string { return "" })

	if _, err := c.ListBooks(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestCreateBook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/books" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var draft Draft
		json.NewDecoder(r.Body).Decode(&draft)
		json.NewEncoder(w).Encode(Book{
			ID:          "b1",
			Title:       draft.Title,
			Author:      draft.Author,
			Genre:       draft.Genre,
			Description: draft.Description,
			TotalPages:  draft.TotalPages,
		})
	}))
	defer server.Close()

	c := New(server.URL)
	book, err := c.CreateBook(context.Background(), &Draft{Title: "Dune", Author: "Herbert", TotalPages: 412})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book.ID != "b1" {
		t.Errorf("expected assigned id b1, got %q", book.ID)
	}
	if book.Title != "Dune" || book.TotalPages != 412 {
		t.Errorf("expected fields echoed back, got %+v", book)
	}
}

func TestDeleteBook_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Book not found"})
	}))
	defer server.Close()

	c := New(server.URL)
	err := c.DeleteBook(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Book not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestConnectionError(t *testing.T) {
	c := New("http://localhost:1")
	_, err := c.ListBooks(context.Background())
	if err == nil {
		t.Fatal("expected connection error")
	}
}

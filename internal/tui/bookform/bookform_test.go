// ABOUTME: Tests for the book form model
// ABOUTME: Verifies single submission and the edit-mode heading

package bookform

import (
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/rantiputri/booktrack/internal/api"
)

func TestUpdate_CompletedFormSubmitsOnce(t *testing.T) {
	f := New()
	f.title = "Dune"
	f.author = "Frank Herbert"
	f.form.State = huh.StateCompleted

	_, cmd := f.Update(struct{}{})
	if cmd == nil {
		t.Fatal("expected a command from the completed form")
	}
	saved, ok := cmd().(SaveMsg)
	if !ok {
		t.Fatalf("expected SaveMsg, got %T", cmd())
	}
	if saved.Draft.Title != "Dune" {
		t.Errorf("expected draft title Dune, got %q", saved.Draft.Title)
	}

	// Input while the save is in flight must not submit again
	if _, cmd := f.Update(struct{}{}); cmd != nil {
		t.Error("expected no command after submission")
	}
	if _, cmd := f.Update(struct{}{}); cmd != nil {
		t.Error("expected repeated updates to stay inert")
	}
}

func TestSetError_ReopensFormForResubmission(t *testing.T) {
	f := New()
	f.title = "Dune"
	f.form.State = huh.StateCompleted

	if _, cmd := f.Update(struct{}{}); cmd == nil {
		t.Fatal("expected initial submission")
	}

	f.SetError("boom")

	if !strings.Contains(f.View(), "boom") {
		t.Error("expected error message in view")
	}
	if f.submitted {
		t.Error("expected form reopened for another attempt")
	}
	if f.title != "Dune" {
		t.Error("expected field values kept across the error")
	}
}

func TestUpdate_ParseErrorKeepsEditHeading(t *testing.T) {
	f := NewEdit(&api.Book{ID: "b1", Title: "Dune", Author: "Frank Herbert", TotalPages: 412})
	f.pages = "lots"
	f.form.State = huh.StateCompleted

	f.Update(struct{}{})

	if f.submitted {
		t.Error("expected invalid pages to block submission")
	}
	if !strings.Contains(f.form.View(), "Edit Book") {
		t.Error("expected edit heading after the form is rebuilt")
	}
}

// ABOUTME: Tests for the login form model
// ABOUTME: Verifies single submission and error recovery

package loginform

import (
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
)

func TestUpdate_CompletedFormSubmitsOnce(t *testing.T) {
	f := New()
	f.username = "reader"
	f.password = "secret"
	f.form.State = huh.StateCompleted

	_, cmd := f.Update(struct{}{})
	if cmd == nil {
		t.Fatal("expected a command from the completed form")
	}
	submit, ok := cmd().(SubmitMsg)
	if !ok {
		t.Fatalf("expected SubmitMsg, got %T", cmd())
	}
	if submit.Username != "reader" || submit.Password != "secret" {
		t.Errorf("unexpected credentials in message: %+v", submit)
	}

	// Input while the attempt is in flight must not submit again
	if _, cmd := f.Update(struct{}{}); cmd != nil {
		t.Error("expected no command after submission")
	}
}

func TestSetError_ResetsPasswordAndReopens(t *testing.T) {
	f := New()
	f.username = "reader"
	f.password = "wrong"
	f.form.State = huh.StateCompleted

	if _, cmd := f.Update(struct{}{}); cmd == nil {
		t.Fatal("expected initial submission")
	}

	f.SetError("Something went wrong")

	if !strings.Contains(f.View(), "Something went wrong") {
		t.Error("expected error message in view")
	}
	if f.password != "" {
		t.Error("expected password reset for the retry")
	}
	if f.submitted {
		t.Error("expected form reopened for another attempt")
	}
}

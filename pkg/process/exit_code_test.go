package process

import (
	"errors"
	"os/exec"
	"testing"
)

// TestExitCodeForNilError tests that exit code extraction fails for a nil
// error.
func TestExitCodeForNilError(t *testing.T) {
	if _, err := ExitCodeForError(nil); err == nil {
		t.Error("exit code was returned for nil error")
	}
}

// TestExitCodeForInvalidError tests that exit code extraction fails for an
// error that doesn't represent a process exit.
func TestExitCodeForInvalidError(t *testing.T) {
	if _, err := ExitCodeForError(errors.New("not an exec error")); err == nil {
		t.Error("exit code was returned for invalid error")
	}
}

// TestIsNotFound tests classification of missing-binary errors.
func TestIsNotFound(t *testing.T) {
	// Run a binary that shouldn't exist and verify classification of the
	// resulting error.
	err := exec.Command("stubgen-test-nonexistent-binary").Run()
	if err == nil {
		t.Fatal("expected non-nil error when running nonexistent binary")
	}
	if !IsNotFound(err) {
		t.Error("missing binary error not classified as not found")
	}
}

// TestIsNotFoundForInvalidError tests that unrelated errors aren't classified
// as missing-binary errors.
func TestIsNotFoundForInvalidError(t *testing.T) {
	if IsNotFound(errors.New("not an exec error")) {
		t.Error("unrelated error classified as not found")
	}
}

package process

import (
	"errors"
	"os/exec"
)

// ExitCodeForError extracts the process exit code from an error returned by
// the Run or Wait methods of an exec.Cmd. It returns an error if the
// underlying error doesn't represent a process exit.
func ExitCodeForError(err error) (int, error) {
	// Watch for nil errors, which don't represent a process exit.
	if err == nil {
		return 0, errors.New("no error specified")
	}

	// Verify that the error represents a process exit.
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 0, errors.New("error does not represent a process exit")
	}

	// Extract the exit code.
	return exitErr.ExitCode(), nil
}

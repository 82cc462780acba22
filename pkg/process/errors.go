package process

import (
	"errors"
	"os/exec"
)

// IsNotFound returns whether or not an error returned from starting a process
// indicates that the associated binary could not be found. This allows
// missing-tool failures to be surfaced distinctly from tool failures.
func IsNotFound(err error) bool {
	var execErr *exec.Error
	return errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound)
}

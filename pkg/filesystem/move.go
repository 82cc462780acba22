package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
)

// MoveFile moves a file from one path to another, unconditionally overwriting
// any existing file at the destination and creating the destination's parent
// directory if necessary. Both paths must reside on the same filesystem
// volume, since the move is performed with a rename operation.
func MoveFile(source, destination string) error {
	// Ensure that the destination's parent directory exists.
	if err := os.MkdirAll(filepath.Dir(destination), 0755); err != nil {
		return fmt.Errorf("unable to create destination directory: %w", err)
	}

	// Perform the move. Rename replaces any existing destination file.
	if err := os.Rename(source, destination); err != nil {
		return fmt.Errorf("unable to relocate file: %w", err)
	}

	// Success.
	return nil
}

package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

// TestMoveFile tests a file move into a directory that doesn't exist yet.
func TestMoveFile(t *testing.T) {
	// Create the source file.
	directory := t.TempDir()
	source := filepath.Join(directory, "module.pb.go")
	if err := os.WriteFile(source, []byte("package pb"), 0644); err != nil {
		t.Fatal("unable to write source file:", err)
	}

	// Move it into a new destination directory.
	destination := filepath.Join(directory, "destination", "module.pb.go")
	if err := MoveFile(source, destination); err != nil {
		t.Fatal("unable to move file:", err)
	}

	// Verify that the source is gone and the destination has the expected
	// contents.
	if _, err := os.Stat(source); !os.IsNotExist(err) {
		t.Error("source file survived move")
	}
	data, err := os.ReadFile(destination)
	if err != nil {
		t.Fatal("unable to read destination file:", err)
	}
	if string(data) != "package pb" {
		t.Error("destination contents mismatch:", string(data))
	}
}

// TestMoveFileOverwrite tests that a move unconditionally overwrites an
// existing destination file.
func TestMoveFileOverwrite(t *testing.T) {
	// Create the source and destination files.
	directory := t.TempDir()
	source := filepath.Join(directory, "source")
	if err := os.WriteFile(source, []byte("new"), 0644); err != nil {
		t.Fatal("unable to write source file:", err)
	}
	destination := filepath.Join(directory, "destination")
	if err := os.WriteFile(destination, []byte("old"), 0644); err != nil {
		t.Fatal("unable to write destination file:", err)
	}

	// Perform the move.
	if err := MoveFile(source, destination); err != nil {
		t.Fatal("unable to move file:", err)
	}

	// Verify the destination contents.
	data, err := os.ReadFile(destination)
	if err != nil {
		t.Fatal("unable to read destination file:", err)
	}
	if string(data) != "new" {
		t.Error("destination not overwritten:", string(data))
	}
}

package generate

import (
	"os"
	"path/filepath"
	"testing"
)

// testGenerator creates a generator rooted in a temporary directory using the
// built-in manifest.
func testGenerator(t *testing.T) (*Generator, string) {
	t.Helper()
	root := t.TempDir()
	generator, err := NewGenerator(root, DefaultManifest(), nil)
	if err != nil {
		t.Fatal("unable to create generator:", err)
	}
	return generator, root
}

// TestCleanMissingPaths tests that cleanup is a silent no-op when no
// intermediate state exists and never touches the stub root.
func TestCleanMissingPaths(t *testing.T) {
	// Create a generator in a temporary root.
	generator, root := testGenerator(t)

	// Seed the stub root with a durable file.
	stubRoot := filepath.Join(root, generator.manifest.StubRoot)
	if err := os.MkdirAll(stubRoot, 0755); err != nil {
		t.Fatal("unable to create stub root:", err)
	}
	marker := filepath.Join(stubRoot, RecordName)
	if err := os.WriteFile(marker, []byte("run: run_test\n"), 0644); err != nil {
		t.Fatal("unable to write marker file:", err)
	}

	// Invoke cleanup with no checkout or scratch directory present.
	if err := generator.Clean(); err != nil {
		t.Fatal("cleanup failed with no intermediate state:", err)
	}

	// Verify that the stub root was left untouched.
	if _, err := os.Stat(marker); err != nil {
		t.Error("cleanup touched the stub root:", err)
	}

	// Verify that cleanup remains a no-op when repeated.
	if err := generator.Clean(); err != nil {
		t.Error("repeated cleanup failed:", err)
	}
}

// TestCleanRemovesIntermediateState tests that cleanup removes the checkout
// and scratch directories while leaving the stub root intact.
func TestCleanRemovesIntermediateState(t *testing.T) {
	// Create a generator in a temporary root.
	generator, root := testGenerator(t)

	// Create checkout and scratch directories with content.
	checkout := filepath.Join(root, generator.manifest.Checkout)
	scratch := filepath.Join(root, generator.manifest.Scratch)
	for _, directory := range []string{checkout, scratch} {
		if err := os.MkdirAll(directory, 0755); err != nil {
			t.Fatal("unable to create directory:", err)
		}
		if err := os.WriteFile(filepath.Join(directory, "placeholder"), []byte("x"), 0644); err != nil {
			t.Fatal("unable to write placeholder:", err)
		}
	}

	// Seed the stub root with a generated module.
	destination := filepath.Join(root, generator.manifest.StubRoot, "bigtablepb")
	if err := os.MkdirAll(destination, 0755); err != nil {
		t.Fatal("unable to create destination package:", err)
	}
	module := filepath.Join(destination, "bigtable_data.pb.go")
	if err := os.WriteFile(module, []byte("package bigtablepb\n"), 0644); err != nil {
		t.Fatal("unable to write module:", err)
	}

	// Invoke cleanup.
	if err := generator.Clean(); err != nil {
		t.Fatal("cleanup failed:", err)
	}

	// Verify that the intermediate directories are gone.
	if _, err := os.Stat(checkout); !os.IsNotExist(err) {
		t.Error("checkout directory survived cleanup")
	}
	if _, err := os.Stat(scratch); !os.IsNotExist(err) {
		t.Error("scratch directory survived cleanup")
	}

	// Verify that the generated module survived.
	if _, err := os.Stat(module); err != nil {
		t.Error("cleanup touched generated module:", err)
	}
}

package environment

import (
	"os"
	"path/filepath"
	"testing"
)

// TestToMap tests conversion of an environment specification to a map.
func TestToMap(t *testing.T) {
	// Convert a specification containing a malformed entry and a duplicate
	// key.
	result := ToMap([]string{"A=1", "malformed", "B=x=y", "A=2"})

	// Verify the contents. Malformed entries are ignored and later entries
	// win for duplicate keys.
	if len(result) != 2 {
		t.Error("unexpected map size:", len(result), "!=", 2)
	}
	if result["A"] != "2" {
		t.Error("duplicate key not resolved to last entry:", result["A"])
	}
	if result["B"] != "x=y" {
		t.Error("value containing separator mangled:", result["B"])
	}
}

// TestMergePrecedence tests that base entries take precedence over overrides
// when merging.
func TestMergePrecedence(t *testing.T) {
	// Merge an override set beneath a base environment.
	merged := ToMap(Merge(
		[]string{"PROTOC=/usr/bin/protoc", "HOME=/home/test"},
		map[string]string{"PROTOC": "/opt/protoc", "GIT": "/opt/git"},
	))

	// Verify precedence.
	if merged["PROTOC"] != "/usr/bin/protoc" {
		t.Error("override took precedence over base:", merged["PROTOC"])
	}

	// Verify that non-conflicting overrides are present.
	if merged["GIT"] != "/opt/git" {
		t.Error("non-conflicting override missing:", merged["GIT"])
	}
	if merged["HOME"] != "/home/test" {
		t.Error("base entry missing:", merged["HOME"])
	}
}

// TestMergeEmptyOverrides tests that merging with no overrides returns the
// base environment unmodified.
func TestMergeEmptyOverrides(t *testing.T) {
	base := []string{"A=1", "B=2"}
	merged := Merge(base, nil)
	if len(merged) != len(base) {
		t.Error("merge with no overrides altered environment")
	}
}

// TestLoadOverridesMissing tests that loading a non-existent environment file
// is a no-op.
func TestLoadOverridesMissing(t *testing.T) {
	overrides, err := LoadOverrides(filepath.Join(t.TempDir(), "stubgen.env"))
	if err != nil {
		t.Fatal("missing environment file treated as error:", err)
	}
	if overrides != nil {
		t.Error("missing environment file yielded overrides")
	}
}

// TestLoadOverrides tests loading of an environment file.
func TestLoadOverrides(t *testing.T) {
	// Write an environment file.
	path := filepath.Join(t.TempDir(), "stubgen.env")
	if err := os.WriteFile(path, []byte("PROTOC=/opt/protoc\n"), 0644); err != nil {
		t.Fatal("unable to write environment file:", err)
	}

	// Load it.
	overrides, err := LoadOverrides(path)
	if err != nil {
		t.Fatal("unable to load environment file:", err)
	}

	// Verify the contents.
	if overrides["PROTOC"] != "/opt/protoc" {
		t.Error("override value mismatch:", overrides["PROTOC"])
	}
}

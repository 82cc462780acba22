package identifier

import (
	"strings"
	"testing"
)

// TestIdentifierCreation tests identifier creation.
func TestIdentifierCreation(t *testing.T) {
	// Create an identifier.
	identifier, err := New(PrefixRun)
	if err != nil {
		t.Fatal("unable to create identifier:", err)
	}

	// Ensure that the prefix is present.
	if !strings.HasPrefix(identifier, PrefixRun) {
		t.Error("identifier does not have correct prefix")
	}

	// Ensure that a random component is present.
	if len(identifier) <= len(PrefixRun) {
		t.Error("identifier has no random component")
	}
}

// TestIdentifierUniqueness tests that identifier creation is
// collision-resistant across invocations.
func TestIdentifierUniqueness(t *testing.T) {
	// Create two identifiers.
	first, err := New(PrefixRun)
	if err != nil {
		t.Fatal("unable to create first identifier:", err)
	}
	second, err := New(PrefixRun)
	if err != nil {
		t.Fatal("unable to create second identifier:", err)
	}

	// Ensure that they differ.
	if first == second {
		t.Error("identifiers collided")
	}
}

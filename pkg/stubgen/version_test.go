package stubgen

import (
	"fmt"
	"testing"
)

// TestVersionFormat tests that the stringified version has the expected
// format.
func TestVersionFormat(t *testing.T) {
	expected := fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
	if VersionTag != "" {
		expected += "-" + VersionTag
	}
	if Version != expected {
		t.Error("version mismatch:", Version, "!=", expected)
	}
}

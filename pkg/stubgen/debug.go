package stubgen

import (
	"os"
)

// DebugEnabled controls whether or not debugging is enabled for stubgen. It is
// set automatically based on the STUBGEN_DEBUG environment variable.
var DebugEnabled bool

func init() {
	// Check whether or not debugging should be enabled.
	DebugEnabled = os.Getenv("STUBGEN_DEBUG") == "1"
}

package generate

import (
	"fmt"
	"os"
)

// Clean removes the upstream checkout and the scratch directory. Paths that
// are already absent are a no-op, not an error. The stub root and its
// generated packages are never touched, since cleanup is scoped to
// intermediate state only.
func (g *Generator) Clean() error {
	// Create a sublogger.
	logger := g.logger.Sublogger("clean")

	// Remove the intermediate directories.
	for _, path := range []string{g.checkoutPath(), g.scratchPath()} {
		logger.Printf("removing %s", path)
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("unable to remove %s: %w", path, err)
		}
	}

	// Success.
	return nil
}

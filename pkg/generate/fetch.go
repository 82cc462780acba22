package generate

import (
	"fmt"
	"os"
)

// fetch ensures that the upstream checkout exists and is up to date. If the
// checkout directory is absent, the upstream repository is cloned, otherwise
// the configured branch is pulled. Re-running is idempotent.
func (g *Generator) fetch() error {
	// Create a sublogger.
	logger := g.logger.Sublogger("fetch")

	// Determine the version control binary.
	git := g.binary("git", "GIT")

	// Check whether or not the checkout already exists.
	checkout := g.checkoutPath()
	if _, err := os.Stat(checkout); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("unable to probe checkout directory: %w", err)
		}

		// Clone the upstream repository.
		logger.Printf("cloning %s", g.manifest.Upstream.URL)
		return g.run(logger, g.root, git,
			"clone",
			"--branch", g.manifest.Upstream.Branch,
			g.manifest.Upstream.URL,
			g.manifest.Checkout,
		)
	}

	// Update the existing checkout.
	logger.Println("updating existing checkout")
	return g.run(logger, checkout, git,
		"pull", "--ff-only", "origin", g.manifest.Upstream.Branch,
	)
}

// revision returns the current commit hash of the upstream checkout.
func (g *Generator) revision() (string, error) {
	logger := g.logger.Sublogger("fetch")
	return g.output(logger, g.checkoutPath(), g.binary("git", "GIT"),
		"rev-parse", "HEAD",
	)
}

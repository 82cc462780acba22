package generate

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/stubgen-io/stubgen/pkg/identifier"
)

// Generate runs the full generation sequence: fetch the upstream checkout,
// compile and relocate each proto group, rewrite the relocated modules'
// imports, and write the generation record. The phases are strictly
// sequential and any failure aborts the sequence; the documented recovery for
// a failed run is Clean followed by a fresh Generate.
func (g *Generator) Generate() error {
	// Create an identifier for this run.
	run, err := identifier.New(identifier.PrefixRun)
	if err != nil {
		return fmt.Errorf("unable to create run identifier: %w", err)
	}
	g.logger.Printf("starting generation run %s", run)

	// Ensure that the upstream checkout exists and is current.
	if err := g.fetch(); err != nil {
		return fmt.Errorf("unable to fetch upstream protos: %w", err)
	}

	// Compile and relocate each proto group.
	summaries := make([]GroupSummary, 0, len(g.manifest.Groups))
	for i := range g.manifest.Groups {
		group := &g.manifest.Groups[i]
		if err := g.compile(group); err != nil {
			return fmt.Errorf("unable to compile group %s: %w", group.Name, err)
		}
		summary, err := g.relocate(group)
		if err != nil {
			return fmt.Errorf("unable to relocate group %s: %w", group.Name, err)
		}
		summaries = append(summaries, *summary)
	}

	// Rewrite imports in the relocated modules.
	if err := g.rewrite(); err != nil {
		return fmt.Errorf("unable to rewrite imports: %w", err)
	}

	// Write the generation record.
	if err := g.record(run, summaries); err != nil {
		return fmt.Errorf("unable to write generation record: %w", err)
	}

	// Log a summary.
	var modules int
	var size int64
	for _, summary := range summaries {
		modules += summary.Modules
		size += summary.Size
	}
	g.logger.Printf("generated %d modules (%s) across %d groups",
		modules, humanize.Bytes(uint64(size)), len(summaries),
	)

	// Success.
	return nil
}

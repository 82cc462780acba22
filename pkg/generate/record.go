package generate

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/stubgen-io/stubgen/pkg/encoding"
	"github.com/stubgen-io/stubgen/pkg/stubgen"
)

// Record describes a completed generation run. It is written into the stub
// root alongside the generated packages so that the provenance of checked-in
// stubs is always recorded.
type Record struct {
	// Run is the generation run identifier.
	Run string `yaml:"run"`
	// Version is the version of the tool that performed the run.
	Version string `yaml:"version"`
	// Commit is the upstream commit hash from which the stubs were generated.
	Commit string `yaml:"commit"`
	// Generated is the UTC time of the run in RFC 3339 format.
	Generated string `yaml:"generated"`
	// Groups are the per-group relocation summaries.
	Groups []GroupSummary `yaml:"groups"`
}

// record writes the generation record for a completed run into the stub root.
// The record is replaced atomically on regeneration and left in place by
// Clean, since it describes durable output.
func (g *Generator) record(run string, groups []GroupSummary) error {
	// Determine the upstream commit.
	commit, err := g.revision()
	if err != nil {
		return fmt.Errorf("unable to determine upstream revision: %w", err)
	}

	// Compose and write the record.
	record := &Record{
		Run:       run,
		Version:   stubgen.Version,
		Commit:    commit,
		Generated: time.Now().UTC().Format(time.RFC3339),
		Groups:    groups,
	}
	return encoding.MarshalAndSaveYAML(filepath.Join(g.stubRootPath(), RecordName), record)
}

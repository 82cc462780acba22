package generate

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/stubgen-io/stubgen/pkg/filesystem"
)

const (
	// generatedModulePattern is the pattern matching generated module files.
	generatedModulePattern = "*.pb.go"
)

// GroupSummary records the relocation results for one proto group.
type GroupSummary struct {
	// Name is the group name.
	Name string `yaml:"name"`
	// Modules is the number of generated modules relocated.
	Modules int `yaml:"modules"`
	// Size is the total size (in bytes) of the relocated modules.
	Size int64 `yaml:"size"`
}

// expectedModules computes the generated module files that the compiler must
// have emitted for a group, based on the group's file descriptor set.
func expectedModules(group *Group, set *descriptorpb.FileDescriptorSet) []string {
	var expected []string
	for _, file := range set.GetFile() {
		// Only files within the group's namespace produce output in the
		// group's subtree.
		if path.Dir(file.GetName()) != group.Output {
			continue
		}
		base := strings.TrimSuffix(path.Base(file.GetName()), ".proto")
		expected = append(expected, base+".pb.go")
		if group.GRPC && len(file.GetService()) > 0 {
			expected = append(expected, base+"_grpc.pb.go")
		}
	}
	return expected
}

// relocate moves a group's generated modules out of the scratch directory's
// namespace-mirroring subtree into the group's flat destination package
// beneath the stub root, unconditionally overwriting any existing destination
// files. Before moving, it verifies against the group's descriptor set that
// every expected module was actually generated.
func (g *Generator) relocate(group *Group) (*GroupSummary, error) {
	// Create a sublogger.
	logger := g.logger.Sublogger("relocate")

	// Load and decode the group's descriptor set.
	data, err := os.ReadFile(filepath.Join(g.scratchPath(), descriptorSetName(group)))
	if err != nil {
		return nil, fmt.Errorf("unable to read descriptor set for group %s: %w", group.Name, err)
	}
	set := &descriptorpb.FileDescriptorSet{}
	if err := proto.Unmarshal(data, set); err != nil {
		return nil, fmt.Errorf("unable to decode descriptor set for group %s: %w", group.Name, err)
	}

	// Verify output completeness. A missing module indicates compiler layout
	// drift and aborts the run before any files are moved.
	source := filepath.Join(g.scratchPath(), filepath.FromSlash(group.Output))
	for _, name := range expectedModules(group, set) {
		if _, err := os.Stat(filepath.Join(source, name)); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("generated module %s missing for group %s", name, group.Name)
			}
			return nil, fmt.Errorf("unable to probe generated module %s: %w", name, err)
		}
	}

	// Enumerate the scratch subtree's contents.
	entries, err := os.ReadDir(source)
	if err != nil {
		return nil, fmt.Errorf("unable to read scratch subtree for group %s: %w", group.Name, err)
	}

	// Move generated modules into the destination package.
	destination := filepath.Join(g.stubRootPath(), group.Package)
	summary := &GroupSummary{Name: group.Name}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matched, err := doublestar.Match(generatedModulePattern, entry.Name()); err != nil {
			return nil, fmt.Errorf("unable to match module pattern: %w", err)
		} else if !matched {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("unable to stat generated module %s: %w", entry.Name(), err)
		}
		if err := filesystem.MoveFile(
			filepath.Join(source, entry.Name()),
			filepath.Join(destination, entry.Name()),
		); err != nil {
			return nil, fmt.Errorf("unable to relocate module %s: %w", entry.Name(), err)
		}
		summary.Modules++
		summary.Size += info.Size()
	}

	// Remove the emptied scratch subtree.
	if err := os.RemoveAll(source); err != nil {
		return nil, fmt.Errorf("unable to remove scratch subtree for group %s: %w", group.Name, err)
	}

	// Log and return the summary.
	logger.Printf("relocated %d modules into %s", summary.Modules, group.Package)
	return summary, nil
}

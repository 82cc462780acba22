package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// descriptorSetName returns the name of the descriptor set file emitted into
// the scratch directory for the specified group.
func descriptorSetName(group *Group) string {
	return group.Name + ".protoset"
}

// compile invokes the protocol compiler for a single proto group, emitting
// generated modules and a file descriptor set into the scratch directory. The
// compiler's output subtree mirrors the proto package namespace.
func (g *Generator) compile(group *Group) error {
	// Create a sublogger.
	logger := g.logger.Sublogger("compiler")

	// Enumerate the group's proto sources. An empty match set indicates
	// upstream layout drift and aborts the run.
	protoRoot := g.protoRootPath()
	sources, err := doublestar.Glob(os.DirFS(protoRoot), group.Sources)
	if err != nil {
		return fmt.Errorf("invalid source pattern for group %s: %w", group.Name, err)
	} else if len(sources) == 0 {
		return fmt.Errorf("no proto sources match %q for group %s", group.Sources, group.Name)
	}
	sort.Strings(sources)

	// Ensure that the scratch directory exists.
	scratch := g.scratchPath()
	if err := os.MkdirAll(scratch, 0755); err != nil {
		return fmt.Errorf("unable to create scratch directory: %w", err)
	}

	// Compute the compiler arguments. The compiler is executed from the proto
	// root, so the include path and source paths are relative.
	arguments := make([]string, 0, len(sources)+4)
	arguments = append(arguments, "-I.")
	arguments = append(arguments, "--go_out="+scratch)
	if group.GRPC {
		arguments = append(arguments, "--go-grpc_out="+scratch)
	}
	arguments = append(arguments, "--descriptor_set_out="+filepath.Join(scratch, descriptorSetName(group)))
	arguments = append(arguments, sources...)

	// Run the compiler.
	logger.Printf("compiling %d proto files for group %s", len(sources), group.Name)
	if err := g.run(logger, protoRoot, g.binary("protoc", "PROTOC"), arguments...); err != nil {
		return fmt.Errorf("protoc execution failed: %w", err)
	}

	// Success.
	return nil
}

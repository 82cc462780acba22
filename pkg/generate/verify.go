package generate

import (
	"fmt"
	"go/parser"
	"go/token"
	"path/filepath"
)

// probeModule checks that a generated module exists and parses as Go source.
// This catches truncation or corruption of exactly that module, independently
// of the other probes.
func probeModule(path string) error {
	fileSet := token.NewFileSet()
	if _, err := parser.ParseFile(fileSet, path, nil, 0); err != nil {
		return err
	}
	return nil
}

// Check verifies that the generated stubs are loadable. It runs one parse
// probe for each module enumerated by the manifest and one build probe for
// each destination package plus the aggregating stub root package. All probes
// are run and all failures reported before Check returns a non-nil error.
func (g *Generator) Check() error {
	// Create a sublogger.
	logger := g.logger.Sublogger("check")

	// Track probe counts.
	var probes, failures int

	// Probe each configured module.
	for _, group := range g.manifest.Groups {
		for _, module := range group.Modules {
			probes++
			path := filepath.Join(g.stubRootPath(), group.Package, module)
			if err := probeModule(path); err != nil {
				logger.Error(fmt.Errorf("module %s/%s failed to load: %w", group.Package, module, err))
				failures++
			}
		}
	}

	// Probe each destination package plus the stub root package, each in a
	// fresh build subprocess.
	packages := make([]string, 0, len(g.manifest.Groups)+1)
	packages = append(packages, g.manifest.ImportPath)
	for _, group := range g.manifest.Groups {
		packages = append(packages, g.manifest.ImportPath+"/"+group.Package)
	}
	for _, name := range packages {
		probes++
		if err := g.run(logger, g.root, g.binary("go", "GO"), "build", name); err != nil {
			logger.Error(fmt.Errorf("package %s failed to build: %w", name, err))
			failures++
		}
	}

	// Report the overall result.
	if failures > 0 {
		return fmt.Errorf("%d of %d verification probes failed", failures, probes)
	}
	logger.Printf("all %d probes passed", probes)
	return nil
}

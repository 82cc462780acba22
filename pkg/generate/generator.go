package generate

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/stubgen-io/stubgen/pkg/environment"
	"github.com/stubgen-io/stubgen/pkg/logging"
	"github.com/stubgen-io/stubgen/pkg/process"
)

// Generator drives stub generation for a single source tree. Its operations
// are strictly sequential and must not be invoked concurrently.
type Generator struct {
	// root is the source tree root.
	root string
	// manifest is the generation manifest.
	manifest *Manifest
	// environment is the environment variable specification used for
	// subprocess execution.
	environment []string
	// logger is the generator's logger.
	logger *logging.Logger
}

// NewGenerator creates a generator for the specified source tree root and
// manifest. Subprocess environment overrides are loaded from the source
// tree's dotenv file, if present.
func NewGenerator(root string, manifest *Manifest, logger *logging.Logger) (*Generator, error) {
	// Load any environment overrides and merge them beneath the process
	// environment.
	overrides, err := environment.LoadOverrides(filepath.Join(root, EnvironmentFileName))
	if err != nil {
		return nil, fmt.Errorf("unable to load environment overrides: %w", err)
	}

	// Create the generator.
	return &Generator{
		root:        root,
		manifest:    manifest,
		environment: environment.Merge(os.Environ(), overrides),
		logger:      logger,
	}, nil
}

// checkoutPath returns the path of the upstream checkout directory.
func (g *Generator) checkoutPath() string {
	return filepath.Join(g.root, g.manifest.Checkout)
}

// protoRootPath returns the path of the proto source root inside the
// checkout.
func (g *Generator) protoRootPath() string {
	return filepath.Join(g.checkoutPath(), filepath.FromSlash(g.manifest.ProtoRoot))
}

// scratchPath returns the path of the scratch directory.
func (g *Generator) scratchPath() string {
	return filepath.Join(g.root, g.manifest.Scratch)
}

// stubRootPath returns the path of the stub root directory.
func (g *Generator) stubRootPath() string {
	return filepath.Join(g.root, g.manifest.StubRoot)
}

// binary returns the binary to invoke for the specified tool, honoring any
// override set in the subprocess environment (e.g. PROTOC or GIT).
func (g *Generator) binary(name, variable string) string {
	if override := environment.ToMap(g.environment)[variable]; override != "" {
		return override
	}
	return name
}

// run executes a subprocess with its output routed through the specified
// logger and returns a classified error on failure. Tool absence is surfaced
// distinctly from tool failure.
func (g *Generator) run(logger *logging.Logger, directory, name string, arguments ...string) error {
	// Set up the command.
	command := exec.Command(name, arguments...)
	command.Dir = directory
	command.Env = g.environment
	command.Stdout = logger.Writer()
	command.Stderr = logger.Writer()

	// Log the invocation when debugging.
	logger.Debugf("running %s %s", name, strings.Join(arguments, " "))

	// Run the command, classifying any failure.
	if err := command.Run(); err != nil {
		if process.IsNotFound(err) {
			return fmt.Errorf("%s not found on PATH", name)
		} else if code, codeErr := process.ExitCodeForError(err); codeErr == nil {
			return fmt.Errorf("%s exited with code %d", name, code)
		}
		return fmt.Errorf("unable to run %s: %w", name, err)
	}

	// Success.
	return nil
}

// output executes a subprocess, capturing its standard output and routing its
// standard error through the specified logger. The captured output is
// returned with surrounding whitespace trimmed.
func (g *Generator) output(logger *logging.Logger, directory, name string, arguments ...string) (string, error) {
	// Set up the command.
	command := exec.Command(name, arguments...)
	command.Dir = directory
	command.Env = g.environment
	command.Stderr = logger.Writer()

	// Run the command and capture its output, classifying any failure.
	output, err := command.Output()
	if err != nil {
		if process.IsNotFound(err) {
			return "", fmt.Errorf("%s not found on PATH", name)
		} else if code, codeErr := process.ExitCodeForError(err); codeErr == nil {
			return "", fmt.Errorf("%s exited with code %d", name, code)
		}
		return "", fmt.Errorf("unable to run %s: %w", name, err)
	}

	// Success.
	return strings.TrimSpace(string(output)), nil
}

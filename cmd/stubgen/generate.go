package main

import (
	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/stubgen-io/stubgen/cmd"

	"github.com/stubgen-io/stubgen/pkg/generate"
	"github.com/stubgen-io/stubgen/pkg/logging"
	"github.com/stubgen-io/stubgen/pkg/stubgen"
)

// newGenerator creates a generator for the current source tree, loading the
// manifest and any environment overrides. It's shared by the generate, check,
// and clean commands.
func newGenerator() (*generate.Generator, error) {
	// Compute the source tree root.
	root, err := stubgen.SourceTreePath()
	if err != nil {
		return nil, errors.Wrap(err, "unable to compute source tree path")
	}

	// Load the manifest.
	manifest, err := generate.LoadManifest(root)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load manifest")
	}

	// Create the generator.
	generator, err := generate.NewGenerator(root, manifest, logging.RootLogger)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create generator")
	}

	// Success.
	return generator, nil
}

// generateMain is the entry point for the generate command.
func generateMain(_ *cobra.Command, _ []string) error {
	// Create a generator.
	generator, err := newGenerator()
	if err != nil {
		return err
	}

	// Run the generation sequence.
	return generator.Generate()
}

// generateCommand is the generate command.
var generateCommand = &cobra.Command{
	Use:          "generate",
	Short:        "Fetch upstream protos and regenerate the stub packages",
	Args:         cmd.DisallowArguments,
	RunE:         generateMain,
	SilenceUsage: true,
}

// generateConfiguration stores configuration for the generate command.
var generateConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := generateCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&generateConfiguration.help, "help", "h", false, "Show help information")
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/stubgen-io/stubgen/cmd"
)

// cleanMain is the entry point for the clean command.
func cleanMain(_ *cobra.Command, _ []string) error {
	// Create a generator.
	generator, err := newGenerator()
	if err != nil {
		return err
	}

	// Remove intermediate state.
	return generator.Clean()
}

// cleanCommand is the clean command.
var cleanCommand = &cobra.Command{
	Use:          "clean",
	Short:        "Remove the upstream checkout and scratch directory",
	Args:         cmd.DisallowArguments,
	RunE:         cleanMain,
	SilenceUsage: true,
}

// cleanConfiguration stores configuration for the clean command.
var cleanConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := cleanCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&cleanConfiguration.help, "help", "h", false, "Show help information")
}

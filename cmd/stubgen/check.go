package main

import (
	"github.com/spf13/cobra"

	"github.com/stubgen-io/stubgen/cmd"
)

// checkMain is the entry point for the check command.
func checkMain(_ *cobra.Command, _ []string) error {
	// Create a generator.
	generator, err := newGenerator()
	if err != nil {
		return err
	}

	// Run the verification probes.
	return generator.Check()
}

// checkCommand is the check command.
var checkCommand = &cobra.Command{
	Use:          "check",
	Aliases:      []string{"check_generate"},
	Short:        "Verify that the generated stub packages load",
	Args:         cmd.DisallowArguments,
	RunE:         checkMain,
	SilenceUsage: true,
}

// checkConfiguration stores configuration for the check command.
var checkConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := checkCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&checkConfiguration.help, "help", "h", false, "Show help information")
}

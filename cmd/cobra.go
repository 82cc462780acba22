package cmd

import (
	"github.com/pkg/errors"

	"github.com/spf13/cobra"
)

// DisallowArguments is a Cobra arguments validator that disallows any
// arguments to a command.
func DisallowArguments(_ *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errors.New("this command does not accept arguments")
	}
	return nil
}

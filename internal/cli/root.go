// Package cli wires the guidelint commands.
package cli

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// ErrViolationsFound is returned by check --ci when the guide is dirty, so
// main can distinguish a failed lint (exit 1) from an operational error.
var ErrViolationsFound = errors.New("lint violations found")

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "guidelint",
		Short:         "Lint the performance guide's editorial structure",
		Long:          "guidelint checks that every section of the guide has a title, a recommendation, and exactly two Go code blocks, and that the table of contents matches the body.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newTOCCmd())
	cmd.AddCommand(newWatchCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustlay/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show rustlay CLI version information.

Displays the CLI version, commit, build date and Go version.`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
	return err
}

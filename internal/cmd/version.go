package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/protonrun/protonrun/internal/config"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", config.AppName, version)
		},
	}
}

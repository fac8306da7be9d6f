package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/protonrun/protonrun/internal/config"
	"github.com/protonrun/protonrun/internal/ui"
)

// NewConfigCmd creates the config command with its init and path
// subcommands.
func NewConfigCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the launcher configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the current configuration to disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Save(cfg.Meta.ConfigPath); err != nil {
				return err
			}
			ui.PrintSuccess("wrote %s", cfg.Meta.ConfigPath)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the resolved configuration file path",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), cfg.Meta.ConfigPath)
		},
	})

	return cmd
}

package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/protonrun/protonrun/internal/config"
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd(cfg *config.Config, log *zerolog.Logger, fsys afero.Fs, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "Launch Windows programs through a local Proton install",
		Long:          `Locates a Proton version in your Steam libraries, prepares an isolated compat prefix, and replaces itself with Proton running the given program.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewRunCmd(cfg, log, fsys))
	cmd.AddCommand(NewListCmd(cfg, log, fsys))
	cmd.AddCommand(NewDoctorCmd(cfg, log, fsys))
	cmd.AddCommand(NewConfigCmd(cfg))
	cmd.AddCommand(NewVersionCmd(version))

	return cmd
}

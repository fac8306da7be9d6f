package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/protonrun/protonrun/internal/config"
	"github.com/protonrun/protonrun/internal/doctor"
)

// NewDoctorCmd creates the doctor command.
func NewDoctorCmd(cfg *config.Config, log *zerolog.Logger, fsys afero.Fs) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the Steam installation and launcher directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doctor.Run(cfg, log, fsys, doctor.Options{FailOnMissing: strict})
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when no Proton installation is found")

	return cmd
}

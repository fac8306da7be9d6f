package app

import (
	"context"
	"errors"
	"flag"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/protonrun/protonrun/internal/cmd"
	"github.com/protonrun/protonrun/internal/config"
	"github.com/protonrun/protonrun/internal/launcher"
	"github.com/protonrun/protonrun/internal/logging"
	"github.com/protonrun/protonrun/internal/steam"
	"github.com/protonrun/protonrun/internal/ui"
)

func Run(ctx context.Context, args []string) error {
	global := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	configPath := global.String("config", os.Getenv("PROTONRUN_CONFIG"), "Path to protonrun TOML config")
	debug := global.Bool("debug", false, "Enable debug logging")
	global.SetOutput(flag.CommandLine.Output())

	if err := global.Parse(args); err != nil {
		return err
	}

	cfg, _, err := config.LoadOrCreate(*configPath)
	if err != nil {
		return err
	}
	config.ApplyEnv(cfg, os.Getenv)
	if *debug {
		cfg.Logging.Level = "debug"
	}

	ui.InitColors()
	logger := logging.New(logging.Config{
		Level: cfg.Logging.Level,
		File:  cfg.Logging.File,
	})

	fsys := afero.NewOsFs()
	root := cmd.NewRootCmd(cfg, logger, fsys, config.AppVersion)
	root.SetArgs(normalizeArgs(root, global.Args()))
	return root.ExecuteContext(ctx)
}

// normalizeArgs treats a first argument that names no subcommand as a
// run target, so `protonrun /path/to/game.exe` works as Steam launch
// options without spelling out the run verb.
func normalizeArgs(root *cobra.Command, args []string) []string {
	if len(args) == 0 {
		return args
	}
	first := args[0]
	if strings.HasPrefix(first, "-") {
		return args
	}
	switch first {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return args
	}
	for _, sub := range root.Commands() {
		if sub.Name() == first || sub.HasAlias(first) {
			return args
		}
	}
	return append([]string{"run"}, args...)
}

// ExitCode maps the categorical launcher failures onto distinct exit
// statuses: 2 missing target, 3 no matching version, 4 binary not
// executable, 1 anything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, launcher.ErrMissingTarget):
		return 2
	case errors.Is(err, steam.ErrNoVersions):
		return 3
	case errors.Is(err, steam.ErrNotExecutable):
		return 4
	}
	return 1
}

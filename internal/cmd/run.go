package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/protonrun/protonrun/internal/config"
	"github.com/protonrun/protonrun/internal/launcher"
	"github.com/protonrun/protonrun/internal/prefix"
	"github.com/protonrun/protonrun/internal/steam"
	"github.com/protonrun/protonrun/internal/ui"
)

// NewRunCmd creates the run command, the default action of the launcher.
func NewRunCmd(cfg *config.Config, log *zerolog.Logger, fsys afero.Fs) *cobra.Command {
	var (
		protonVersion string
		experimental  bool
		prefixName    string
		verb          string
		dryRun        bool
	)

	cmd := &cobra.Command{
		Use:   "run [--] <program> [args...]",
		Short: "Resolve a Proton version and hand off to it",
		Long: `Resolves a Proton installation, prepares a compat prefix, and replaces
the launcher process with Proton invoked against the given program.
Everything after the program path is passed through unchanged.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if protonVersion != "" {
				cfg.Proton.Version = protonVersion
			}
			if experimental {
				cfg.Proton.IncludeExperimental = true
			}
			if prefixName != "" {
				cfg.Prefix.Name = prefixName
			}
			if verb != "" {
				cfg.Proton.Verb = verb
			}

			if len(args) == 0 {
				ui.PrintError("no target program given")
				return launcher.ErrMissingTarget
			}

			inv, err := resolveInvocation(cfg, log, fsys, args[0], args[1:])
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), inv.String())
				return nil
			}

			log.Info().Str("binary", inv.Binary).Str("target", inv.Target).Msg("replacing process with Proton")
			return launcher.Exec(inv)
		},
	}

	// Flags after the target belong to the target, not to us.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&protonVersion, "proton", "", "Proton version or installation name to use")
	cmd.Flags().BoolVar(&experimental, "experimental", false, "allow Proton Experimental as the default choice")
	cmd.Flags().StringVar(&prefixName, "prefix-name", "", "fixed compat prefix name instead of a randomized one")
	cmd.Flags().StringVar(&verb, "verb", "", "Proton verb (run or waitforexitandrun)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the invocation instead of executing it")

	return cmd
}

func resolveInvocation(cfg *config.Config, log *zerolog.Logger, fsys afero.Fs, target string, args []string) (launcher.Invocation, error) {
	roots := cfg.LibraryRoots()

	var (
		binary    string
		toolPaths string
		err       error
	)

	switch {
	case strings.ContainsRune(cfg.Proton.Binary, filepath.Separator):
		// A binary path override bypasses discovery entirely.
		binary = cfg.Proton.Binary
		if err = steam.CheckExecutable(fsys, binary); err != nil {
			return launcher.Invocation{}, err
		}
		toolPaths = filepath.Dir(binary)
		log.Debug().Str("binary", binary).Msg("using binary path override")

	case cfg.Proton.Version != "":
		var chosen steam.Candidate
		chosen, err = steam.ResolveRequested(fsys, roots, cfg.Proton.Version)
		if err != nil {
			return launcher.Invocation{}, err
		}
		binary, err = chosen.Binary(fsys, cfg.Proton.Binary)
		if err != nil {
			return launcher.Invocation{}, err
		}
		toolPaths = chosen.Dir
		log.Info().Str("proton", chosen.Name).Msg("using requested version")

	default:
		candidates := steam.Scan(fsys, roots)
		var chosen steam.Candidate
		chosen, err = steam.SelectDefault(candidates, cfg.Proton.IncludeExperimental)
		if err != nil {
			return launcher.Invocation{}, err
		}
		binary, err = chosen.Binary(fsys, cfg.Proton.Binary)
		if err != nil {
			return launcher.Invocation{}, err
		}
		toolPaths = steam.PathList(candidates)
		log.Info().Str("proton", chosen.Name).Str("channel", string(chosen.Channel)).Msg("selected default version")
	}

	prefixDir, err := ensurePrefix(cfg, fsys)
	if err != nil {
		return launcher.Invocation{}, err
	}
	log.Info().Str("prefix", prefixDir).Msg("compat prefix ready")

	compat := launcher.CompatEnv{
		DataPath:          prefixDir,
		ClientInstallPath: cfg.Steam.Root,
		ToolPaths:         toolPaths,
	}
	return launcher.NewInvocation(binary, cfg.Proton.Verb, target, args, compat)
}

func ensurePrefix(cfg *config.Config, fsys afero.Fs) (string, error) {
	manager := prefix.NewManager(fsys, cfg.Prefix.BaseDir)
	if cfg.Prefix.Name != "" {
		return manager.Ensure(cfg.Prefix.Name)
	}
	return manager.EnsureRandom()
}

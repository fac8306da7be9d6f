package doctor

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/protonrun/protonrun/internal/config"
	"github.com/protonrun/protonrun/internal/steam"
	"github.com/protonrun/protonrun/internal/ui"
)

type Options struct {
	FailOnMissing bool
}

// Run diagnoses the environment: OS, Steam libraries, discovered Proton
// versions, and the prefix base directory.
func Run(cfg *config.Config, log *zerolog.Logger, fsys afero.Fs, options Options) error {
	if runtime.GOOS != "linux" {
		return fmt.Errorf("unsupported OS %s: Linux only", runtime.GOOS)
	}

	roots := cfg.LibraryRoots()
	missingRoots := 0
	for _, root := range roots {
		st, err := fsys.Stat(root)
		if err != nil || !st.IsDir() {
			missingRoots++
			ui.PrintWarning("library root missing: %s", root)
			log.Warn().Str("root", root).Msg("library root missing")
			continue
		}
		ui.PrintSuccess("library root: %s", root)
	}

	candidates := steam.Scan(fsys, roots)
	stable, experimental := 0, 0
	for _, c := range candidates {
		if c.Channel == steam.ChannelExperimental {
			experimental++
		} else {
			stable++
		}
	}
	if len(candidates) == 0 {
		ui.PrintWarning("no Proton installations found")
	} else {
		ui.PrintSuccess("Proton installations: %d stable, %d experimental", stable, experimental)
	}
	log.Info().Int("stable", stable).Int("experimental", experimental).Msg("library scan")

	if err := fsys.MkdirAll(cfg.Prefix.BaseDir, 0o755); err != nil {
		return fmt.Errorf("create prefix base dir: %w", err)
	}
	ui.PrintSuccess("prefix base dir: %s", cfg.Prefix.BaseDir)

	if options.FailOnMissing {
		if missingRoots == len(roots) {
			return fmt.Errorf("no usable Steam library root")
		}
		if len(candidates) == 0 {
			return fmt.Errorf("%w: install one through Steam first", steam.ErrNoVersions)
		}
	}
	return nil
}

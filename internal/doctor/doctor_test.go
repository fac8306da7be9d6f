package doctor

import (
	"io"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protonrun/protonrun/internal/config"
	"github.com/protonrun/protonrun/internal/steam"
)

func testSetup(t *testing.T, names ...string) (*config.Config, afero.Fs) {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("doctor is linux only")
	}
	cfg := &config.Config{}
	cfg.Steam.Root = "/steam"
	cfg.Prefix.BaseDir = "/data/prefixes"

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(filepath.Join("/steam", "steamapps", "common"), 0o755))
	for _, name := range names {
		require.NoError(t, fs.MkdirAll(filepath.Join("/steam", "steamapps", "common", name), 0o755))
	}
	return cfg, fs
}

func TestRunCreatesPrefixBase(t *testing.T) {
	cfg, fs := testSetup(t, "Proton 9.0")
	logger := zerolog.New(io.Discard)

	require.NoError(t, Run(cfg, &logger, fs, Options{}))

	st, err := fs.Stat("/data/prefixes")
	require.NoError(t, err)
	assert.True(t, st.IsDir())
}

func TestRunStrictWithoutCandidates(t *testing.T) {
	cfg, fs := testSetup(t)
	logger := zerolog.New(io.Discard)

	assert.NoError(t, Run(cfg, &logger, fs, Options{}))
	assert.ErrorIs(t, Run(cfg, &logger, fs, Options{FailOnMissing: true}), steam.ErrNoVersions)
}

func TestRunStrictWithoutLibraryRoot(t *testing.T) {
	cfg, fs := testSetup(t)
	cfg.Steam.Root = "/absent"
	logger := zerolog.New(io.Discard)

	assert.Error(t, Run(cfg, &logger, fs, Options{FailOnMissing: true}))
}

package launcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvocationRequiresTarget(t *testing.T) {
	_, err := NewInvocation("/p/proton", "run", "", nil, CompatEnv{})
	assert.ErrorIs(t, err, ErrMissingTarget)

	_, err = NewInvocation("/p/proton", "run", "   ", nil, CompatEnv{})
	assert.ErrorIs(t, err, ErrMissingTarget)
}

func TestNewInvocationArgv(t *testing.T) {
	inv, err := NewInvocation("/p/proton", "waitforexitandrun", "/g/app.exe", []string{"-windowed", "-w", "1920"}, CompatEnv{})
	require.NoError(t, err)
	assert.Equal(t, []string{"/p/proton", "waitforexitandrun", "/g/app.exe", "-windowed", "-w", "1920"}, inv.Argv())
}

func TestNewInvocationDefaultsVerb(t *testing.T) {
	inv, err := NewInvocation("/p/proton", "", "/g/app.exe", nil, CompatEnv{})
	require.NoError(t, err)
	assert.Equal(t, "run", inv.Verb)
}

func TestNewInvocationOverridesCompatEnv(t *testing.T) {
	t.Setenv("STEAM_COMPAT_DATA_PATH", "/stale/prefix")

	inv, err := NewInvocation("/p/proton", "run", "/g/app.exe", nil, CompatEnv{
		DataPath:          "/data/prefixes/pfx-1234",
		ClientInstallPath: "/steam",
		ToolPaths:         "/steam/steamapps/common/Proton 9.0",
	})
	require.NoError(t, err)

	var dataPaths []string
	for _, entry := range inv.Env {
		if strings.HasPrefix(entry, "STEAM_COMPAT_DATA_PATH=") {
			dataPaths = append(dataPaths, entry)
		}
	}
	assert.Equal(t, []string{"STEAM_COMPAT_DATA_PATH=/data/prefixes/pfx-1234"}, dataPaths)
	assert.Contains(t, inv.Env, "STEAM_COMPAT_CLIENT_INSTALL_PATH=/steam")
	assert.Contains(t, inv.Env, "STEAM_COMPAT_TOOL_PATHS=/steam/steamapps/common/Proton 9.0")
}

func TestNewInvocationSkipsEmptyCompatValues(t *testing.T) {
	inv, err := NewInvocation("/p/proton", "run", "/g/app.exe", nil, CompatEnv{DataPath: "/pfx"})
	require.NoError(t, err)
	for _, entry := range inv.Env {
		assert.False(t, strings.HasPrefix(entry, "STEAM_COMPAT_TOOL_PATHS="), "empty compat value must not be exported")
	}
}

func TestInvocationString(t *testing.T) {
	inv := Invocation{
		Binary: "/steam/steamapps/common/Proton 9.0/proton",
		Verb:   "run",
		Target: "/games/My Game/app.exe",
		Args:   []string{"-fullscreen"},
	}
	got := inv.String()
	assert.Equal(t, `"/steam/steamapps/common/Proton 9.0/proton" run "/games/My Game/app.exe" -fullscreen`, got)
}

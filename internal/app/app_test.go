package app

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/protonrun/protonrun/internal/cmd"
	"github.com/protonrun/protonrun/internal/config"
	"github.com/protonrun/protonrun/internal/launcher"
	"github.com/protonrun/protonrun/internal/steam"
)

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		code int
	}{
		{nil, 0},
		{launcher.ErrMissingTarget, 2},
		{fmt.Errorf("run: %w", launcher.ErrMissingTarget), 2},
		{steam.ErrNoVersions, 3},
		{fmt.Errorf("%w: nothing in library", steam.ErrNoVersions), 3},
		{steam.ErrNotExecutable, 4},
		{errors.New("something else"), 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, ExitCode(tt.err), "err=%v", tt.err)
	}
}

func TestNormalizeArgs(t *testing.T) {
	t.Parallel()
	logger := zerolog.New(io.Discard)
	root := cmd.NewRootCmd(&config.Config{}, &logger, afero.NewMemMapFs(), "test")

	tests := []struct {
		in   []string
		want []string
	}{
		{nil, nil},
		{[]string{"list"}, []string{"list"}},
		{[]string{"doctor"}, []string{"doctor"}},
		{[]string{"run", "/g/app.exe"}, []string{"run", "/g/app.exe"}},
		{[]string{"help"}, []string{"help"}},
		{[]string{"--help"}, []string{"--help"}},
		{[]string{"/g/app.exe", "-w"}, []string{"run", "/g/app.exe", "-w"}},
		{[]string{"app.exe"}, []string{"run", "app.exe"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeArgs(root, tt.in), "args=%v", tt.in)
	}
}

package prefix

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

const maxAttempts = 16

// Manager creates per-launch compat prefix directories under a base dir.
type Manager struct {
	fs      afero.Fs
	baseDir string
	newName func() string
}

func NewManager(fs afero.Fs, baseDir string) *Manager {
	return &Manager{
		fs:      fs,
		baseDir: baseDir,
		newName: func() string {
			return "pfx-" + strings.SplitN(uuid.NewString(), "-", 2)[0]
		},
	}
}

// Ensure returns the prefix directory for a fixed name, creating it if
// needed. Reusing an existing directory is intentional: a pinned name
// keeps saves and installed runtimes across launches.
func (m *Manager) Ensure(name string) (string, error) {
	dir := filepath.Join(m.baseDir, name)
	if err := m.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create prefix dir: %w", err)
	}
	return dir, nil
}

// EnsureRandom creates a fresh prefix directory with a randomized name,
// retrying on the off chance the name already exists.
func (m *Manager) EnsureRandom() (string, error) {
	if err := m.fs.MkdirAll(m.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("create prefix base dir: %w", err)
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		dir := filepath.Join(m.baseDir, m.newName())
		if _, err := m.fs.Stat(dir); err == nil {
			continue
		}
		if err := m.fs.Mkdir(dir, 0o755); err != nil {
			continue
		}
		return dir, nil
	}
	return "", errors.New("could not allocate a unique prefix dir")
}

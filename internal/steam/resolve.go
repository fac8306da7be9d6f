package steam

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

var (
	// ErrNoVersions means no Proton installation matched the request.
	ErrNoVersions = errors.New("no matching Proton version found")
	// ErrNotExecutable means the resolved Proton binary is missing or
	// lacks an execute bit.
	ErrNotExecutable = errors.New("proton binary is not executable")
)

// SelectDefault picks the version to use when none was requested.
// Stable releases are ordered by semantic version and the highest wins.
// Experimental builds are excluded unless includeExperimental is set;
// when included, an experimental build outranks every numbered release
// since it tracks the newest code.
func SelectDefault(candidates []Candidate, includeExperimental bool) (Candidate, error) {
	var best Candidate
	found := false
	for _, c := range candidates {
		switch c.Channel {
		case ChannelExperimental:
			if !includeExperimental {
				continue
			}
			if !found || best.Channel != ChannelExperimental {
				best = c
				found = true
			}
		case ChannelStable:
			if found && best.Channel == ChannelExperimental {
				continue
			}
			if !found || c.Version.GreaterThan(best.Version) ||
				(c.Version.Equal(best.Version) && c.Name < best.Name) {
				best = c
				found = true
			}
		}
	}
	if !found {
		return Candidate{}, fmt.Errorf("%w: no candidates in library", ErrNoVersions)
	}
	return best, nil
}

// ResolveRequested resolves an explicitly requested version by direct
// path probes. It never enumerates the library tree: the requested name
// is tried verbatim and with the "Proton " prefix under each root.
func ResolveRequested(fsys afero.Fs, roots []string, requested string) (Candidate, error) {
	names := []string{requested}
	if !strings.HasPrefix(requested, "Proton") {
		names = append(names, "Proton "+requested)
	}
	for _, root := range roots {
		for _, name := range names {
			dir := filepath.Join(root, "steamapps", "common", name)
			st, err := fsys.Stat(dir)
			if err != nil || !st.IsDir() {
				continue
			}
			channel, v, ok := Classify(name)
			if !ok {
				// An explicit request may name an out-of-pattern build
				// such as GE-Proton; honor it as stable with no version.
				channel = ChannelStable
			}
			return Candidate{Name: name, Dir: dir, Channel: channel, Version: v}, nil
		}
	}
	return Candidate{}, fmt.Errorf("%w: %q not present in any library", ErrNoVersions, requested)
}

// Binary resolves the Proton executable inside the candidate directory.
// override may be a bare name looked up in the directory or a path used
// as-is.
func (c Candidate) Binary(fsys afero.Fs, override string) (string, error) {
	name := override
	if name == "" {
		name = "proton"
	}
	path := name
	if !strings.ContainsRune(name, filepath.Separator) {
		path = filepath.Join(c.Dir, name)
	}
	if err := CheckExecutable(fsys, path); err != nil {
		return "", err
	}
	return path, nil
}

// CheckExecutable verifies that path exists and carries an execute bit.
func CheckExecutable(fsys afero.Fs, path string) error {
	st, err := fsys.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotExecutable, path, err)
	}
	if st.IsDir() || st.Mode()&0o111 == 0 {
		return fmt.Errorf("%w: %s", ErrNotExecutable, path)
	}
	return nil
}

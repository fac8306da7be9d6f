package steam

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	version "github.com/hashicorp/go-version"
	"github.com/spf13/afero"
)

// Channel classifies a Proton installation by its directory name.
type Channel string

const (
	ChannelStable       Channel = "stable"
	ChannelExperimental Channel = "experimental"
)

// Candidate is a Proton installation found in a Steam library.
type Candidate struct {
	Name    string
	Dir     string
	Channel Channel
	// Version is the parsed numeric token for stable releases and nil
	// for experimental builds.
	Version *version.Version
}

var (
	stablePattern       = regexp.MustCompile(`^Proton (\d+\.\d+(?:\.\d+)?)$`)
	experimentalPattern = regexp.MustCompile(`(?i)^proton.*experimental$`)
)

// Classify maps a directory name onto a channel. Names matching neither
// pattern are not Proton installations and are discarded by the caller.
func Classify(name string) (Channel, *version.Version, bool) {
	if m := stablePattern.FindStringSubmatch(name); m != nil {
		v, err := version.NewVersion(m[1])
		if err != nil {
			return "", nil, false
		}
		return ChannelStable, v, true
	}
	if experimentalPattern.MatchString(name) {
		return ChannelExperimental, nil, true
	}
	return "", nil, false
}

// Scan lists the immediate subdirectories of <root>/steamapps/common for
// every library root and keeps the ones that classify as Proton
// installations. Roots without a common dir are skipped. The result is
// ordered by root, then by directory name.
func Scan(fsys afero.Fs, roots []string) []Candidate {
	var candidates []Candidate
	for _, root := range roots {
		commonDir := filepath.Join(root, "steamapps", "common")
		entries, err := afero.ReadDir(fsys, commonDir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			channel, v, ok := Classify(entry.Name())
			if !ok {
				continue
			}
			candidates = append(candidates, Candidate{
				Name:    entry.Name(),
				Dir:     filepath.Join(commonDir, entry.Name()),
				Channel: channel,
				Version: v,
			})
		}
	}
	return candidates
}

// PathList joins the candidate directories into an OS path list, the
// form Steam itself expects in STEAM_COMPAT_TOOL_PATHS.
func PathList(candidates []Candidate) string {
	dirs := make([]string, 0, len(candidates))
	for _, c := range candidates {
		dirs = append(dirs, c.Dir)
	}
	return strings.Join(dirs, string(os.PathListSeparator))
}

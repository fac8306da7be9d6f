package launcher

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// ErrMissingTarget means no target program was supplied on the command line.
var ErrMissingTarget = errors.New("no target program given")

// CompatEnv holds the Steam compatibility variables exported to Proton.
type CompatEnv struct {
	DataPath          string
	ClientInstallPath string
	ToolPaths         string
}

// Invocation is a fully resolved Proton launch, ready for process
// replacement.
type Invocation struct {
	Binary string
	Verb   string
	Target string
	Args   []string
	Env    []string
}

// NewInvocation builds the invocation for a resolved binary and target.
// The environment is the parent environment with the compat variables
// overridden.
func NewInvocation(binary, verb, target string, args []string, compat CompatEnv) (Invocation, error) {
	if strings.TrimSpace(target) == "" {
		return Invocation{}, ErrMissingTarget
	}
	if verb == "" {
		verb = "run"
	}

	env := os.Environ()
	env = setEnv(env, "STEAM_COMPAT_DATA_PATH", compat.DataPath)
	env = setEnv(env, "STEAM_COMPAT_CLIENT_INSTALL_PATH", compat.ClientInstallPath)
	env = setEnv(env, "STEAM_COMPAT_TOOL_PATHS", compat.ToolPaths)

	return Invocation{
		Binary: binary,
		Verb:   verb,
		Target: target,
		Args:   args,
		Env:    env,
	}, nil
}

// Argv returns the argument vector for the replaced process, argv[0]
// included.
func (i Invocation) Argv() []string {
	argv := []string{i.Binary, i.Verb, i.Target}
	return append(argv, i.Args...)
}

func (i Invocation) String() string {
	parts := make([]string, 0, len(i.Args)+3)
	for _, part := range i.Argv() {
		if strings.ContainsAny(part, " \t") {
			part = fmt.Sprintf("%q", part)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}

// Exec replaces the current process image with the invocation. It only
// returns on failure; on success the caller ceases to exist and the
// child inherits signal handling and exit status.
func Exec(inv Invocation) error {
	if err := unix.Exec(inv.Binary, inv.Argv(), inv.Env); err != nil {
		return fmt.Errorf("exec %s: %w", inv.Binary, err)
	}
	return nil
}

func setEnv(env []string, key, value string) []string {
	if value == "" {
		return env
	}
	entry := key + "=" + value
	for idx, existing := range env {
		if strings.HasPrefix(existing, key+"=") {
			env[idx] = entry
			return env
		}
	}
	return append(env, entry)
}

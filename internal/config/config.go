package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const AppName = "protonrun"
const AppVersion = "1.0.0"

// DefaultVerb is the Proton verb used when none is configured.
const DefaultVerb = "run"

// DefaultBinaryName is the executable looked up inside a Proton directory.
const DefaultBinaryName = "proton"

type Config struct {
	Meta struct {
		ConfigPath string `toml:"-"`
		// SearchPath, when non-empty, replaces the library roots derived
		// from steam.root and steam.libraries. Set from
		// PROTONRUN_SEARCH_PATH only, never from the config file.
		SearchPath []string `toml:"-"`
	} `toml:"-"`
	Steam   SteamConfig   `toml:"steam"`
	Proton  ProtonConfig  `toml:"proton"`
	Prefix  PrefixConfig  `toml:"prefix"`
	Logging LoggingConfig `toml:"logging"`
}

type SteamConfig struct {
	Root      string   `toml:"root"`
	Libraries []string `toml:"libraries"`
}

type ProtonConfig struct {
	Version             string `toml:"version"`
	Binary              string `toml:"binary"`
	IncludeExperimental bool   `toml:"include_experimental"`
	Verb                string `toml:"verb"`
}

type PrefixConfig struct {
	BaseDir string `toml:"base_dir"`
	Name    string `toml:"name"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

func configHome() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config"), nil
}

func dataHome() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share"), nil
}

func defaultConfigPath() (string, error) {
	base, err := configHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName, AppName+".toml"), nil
}

func defaultSteamRoot(home string) string {
	candidates := []string{
		filepath.Join(home, ".local", "share", "Steam"),
		filepath.Join(home, ".steam", "root"),
		filepath.Join(home, ".steam", "steam"),
	}
	for _, candidate := range candidates {
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate
		}
	}
	return candidates[0]
}

func Default() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home dir: %w", err)
	}
	data, err := dataHome()
	if err != nil {
		return nil, err
	}

	baseDir := filepath.Join(data, AppName)
	cfg := &Config{}
	cfg.Steam.Root = defaultSteamRoot(home)
	cfg.Proton.Verb = DefaultVerb
	cfg.Prefix.BaseDir = filepath.Join(baseDir, "prefixes")
	cfg.Logging.Level = "info"
	cfg.Logging.File = filepath.Join(baseDir, AppName+".log")
	return cfg, nil
}

// LoadOrCreate reads the config at path, writing the defaults there first
// if no file exists yet. An empty path means the default XDG location.
func LoadOrCreate(path string) (*Config, string, error) {
	var err error
	if path == "" {
		path, err = defaultConfigPath()
		if err != nil {
			return nil, "", err
		}
	}

	cfg, err := Default()
	if err != nil {
		return nil, "", err
	}

	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		if err := cfg.Save(path); err != nil {
			return nil, "", err
		}
		cfg.Meta.ConfigPath = path
		return cfg, path, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, "", fmt.Errorf("parse config: %w", err)
		}
	}
	if cfg.Proton.Verb == "" {
		cfg.Proton.Verb = DefaultVerb
	}
	cfg.Meta.ConfigPath = path
	return cfg, path, nil
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	content, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ApplyEnv overlays environment overrides onto cfg. Precedence is
// environment > config file > default, applied field by field.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv("PROTONRUN_STEAM_ROOT"); v != "" {
		cfg.Steam.Root = v
	}
	if v := getenv("PROTONRUN_SEARCH_PATH"); v != "" {
		cfg.Meta.SearchPath = filepath.SplitList(v)
	}
	if v := getenv("PROTONRUN_VERSION"); v != "" {
		cfg.Proton.Version = v
	}
	if v := getenv("PROTONRUN_PROTON_BIN"); v != "" {
		cfg.Proton.Binary = v
	}
	if v := getenv("PROTONRUN_EXPERIMENTAL"); v != "" {
		cfg.Proton.IncludeExperimental = truthy(v)
	}
	if v := getenv("PROTONRUN_PREFIX_NAME"); v != "" {
		cfg.Prefix.Name = v
	}
	if v := getenv("PROTONRUN_DEBUG"); truthy(v) {
		cfg.Logging.Level = "debug"
	}
}

// LibraryRoots returns the Steam library roots to scan, in order. The
// search-path override replaces the configured roots entirely.
func (c *Config) LibraryRoots() []string {
	if len(c.Meta.SearchPath) > 0 {
		return c.Meta.SearchPath
	}
	roots := []string{c.Steam.Root}
	for _, lib := range c.Steam.Libraries {
		if lib != "" && lib != c.Steam.Root {
			roots = append(roots, lib)
		}
	}
	return roots
}

func truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

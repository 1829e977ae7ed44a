// Package config loads nettle's small REPL/CLI configuration surface:
// where to keep REPL history, whether to colorize output, and what
// extra directories bare (non-relative, non-absolute) imports should
// be searched in.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is nettle's runtime configuration, loaded from nettle.yaml (or
// nettle.yml) plus environment variables, with sane defaults when
// neither is present.
type Config struct {
	// HistoryFile is where the REPL's readline history is persisted.
	HistoryFile string `mapstructure:"history_file"`
	// Color enables ANSI color in REPL/CLI chrome and in printed parse
	// and runtime errors (never in token dumps, rendered ASTs, or
	// non-error object renderings).
	Color bool `mapstructure:"color"`
	// ImportPaths are extra directories consulted, in order, when an
	// import(...) name is neither absolute nor resolvable relative to
	// the importing file's own directory.
	ImportPaths []string `mapstructure:"import_paths"`
	// Verbose enables zap-based diagnostic logging of module
	// resolution during import(...) evaluation.
	Verbose bool `mapstructure:"verbose"`
}

// Load reads nettle.yaml/nettle.yml from the current directory (if
// present), overlays NETTLE_-prefixed environment variables, and fills
// in defaults for anything left unset.
func Load() (*Config, error) {
	v := viper.New()

	home, _ := os.UserHomeDir()
	v.SetDefault("history_file", filepath.Join(home, ".nettle_history"))
	v.SetDefault("color", true)
	v.SetDefault("import_paths", []string{})
	v.SetDefault("verbose", false)

	v.SetConfigName("nettle")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("NETTLE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// ResolveImport returns the first existing path formed by joining name
// against the requestor directory, then each configured ImportPath, in
// order. It does not itself read the file — callers still get an
// os.ReadFile error if nothing matches.
func (c *Config) ResolveImport(requestorDir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	candidate := filepath.Join(requestorDir, name)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}

	for _, dir := range c.ImportPaths {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return filepath.Join(requestorDir, name)
}

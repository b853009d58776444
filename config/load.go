package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads configuration from a file. If configPath is empty, it searches
// default locations and falls back to defaults when none exist.
func Load(configPath string, getenv func(string) string) (*Config, error) {
	path := resolveConfigPath(configPath, getenv)
	if path == "" {
		cfg := Defaults()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	baseDir := filepath.Dir(absPath)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.BaseDir = baseDir

	// Resolve relative paths against the config file's directory
	if cfg.StartupDir != "" && !filepath.IsAbs(cfg.StartupDir) {
		cfg.StartupDir = filepath.Join(baseDir, cfg.StartupDir)
	}
	if cfg.HistoryFile != "" && !filepath.IsAbs(cfg.HistoryFile) {
		cfg.HistoryFile = filepath.Join(baseDir, cfg.HistoryFile)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that have a closed set of legal values.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level %q (expected debug, info, warn, or error)", c.Logging.Level)
	}
	if c.StartupDir != "" {
		info, err := os.Stat(c.StartupDir)
		if err != nil {
			return fmt.Errorf("startup_dir %q does not exist", c.StartupDir)
		}
		if !info.IsDir() {
			return fmt.Errorf("startup_dir %q is not a directory", c.StartupDir)
		}
	}
	return nil
}

// resolveConfigPath finds the config file to use. An explicit path wins;
// otherwise look beside the user's other dotfiles. Empty means no config.
func resolveConfigPath(configPath string, getenv func(string) string) string {
	if configPath != "" {
		return configPath
	}
	home := getenv("HOME")
	if home == "" {
		return ""
	}
	candidates := []string{
		filepath.Join(home, ".config", "sorrel", "config.yaml"),
		filepath.Join(home, ".sorrel.yaml"),
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// HistoryPath returns the history file location, defaulting into the home
// directory when unset.
func (c *Config) HistoryPath(getenv func(string) string) string {
	if c.HistoryFile != "" {
		return c.HistoryFile
	}
	home := getenv("HOME")
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".sorrel_history")
}

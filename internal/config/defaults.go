// Package config provides default configuration values for tilecfg.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default configuration constants
const (
	defaultMaxBackups     = 10
	defaultCommandTimeout = 10 * time.Second
	defaultWatchDebounce  = 500 * time.Millisecond
)

// DefaultConfig returns the default configuration values for tilecfg.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return &Config{
		Files: FilesConfig{
			YabaiConfig: filepath.Join(home, ".yabairc"),
			SkhdConfig:  filepath.Join(home, ".skhdrc"),
		},
		Backup: BackupConfig{
			Dir:        getDefaultBackupDir(),
			MaxBackups: defaultMaxBackups,
		},
		Daemons: DaemonsConfig{
			YabaiBin:       "yabai",
			SkhdBin:        "skhd",
			CommandTimeout: defaultCommandTimeout,
		},
		Watch: WatchConfig{
			Debounce: defaultWatchDebounce,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// getDefaultBackupDir returns the default backup directory, falls back to
// empty string on error
func getDefaultBackupDir() string {
	dir, err := GetBackupDir()
	if err != nil {
		return ""
	}
	return dir
}

// fillPathDefaults resolves any path left empty in a loaded config.
func fillPathDefaults(config *Config) error {
	defaults := DefaultConfig()
	if config.Files.YabaiConfig == "" {
		config.Files.YabaiConfig = defaults.Files.YabaiConfig
	}
	if config.Files.SkhdConfig == "" {
		config.Files.SkhdConfig = defaults.Files.SkhdConfig
	}
	if config.Backup.Dir == "" {
		config.Backup.Dir = defaults.Backup.Dir
	}
	return nil
}

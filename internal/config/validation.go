package config

import (
	"fmt"
	"strings"
)

// validateConfig performs validation of application configuration values.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateFiles(config)...)
	validationErrors = append(validationErrors, validateBackup(config)...)
	validationErrors = append(validationErrors, validateDaemons(config)...)
	validationErrors = append(validationErrors, validateWatch(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateFiles(config *Config) []string {
	var validationErrors []string
	if config.Files.YabaiConfig == "" {
		validationErrors = append(validationErrors, "files.yabai_config must not be empty")
	}
	if config.Files.SkhdConfig == "" {
		validationErrors = append(validationErrors, "files.skhd_config must not be empty")
	}
	return validationErrors
}

func validateBackup(config *Config) []string {
	if config.Backup.MaxBackups < 0 {
		return []string{"backup.max_backups must be non-negative"}
	}
	return nil
}

func validateDaemons(config *Config) []string {
	var validationErrors []string
	if config.Daemons.YabaiBin == "" {
		validationErrors = append(validationErrors, "daemons.yabai_bin must not be empty")
	}
	if config.Daemons.SkhdBin == "" {
		validationErrors = append(validationErrors, "daemons.skhd_bin must not be empty")
	}
	if config.Daemons.CommandTimeout <= 0 {
		validationErrors = append(validationErrors, "daemons.command_timeout must be positive")
	}
	return validationErrors
}

func validateWatch(config *Config) []string {
	if config.Watch.Debounce < 0 {
		return []string{"watch.debounce must be non-negative"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, "logging.level must be one of trace, debug, info, warn, error")
	}
	switch config.Logging.Format {
	case "json", "console":
	default:
		validationErrors = append(validationErrors, "logging.format must be json or console")
	}
	return validationErrors
}

// Package config provides application settings management for tilecfg with
// Viper integration. These are the editor's own settings (file locations,
// backup policy, daemon binaries), not the yabai/skhd configs it edits.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete application configuration for tilecfg.
type Config struct {
	Files   FilesConfig   `mapstructure:"files" toml:"files"`
	Backup  BackupConfig  `mapstructure:"backup" toml:"backup"`
	Daemons DaemonsConfig `mapstructure:"daemons" toml:"daemons"`
	Watch   WatchConfig   `mapstructure:"watch" toml:"watch"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging"`
}

// FilesConfig holds the locations of the two managed config files.
type FilesConfig struct {
	YabaiConfig string `mapstructure:"yabai_config" toml:"yabai_config"`
	SkhdConfig  string `mapstructure:"skhd_config" toml:"skhd_config"`
}

// BackupConfig holds backup rotation policy.
type BackupConfig struct {
	Dir        string `mapstructure:"dir" toml:"dir"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups"`
}

// DaemonsConfig holds how the two external daemons are invoked.
type DaemonsConfig struct {
	YabaiBin       string        `mapstructure:"yabai_bin" toml:"yabai_bin"`
	SkhdBin        string        `mapstructure:"skhd_bin" toml:"skhd_bin"`
	CommandTimeout time.Duration `mapstructure:"command_timeout" toml:"command_timeout"`
}

// WatchConfig holds file watching behavior.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" toml:"debounce"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Configure Viper - supports toml, yaml, json automatically
	v.SetConfigName("config")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	v.SetEnvPrefix("TILECFG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"files.yabai_config":      "FILES_YABAI_CONFIG",
		"files.skhd_config":       "FILES_SKHD_CONFIG",
		"backup.dir":              "BACKUP_DIR",
		"backup.max_backups":      "BACKUP_MAX_BACKUPS",
		"daemons.yabai_bin":       "DAEMONS_YABAI_BIN",
		"daemons.skhd_bin":        "DAEMONS_SKHD_BIN",
		"daemons.command_timeout": "DAEMONS_COMMAND_TIMEOUT",
		"watch.debounce":          "WATCH_DEBOUNCE",
		"logging.level":           "LOGGING_LEVEL",
		"logging.format":          "LOGGING_FORMAT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, "TILECFG_"+env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if err := m.createDefaultConfig(); err != nil {
				return fmt.Errorf("failed to create default config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return m.unmarshalLocked()
}

// unmarshalLocked re-reads viper state into the config struct. Must be
// called with the write lock held.
func (m *Manager) unmarshalLocked() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := fillPathDefaults(config); err != nil {
		return err
	}

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		m.mu.Lock()
		if err := m.unmarshalLocked(); err != nil {
			m.mu.Unlock()
			return
		}
		config := m.config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.Unlock()

		for _, callback := range callbacks {
			callback(config)
		}
	})

	m.watching = true
	return nil
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("files.yabai_config", defaults.Files.YabaiConfig)
	m.viper.SetDefault("files.skhd_config", defaults.Files.SkhdConfig)

	m.viper.SetDefault("backup.dir", defaults.Backup.Dir)
	m.viper.SetDefault("backup.max_backups", defaults.Backup.MaxBackups)

	m.viper.SetDefault("daemons.yabai_bin", defaults.Daemons.YabaiBin)
	m.viper.SetDefault("daemons.skhd_bin", defaults.Daemons.SkhdBin)
	m.viper.SetDefault("daemons.command_timeout", defaults.Daemons.CommandTimeout)

	m.viper.SetDefault("watch.debounce", defaults.Watch.Debounce)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

// createDefaultConfig writes the default configuration to disk.
func (m *Manager) createDefaultConfig() error {
	configPath, err := GetConfigFile()
	if err != nil {
		return fmt.Errorf("failed to get config file path: %w", err)
	}
	if err := WriteConfigOrdered(DefaultConfig(), configPath); err != nil {
		return err
	}
	return GenerateSchemaFile()
}

var (
	globalManager *Manager
	globalOnce    sync.Once
)

// Init initializes the global configuration manager and loads settings.
func Init() error {
	var err error
	globalOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration. Init must have been called.
func Get() *Config {
	if globalManager == nil {
		return DefaultConfig()
	}
	return globalManager.Get()
}

// WatchGlobal starts watching the global config file and registers a reload
// callback. Init must have been called.
func WatchGlobal(callback func(*Config)) error {
	if globalManager == nil {
		return errors.New("configuration not initialized")
	}
	globalManager.OnConfigChange(callback)
	return globalManager.Watch()
}

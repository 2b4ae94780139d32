package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig_Logging(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "debug console", level: "debug", format: "console", wantErr: false},
		{name: "info json", level: "info", format: "json", wantErr: false},
		{name: "bad level", level: "verbose", format: "console", wantErr: true},
		{name: "bad format", level: "info", format: "pretty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Logging.Level = tt.level
			cfg.Logging.Format = tt.format

			err := validateConfig(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "logging.")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateConfig_Daemons(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Daemons.YabaiBin = ""
	cfg.Daemons.CommandTimeout = 0

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "daemons.yabai_bin")
	assert.Contains(t, err.Error(), "daemons.command_timeout")
}

func TestWriteConfigOrdered(t *testing.T) {
	path := t.TempDir() + "/config.toml"
	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[files]")
	assert.Contains(t, string(data), "yabai_config")

	require.Error(t, WriteConfigOrdered(nil, path))
}

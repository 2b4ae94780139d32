// Package cli provides the command-line interface for tilecfg.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tilecfg/tilecfg/internal/config"
	"github.com/tilecfg/tilecfg/internal/logging"
)

// CLI holds the loaded configuration and logger shared by the commands.
type CLI struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewCLI loads the application configuration and builds a CLI instance.
func NewCLI() (*CLI, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize configuration: %w", err)
	}
	cfg := config.Get()

	logCfg := logging.DefaultConfig()
	if lvl, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		logCfg.Level = lvl
	}
	if cfg.Logging.Format != "" {
		logCfg.Format = cfg.Logging.Format
	}

	return &CLI{
		Config: cfg,
		Logger: logging.New(logCfg),
	}, nil
}

// NewRootCmd creates the root command for tilecfg.
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tilecfg",
		Short: "Edit and validate yabai and skhd configuration files",
		Long: `tilecfg parses, validates, and regenerates yabairc and skhdrc files,
keeping a structured model of window-manager settings, rules, signals,
and hotkey bindings that round-trips to canonical text.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("tilecfg %s\n", version)
			fmt.Printf("commit: %s\n", commit)
			fmt.Printf("built: %s\n", buildDate)
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(NewValidateCmd())
	rootCmd.AddCommand(NewFormatCmd())
	rootCmd.AddCommand(NewDiffCmd())
	rootCmd.AddCommand(NewExportCmd())
	rootCmd.AddCommand(NewImportCmd())
	rootCmd.AddCommand(NewSchemaCmd())
	rootCmd.AddCommand(NewWatchCmd())
	rootCmd.AddCommand(NewDaemonCmd())
	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}

// target is one managed config file.
type target struct {
	name string // "yabai" or "skhd"
	path string
}

// targets resolves the requested file selector to concrete paths. An empty
// selector (or "all") selects both managed files.
func (c *CLI) targets(selector string) ([]target, error) {
	yabai := target{name: "yabai", path: c.Config.Files.YabaiConfig}
	skhd := target{name: "skhd", path: c.Config.Files.SkhdConfig}

	switch strings.ToLower(selector) {
	case "", "all":
		return []target{yabai, skhd}, nil
	case "yabai":
		return []target{yabai}, nil
	case "skhd":
		return []target{skhd}, nil
	default:
		return nil, fmt.Errorf("unknown target %q (expected yabai, skhd, or all)", selector)
	}
}

// readTarget reads a managed file. A missing file reads as empty so commands
// can operate before the daemons have ever been configured.
func readTarget(t target) (string, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s config %s: %w", t.name, t.path, err)
	}
	return string(data), nil
}

func selectorArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

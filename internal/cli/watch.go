package cli

import (
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tilecfg/tilecfg/internal/config"
	"github.com/tilecfg/tilecfg/internal/logging"
	"github.com/tilecfg/tilecfg/internal/watch"
)

// NewWatchCmd creates the watch command.
func NewWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-validate managed config files whenever they change",
		Long: `Watch the yabairc and skhdrc files and run validation on every save,
logging any problems. Editor atomic-rename saves are handled. Runs
until interrupted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cli, err := NewCLI()
			if err != nil {
				return err
			}
			targets, err := cli.targets("all")
			if err != nil {
				return err
			}

			byPath := make(map[string]target, len(targets))
			paths := make([]string, 0, len(targets))
			for _, t := range targets {
				byPath[filepath.Clean(t.path)] = t
				paths = append(paths, t.path)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			ctx = logging.WithContext(ctx, cli.Logger)

			onChange := func(path string) {
				log := logging.FromContext(logging.WithFile(ctx, path))
				t := byPath[path]
				text, err := readTarget(t)
				if err != nil {
					log.Error().Err(err).Msg("failed to re-read config")
					return
				}
				diags := validateText(t, text)
				if !diags.HasErrors() {
					log.Info().Msg("config changed, no problems found")
					return
				}
				for _, d := range diags {
					log.Warn().
						Int("line", d.Line).
						Str("source", d.Source).
						Msg(d.Message)
				}
			}

			if err := config.WatchGlobal(func(_ *config.Config) {
				cli.Logger.Info().Msg("application settings reloaded")
			}); err != nil {
				cli.Logger.Warn().Err(err).Msg("not watching application settings")
			}

			cli.Logger.Info().Strs("files", paths).Msg("watching config files")
			w := watch.New(cli.Config.Watch.Debounce, onChange, paths...)
			if err := w.Run(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
}

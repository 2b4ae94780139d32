package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tilecfg/tilecfg/internal/backup"
	"github.com/tilecfg/tilecfg/internal/diffview"
	"github.com/tilecfg/tilecfg/internal/skhdrc"
	"github.com/tilecfg/tilecfg/internal/yabairc"
)

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <yabai|skhd> [file.json]",
		Short: "Replace a managed config from a JSON document",
		Long: `Read a JSON document (from a file or stdin), decode it into the
structured model, and write the canonical text to the managed file. The
previous file is snapshotted to the backup directory first.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			cli, err := NewCLI()
			if err != nil {
				return err
			}
			targets, err := cli.targets(args[0])
			if err != nil {
				return err
			}
			if len(targets) != 1 {
				return fmt.Errorf("import needs a single target, yabai or skhd")
			}
			t := targets[0]

			var data []byte
			if len(args) == 2 {
				data, err = os.ReadFile(args[1])
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", args[1], err)
				}
			} else {
				data, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
			}

			var text string
			if t.name == "yabai" {
				cfg, err := yabairc.DecodeJSON(data)
				if err != nil {
					return err
				}
				text = yabairc.Generate(cfg)
			} else {
				cfg, err := skhdrc.DecodeJSON(data)
				if err != nil {
					return err
				}
				text = skhdrc.Generate(cfg)
			}

			if dryRun {
				current, err := readTarget(t)
				if err != nil {
					return err
				}
				changes := diffview.Diff(current, text)
				if !diffview.HasChanges(changes) {
					fmt.Println(dimStyle.Render("no changes"))
					return nil
				}
				fmt.Print(diffview.NewRenderer(true).Render(changes))
				fmt.Println(dimStyle.Render(diffview.Summary(changes)))
				return nil
			}

			backups := backup.NewManager(cli.Config.Backup.Dir, cli.Config.Backup.MaxBackups)
			if _, err := backups.Snapshot(cmd.Context(), t.path); err != nil {
				return fmt.Errorf("failed to back up %s: %w", t.path, err)
			}
			if err := os.WriteFile(t.path, []byte(text), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", t.path, err)
			}

			cli.Logger.Info().Str("file", t.path).Msg("imported config from JSON")
			fmt.Printf("%s %s\n", t.name, okStyle.Render("imported"))
			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Show the resulting diff without writing")

	return cmd
}

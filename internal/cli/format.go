package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tilecfg/tilecfg/internal/backup"
	"github.com/tilecfg/tilecfg/internal/diffview"
)

// NewFormatCmd creates the format command.
func NewFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format [yabai|skhd|all]",
		Short: "Regenerate config files in canonical form",
		Long: `Parse each managed file into its structured model and regenerate the
canonical text: fixed section order, normalized spacing, on/off boolean
vocabulary. Without --write the result is printed to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")

			cli, err := NewCLI()
			if err != nil {
				return err
			}
			targets, err := cli.targets(selectorArg(args))
			if err != nil {
				return err
			}

			backups := backup.NewManager(cli.Config.Backup.Dir, cli.Config.Backup.MaxBackups)

			for _, t := range targets {
				text, err := readTarget(t)
				if err != nil {
					return err
				}
				formatted := canonical(t, text)

				if !write {
					if len(targets) > 1 {
						fmt.Println(headerStyle.Render("# " + t.path))
					}
					fmt.Print(formatted)
					continue
				}

				changes := diffview.Diff(text, formatted)
				if !diffview.HasChanges(changes) {
					fmt.Printf("%s %s\n", t.name, dimStyle.Render("already canonical"))
					continue
				}

				if _, err := backups.Snapshot(cmd.Context(), t.path); err != nil {
					return fmt.Errorf("failed to back up %s: %w", t.path, err)
				}
				if err := os.WriteFile(t.path, []byte(formatted), 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", t.path, err)
				}

				cli.Logger.Info().Str("file", t.path).Msg("rewrote config in canonical form")
				fmt.Printf("%s %s (%s)\n", t.name, okStyle.Render("formatted"), diffview.Summary(changes))
			}
			return nil
		},
	}

	cmd.Flags().Bool("write", false, "Write the canonical form back to the file (with backup)")

	return cmd
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tilecfg/tilecfg/internal/skhdrc"
	"github.com/tilecfg/tilecfg/internal/yabairc"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <yabai|skhd>",
		Short: "Export a managed config as JSON",
		Long: `Parse a managed file and emit its structured model as JSON, suitable
for GUI front-ends and scripting. Lines the parser does not recognize
are dropped; run validate first to see what would be lost.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")

			cli, err := NewCLI()
			if err != nil {
				return err
			}
			targets, err := cli.targets(args[0])
			if err != nil {
				return err
			}
			if len(targets) != 1 {
				return fmt.Errorf("export needs a single target, yabai or skhd")
			}
			t := targets[0]

			text, err := readTarget(t)
			if err != nil {
				return err
			}

			var data []byte
			if t.name == "yabai" {
				data, err = yabairc.EncodeJSON(yabairc.Build(text))
			} else {
				data, err = skhdrc.EncodeJSON(skhdrc.Build(text))
			}
			if err != nil {
				return fmt.Errorf("failed to encode %s config: %w", t.name, err)
			}

			if out == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			cli.Logger.Info().Str("file", out).Msg("exported config")
			return nil
		},
	}

	cmd.Flags().String("out", "", "Write JSON to a file instead of stdout")

	return cmd
}

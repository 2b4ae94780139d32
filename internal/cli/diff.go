package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tilecfg/tilecfg/internal/diffview"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [yabai|skhd|all]",
		Short: "Show what format --write would change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			color, _ := cmd.Flags().GetBool("color")

			cli, err := NewCLI()
			if err != nil {
				return err
			}
			targets, err := cli.targets(selectorArg(args))
			if err != nil {
				return err
			}

			renderer := diffview.NewRenderer(color)
			for _, t := range targets {
				text, err := readTarget(t)
				if err != nil {
					return err
				}
				changes := diffview.Diff(text, canonical(t, text))

				fmt.Println(headerStyle.Render(fmt.Sprintf("%s (%s)", t.name, t.path)))
				if !diffview.HasChanges(changes) {
					fmt.Println(dimStyle.Render("  no changes"))
					continue
				}
				fmt.Print(renderer.Render(changes))
				fmt.Println(dimStyle.Render(diffview.Summary(changes)))
			}
			return nil
		},
	}

	cmd.Flags().Bool("color", true, "Colorize diff output")

	return cmd
}

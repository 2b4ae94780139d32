package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [yabai|skhd|all]",
		Short: "Check managed config files for malformed lines",
		Long: `Scan the yabairc and skhdrc files and report every line the daemons
would reject or silently ignore. Diagnostics carry 1-based line numbers
and the offending line verbatim.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cli, err := NewCLI()
			if err != nil {
				return err
			}
			targets, err := cli.targets(selectorArg(args))
			if err != nil {
				return err
			}

			total := 0
			for _, t := range targets {
				text, err := readTarget(t)
				if err != nil {
					return err
				}
				diags := validateText(t, text)
				total += len(diags)

				fmt.Println(headerStyle.Render(fmt.Sprintf("%s (%s)", t.name, t.path)))
				if !diags.HasErrors() {
					fmt.Println(okStyle.Render("  no problems found"))
					continue
				}
				for _, d := range diags {
					fmt.Printf("  %s %s\n", errStyle.Render(fmt.Sprintf("line %d:", d.Line)), d.Message)
					fmt.Printf("    %s\n", dimStyle.Render(d.Source))
				}
			}

			if total > 0 {
				return fmt.Errorf("%d problem(s) found", total)
			}
			return nil
		},
	}
}

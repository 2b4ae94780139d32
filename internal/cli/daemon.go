package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tilecfg/tilecfg/internal/daemon"
)

// NewDaemonCmd creates the daemon command group.
func NewDaemonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Control the yabai and skhd daemons",
	}

	cmd.AddCommand(newDaemonActionCmd("start", "started", "Start daemon services", (*daemon.Service).Start))
	cmd.AddCommand(newDaemonActionCmd("stop", "stopped", "Stop daemon services", (*daemon.Service).Stop))
	cmd.AddCommand(newDaemonActionCmd("restart", "restarted", "Restart daemon services", (*daemon.Service).Restart))
	cmd.AddCommand(newDaemonStatusCmd())
	cmd.AddCommand(newDaemonApplyCmd())

	return cmd
}

func newDaemonApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <key> <value>",
		Short: "Apply a yabai config setting to the running daemon",
		Long: `Send one setting to the running yabai daemon via 'yabai -m config'
without touching the yabairc file. The change lasts until the daemon
restarts.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := NewCLI()
			if err != nil {
				return err
			}
			services, err := cli.services("yabai")
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cli.Config.Daemons.CommandTimeout)
			defer cancel()
			if err := services[0].ApplySetting(ctx, args[0], args[1]); err != nil {
				return fmt.Errorf("failed to apply %s: %w", args[0], err)
			}
			fmt.Printf("%s %s %s\n", okStyle.Render("applied"), args[0], args[1])
			return nil
		},
	}
}

func newDaemonActionCmd(verb, done, short string, action func(*daemon.Service, context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s [yabai|skhd|all]", verb),
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := NewCLI()
			if err != nil {
				return err
			}
			services, err := cli.services(selectorArg(args))
			if err != nil {
				return err
			}

			for _, svc := range services {
				ctx, cancel := context.WithTimeout(cmd.Context(), cli.Config.Daemons.CommandTimeout)
				err := action(svc, ctx)
				cancel()
				if err != nil {
					return fmt.Errorf("failed to %s %s: %w", verb, svc.Name(), err)
				}
				fmt.Printf("%s %s\n", svc.Name(), okStyle.Render(done))
			}
			return nil
		},
	}
}

func newDaemonStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [yabai|skhd|all]",
		Short: "Show whether daemon services are running",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := NewCLI()
			if err != nil {
				return err
			}
			services, err := cli.services(selectorArg(args))
			if err != nil {
				return err
			}

			for _, svc := range services {
				ctx, cancel := context.WithTimeout(cmd.Context(), cli.Config.Daemons.CommandTimeout)
				running := svc.Running(ctx)
				version, verr := svc.Version(ctx)
				cancel()

				state := errStyle.Render("stopped")
				if running {
					state = okStyle.Render("running")
				}
				if verr == nil && version != "" {
					fmt.Printf("%s %s %s\n", svc.Name(), state, dimStyle.Render(version))
				} else {
					fmt.Printf("%s %s\n", svc.Name(), state)
				}
			}
			return nil
		},
	}
}

// services resolves the selector to daemon services using the configured
// binaries.
func (c *CLI) services(selector string) ([]*daemon.Service, error) {
	targets, err := c.targets(selector)
	if err != nil {
		return nil, err
	}

	runner := daemon.ExecRunner{}
	services := make([]*daemon.Service, 0, len(targets))
	for _, t := range targets {
		bin := c.Config.Daemons.YabaiBin
		if t.name == "skhd" {
			bin = c.Config.Daemons.SkhdBin
		}
		services = append(services, daemon.NewService(t.name, bin, runner))
	}
	return services, nil
}

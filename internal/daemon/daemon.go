// Package daemon wraps the command-line surfaces of the yabai and skhd
// daemons: service start/stop/restart, liveness, and live config application.
package daemon

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/tilecfg/tilecfg/internal/logging"
)

// Runner executes one external command and returns its combined output.
// The exec-backed implementation is the only one used outside tests.
type Runner interface {
	Run(ctx context.Context, bin string, args ...string) (string, error)
}

// ExecRunner runs commands through os/exec.
type ExecRunner struct{}

// Run executes bin with args, honoring ctx for cancellation.
func (ExecRunner) Run(ctx context.Context, bin string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, bin, args...).CombinedOutput()
	output := strings.TrimSpace(string(out))
	if err != nil {
		if output != "" {
			return output, fmt.Errorf("%s %s: %w: %s", bin, strings.Join(args, " "), err, output)
		}
		return output, fmt.Errorf("%s %s: %w", bin, strings.Join(args, " "), err)
	}
	return output, nil
}

// Service controls one daemon through its CLI.
type Service struct {
	name   string
	bin    string
	runner Runner
}

// NewService creates a Service for the named daemon binary.
func NewService(name, bin string, runner Runner) *Service {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Service{name: name, bin: bin, runner: runner}
}

// Name returns the daemon name, e.g. "yabai".
func (s *Service) Name() string { return s.name }

// Start starts the daemon service.
func (s *Service) Start(ctx context.Context) error {
	return s.serviceCommand(ctx, "--start-service")
}

// Stop stops the daemon service.
func (s *Service) Stop(ctx context.Context) error {
	return s.serviceCommand(ctx, "--stop-service")
}

// Restart restarts the daemon so an edited config takes effect.
func (s *Service) Restart(ctx context.Context) error {
	return s.serviceCommand(ctx, "--restart-service")
}

func (s *Service) serviceCommand(ctx context.Context, flag string) error {
	log := logging.FromContext(ctx)
	log.Info().Str("daemon", s.name).Str("flag", flag).Msg("invoking daemon service command")

	if _, err := s.runner.Run(ctx, s.bin, flag); err != nil {
		return fmt.Errorf("failed to control %s: %w", s.name, err)
	}
	return nil
}

// Running reports whether the daemon responds on its CLI. pgrep is used as
// the liveness probe since neither daemon exposes a status flag.
func (s *Service) Running(ctx context.Context) bool {
	_, err := s.runner.Run(ctx, "pgrep", "-x", s.name)
	return err == nil
}

// Version queries the daemon binary for its version string.
func (s *Service) Version(ctx context.Context) (string, error) {
	out, err := s.runner.Run(ctx, s.bin, "--version")
	if err != nil {
		return "", fmt.Errorf("failed to query %s version: %w", s.name, err)
	}
	return out, nil
}

// ApplySetting applies one config key live through `yabai -m config`,
// without a restart. Only meaningful for the yabai service.
func (s *Service) ApplySetting(ctx context.Context, key, value string) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("key", key).Str("value", value).Msg("applying config setting live")

	if _, err := s.runner.Run(ctx, s.bin, "-m", "config", key, value); err != nil {
		return fmt.Errorf("failed to apply %s=%s: %w", key, value, err)
	}
	return nil
}

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilecfg/tilecfg/internal/config"
)

func testCLI() *CLI {
	cfg := config.DefaultConfig()
	cfg.Files.YabaiConfig = "/tmp/yabairc"
	cfg.Files.SkhdConfig = "/tmp/skhdrc"
	return &CLI{Config: cfg}
}

func TestTargets(t *testing.T) {
	cli := testCLI()

	both, err := cli.targets("")
	require.NoError(t, err)
	require.Len(t, both, 2)
	assert.Equal(t, "yabai", both[0].name)
	assert.Equal(t, "/tmp/yabairc", both[0].path)
	assert.Equal(t, "skhd", both[1].name)

	all, err := cli.targets("all")
	require.NoError(t, err)
	assert.Equal(t, both, all)

	skhd, err := cli.targets("SKHD")
	require.NoError(t, err)
	require.Len(t, skhd, 1)
	assert.Equal(t, "/tmp/skhdrc", skhd[0].path)

	_, err = cli.targets("hammerspoon")
	assert.Error(t, err)
}

func TestCanonicalDispatch(t *testing.T) {
	yabai := target{name: "yabai"}
	out := canonical(yabai, "yabai -m config layout float\n")
	assert.Contains(t, out, "yabai -m config layout float")
	assert.Contains(t, out, "#!/usr/bin/env sh")

	skhd := target{name: "skhd"}
	out = canonical(skhd, "alt - h : yabai -m window --focus west\n")
	assert.Contains(t, out, "alt - h : yabai -m window --focus west")
}

func TestValidateTextDispatch(t *testing.T) {
	diags := validateText(target{name: "yabai"}, "not a yabai line\n")
	require.Len(t, diags, 1)
	assert.Equal(t, 1, diags[0].Line)

	diags = validateText(target{name: "skhd"}, "alt - h\n")
	require.Len(t, diags, 1)
}

func TestRootCmdHasSubcommands(t *testing.T) {
	root := NewRootCmd("test", "none", "today")

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{
		"version", "validate", "format", "diff", "export", "import",
		"schema", "watch", "daemon", "config",
	} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

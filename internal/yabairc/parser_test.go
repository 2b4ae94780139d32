package yabairc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Settings(t *testing.T) {
	text := `#!/usr/bin/env sh
# layout
yabai -m config layout float
yabai -m config window_gap 12
yabai -m config split_ratio 0.6
yabai -m config mouse_follows_focus on
yabai -m config focus_follows_mouse autoraise
`
	cfg := Build(text)
	assert.Equal(t, "float", cfg.Settings.Layout)
	assert.Equal(t, 12, cfg.Settings.WindowGap)
	assert.Equal(t, 0.6, cfg.Settings.SplitRatio)
	assert.True(t, cfg.Settings.MouseFollowsFocus)
	assert.Equal(t, "autoraise", cfg.Settings.FocusFollowsMouse)

	// Absent keys take documented defaults.
	assert.Equal(t, 6, cfg.Settings.TopPadding)
	assert.Equal(t, "second_child", cfg.Settings.WindowPlacement)
	assert.True(t, cfg.Settings.WindowShadow)
}

func TestBuild_UnknownKeyPreserved(t *testing.T) {
	cfg := Build("yabai -m config menubar_opacity 0.8\n")
	require.Len(t, cfg.Settings.Extra, 1)
	assert.Equal(t, "menubar_opacity", cfg.Settings.Extra[0].Key)
	assert.Equal(t, FloatValue(0.8), cfg.Settings.Extra[0].Value)
}

func TestBuild_Rules(t *testing.T) {
	text := `
yabai -m rule --add app="^Finder$" manage=off
yabai -m rule --add title="Preferences" sticky=on layer=above
yabai -m rule --add app="^Music$" space=3
yabai -m rule --add manage=off
yabai -m rule --remove label=old
`
	cfg := Build(text)
	require.Len(t, cfg.Rules, 3, "selector-less rule must be dropped")

	assert.Equal(t, "Finder", cfg.Rules[0].App, "anchors stripped on parse")
	require.NotNil(t, cfg.Rules[0].Manage)
	assert.False(t, *cfg.Rules[0].Manage)

	assert.Equal(t, "Preferences", cfg.Rules[1].Title)
	require.NotNil(t, cfg.Rules[1].Sticky)
	assert.True(t, *cfg.Rules[1].Sticky)
	assert.Equal(t, LayerAbove, cfg.Rules[1].Layer)

	assert.Equal(t, 3, cfg.Rules[2].Space)
}

func TestBuild_Signals(t *testing.T) {
	text := `
yabai -m signal --add event=window_focused action="echo hi"
yabai -m signal --add event=window_created action="sketchybar --trigger windows" label=bar
yabai -m signal --add event=window_destroyed
yabai -m signal --add action="echo orphan"
`
	cfg := Build(text)
	require.Len(t, cfg.Signals, 2, "incomplete signals must be dropped")
	assert.Equal(t, Signal{Event: "window_focused", Action: "echo hi"}, cfg.Signals[0])
	assert.Equal(t, "bar", cfg.Signals[1].Label)
}

func TestBuild_SpaceOverrides(t *testing.T) {
	text := `
yabai -m config --space 2 layout float
yabai -m config --space 2 window_gap 0
yabai -m config --space 1 top_padding 20
`
	cfg := Build(text)
	require.Len(t, cfg.Spaces, 2)

	assert.Equal(t, 1, cfg.Spaces[0].Index, "overrides sorted by index")
	require.NotNil(t, cfg.Spaces[0].TopPadding)
	assert.Equal(t, 20, *cfg.Spaces[0].TopPadding)

	assert.Equal(t, 2, cfg.Spaces[1].Index)
	assert.Equal(t, "float", cfg.Spaces[1].Layout)
	require.NotNil(t, cfg.Spaces[1].WindowGap)
	assert.Equal(t, 0, *cfg.Spaces[1].WindowGap)
}

func TestBuild_IgnoresNoise(t *testing.T) {
	text := `
# a comment
yabai -m space --focus 2
borders active_color=0xffe1e3e4 &
echo "yabai configuration loaded.."

yabai -m config layout bsp
`
	cfg := Build(text)
	assert.Equal(t, "bsp", cfg.Settings.Layout)
	assert.Empty(t, cfg.Rules)
	assert.Empty(t, cfg.Signals)
}

func TestParse_ReturnsModelAndDiagnostics(t *testing.T) {
	text := "yabai -m signal --add event=window_focused\n"
	cfg, diags := Parse(text)
	assert.Empty(t, cfg.Signals)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "action")
}

func TestConfig_Exclusions(t *testing.T) {
	off := false
	on := true
	cfg := DefaultConfig().
		WithRule(WindowRule{App: "Finder", Manage: &off}).
		WithRule(WindowRule{Title: "Pop-up", Manage: &off}).
		WithRule(WindowRule{App: "mpv", Sticky: &on, Layer: LayerAbove})

	excl := cfg.Exclusions()
	require.Len(t, excl, 2, "title-only rules have no exclusion view")
	assert.Equal(t, ExclusionRule{App: "Finder", ManageOff: true, Layer: LayerNormal}, excl[0])
	assert.Equal(t, ExclusionRule{App: "mpv", Sticky: true, Layer: LayerAbove}, excl[1])
}

func TestConfig_WithSpaceUniqueness(t *testing.T) {
	gap := 4
	cfg, err := DefaultConfig().WithSpace(SpaceConfig{Index: 2, Layout: "float"})
	require.NoError(t, err)
	cfg, err = cfg.WithSpace(SpaceConfig{Index: 2, WindowGap: &gap})
	require.NoError(t, err)

	require.Len(t, cfg.Spaces, 1, "same index replaces, never duplicates")
	assert.Empty(t, cfg.Spaces[0].Layout)
	require.NotNil(t, cfg.Spaces[0].WindowGap)

	_, err = cfg.WithSpace(SpaceConfig{Index: 0})
	require.Error(t, err)
}

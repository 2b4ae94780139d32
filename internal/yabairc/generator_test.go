package yabairc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_SectionOrder(t *testing.T) {
	off := false
	cfg := DefaultConfig().WithRule(WindowRule{App: "Finder", Manage: &off})
	cfg = cfg.WithSignal(Signal{Event: "window_focused", Action: "echo hi"})

	out := Generate(cfg)
	lines := strings.Split(out, "\n")

	assert.Equal(t, "#!/usr/bin/env sh", lines[0], "canonical text begins with the shebang")
	assert.Equal(t, `echo "yabai configuration loaded.."`, lines[len(lines)-2])
	assert.Equal(t, "", lines[len(lines)-1], "output ends with a newline")

	ruleIdx := strings.Index(out, "rule --add")
	layoutIdx := strings.Index(out, "config layout")
	signalIdx := strings.Index(out, "signal --add")
	require.True(t, ruleIdx > 0 && layoutIdx > 0 && signalIdx > 0)
	assert.Less(t, ruleIdx, layoutIdx, "rules must apply before any other state")
	assert.Less(t, layoutIdx, signalIdx)
}

func TestGenerate_BoolVocabulary(t *testing.T) {
	out := Generate(DefaultConfig())
	assert.Contains(t, out, "yabai -m config mouse_follows_focus off")
	assert.Contains(t, out, "yabai -m config window_shadow on")
	assert.NotContains(t, out, " true")
	assert.NotContains(t, out, " false")
}

func TestGenerate_ConditionalBlocks(t *testing.T) {
	cfg := DefaultConfig()
	out := Generate(cfg)
	assert.NotContains(t, out, "window_opacity")
	assert.NotContains(t, out, "window_border")
	assert.NotContains(t, out, "external_bar")

	cfg.Settings.WindowOpacity = true
	cfg.Settings.WindowBorder = true
	cfg.Settings.ExternalBar = "main:26:0"
	out = Generate(cfg)
	assert.Contains(t, out, "yabai -m config window_opacity on")
	assert.Contains(t, out, "yabai -m config active_window_opacity 1")
	assert.Contains(t, out, "yabai -m config window_border_width 4")
	assert.Contains(t, out, "yabai -m config external_bar main:26:0")
}

func TestGenerate_ExclusionAnchors(t *testing.T) {
	out := Generate(DefaultConfig().WithRule(ExclusionRule{App: "Finder", ManageOff: true}.Rule()))
	assert.Contains(t, out, `yabai -m rule --add app="^Finder$" manage=off`)

	reparsed := Build(out)
	require.Len(t, reparsed.Rules, 1)
	assert.Equal(t, "Finder", reparsed.Rules[0].App, "anchors strip back on re-parse")
}

func TestGenerate_EmptyRuleNotEmitted(t *testing.T) {
	out := Generate(DefaultConfig().WithRule(WindowRule{App: "Finder"}))
	assert.NotContains(t, out, "rule --add", "a rule with an empty action set is not emitted")
}

func TestRoundTrip_Directive(t *testing.T) {
	manageOff := false
	sticky := true
	gap := 0
	cfg := DefaultConfig()
	cfg.Settings.Layout = "float"
	cfg.Settings.WindowGap = 10
	cfg.Settings.SplitRatio = 0.4
	cfg.Settings.WindowOpacity = true
	cfg.Settings.ActiveWindowOpacity = 0.95
	cfg.Settings.ExternalBar = "main:26:0"
	cfg = cfg.WithRule(WindowRule{App: "Finder", Manage: &manageOff})
	cfg = cfg.WithRule(WindowRule{App: "mpv", Sticky: &sticky, Layer: LayerAbove, Space: 2})
	cfg = cfg.WithSignal(Signal{Event: "window_focused", Action: "echo hi"})
	cfg = cfg.WithSignal(Signal{Event: "space_changed", Action: "sketchybar --trigger space", Label: "bar"})
	var err error
	cfg, err = cfg.WithSpace(SpaceConfig{Index: 3, Layout: "stack", WindowGap: &gap})
	require.NoError(t, err)

	text := Generate(cfg)
	reparsed, diags := Parse(text)
	assert.Empty(t, diags, "canonical text must validate cleanly")
	assert.Equal(t, cfg, reparsed)

	// Generation is byte-stable across a round trip.
	assert.Equal(t, text, Generate(reparsed))
}

func TestJSONExchange_Directive(t *testing.T) {
	cfg := DefaultConfig().WithSignal(Signal{Event: "window_focused", Action: "echo hi"})

	data, err := EncodeJSON(cfg)
	require.NoError(t, err)

	decoded, err := DecodeJSON(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, decoded)

	assert.Contains(t, string(data), `"window_gap"`, "exchange keys are snake_case")
}

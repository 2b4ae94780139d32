package skhdrc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_GroupedByCategory(t *testing.T) {
	focus := NewBinding([]string{"alt"}, "h", "yabai -m window --focus west")
	custom := NewBinding([]string{"alt"}, "t", "open -a Terminal")
	move := NewBinding([]string{"shift", "alt"}, "j", "yabai -m window --swap south")
	cfg := Config{}.WithBinding(custom).WithBinding(focus).WithBinding(move)

	out := Generate(cfg)

	focusIdx := strings.Index(out, "# === Window Focus ===")
	moveIdx := strings.Index(out, "# === Window Movement ===")
	customIdx := strings.Index(out, "# === Custom ===")
	require.True(t, focusIdx >= 0 && moveIdx >= 0 && customIdx >= 0)
	assert.Less(t, focusIdx, moveIdx, "groups follow the fixed category order")
	assert.Less(t, moveIdx, customIdx)

	assert.Contains(t, out, "alt - h : yabai -m window --focus west\n")
	assert.Contains(t, out, "shift + alt - j : yabai -m window --swap south\n")
}

func TestGenerate_DescriptionAndDisabled(t *testing.T) {
	b := NewBinding([]string{"alt"}, "x", "yabai -m window --close")
	b.Description = "close the focused window"
	b.Enabled = false
	out := Generate(Config{}.WithBinding(b))

	assert.Contains(t, out, "# close the focused window\n# [DISABLED] alt - x : yabai -m window --close\n")
}

func TestGenerate_NoModifierBinding(t *testing.T) {
	out := Generate(Config{}.WithBinding(NewBinding(nil, "f11", "yabai -m window --toggle zoom-fullscreen")))
	assert.Contains(t, out, "f11 : yabai -m window --toggle zoom-fullscreen\n")
}

func TestRoundTrip_Bindings(t *testing.T) {
	focus := NewBinding([]string{"alt"}, "h", "yabai -m window --focus west")
	focus.Description = "focus west"
	move := NewBinding([]string{"shift", "alt"}, "j", "yabai -m window --swap south")
	term := NewBinding([]string{"cmd"}, "return", "open -a Terminal")
	term.Category = CategoryCustom
	cfg := Config{}.WithBinding(focus).WithBinding(move).WithBinding(term)

	text := Generate(cfg)
	reparsed, diags := Parse(text)
	assert.Empty(t, diags)

	require.Len(t, reparsed.Bindings, len(cfg.Bindings))
	for i := range cfg.Bindings {
		want := cfg.Bindings[i]
		got := reparsed.Bindings[i]
		assert.Equal(t, want.Modifiers, got.Modifiers)
		assert.Equal(t, want.Key, got.Key)
		assert.Equal(t, want.Action, got.Action)
		assert.Equal(t, want.Category, got.Category)
		assert.Equal(t, want.Description, got.Description)
		assert.Equal(t, want.Enabled, got.Enabled)
	}

	// Canonical text is byte-stable across a round trip.
	assert.Equal(t, text, Generate(reparsed))
}

// A disabled binding must survive generate → parse. skhd itself skips the
// commented line, but the editor model keeps the record.
func TestRoundTrip_DisabledBindingSurvives(t *testing.T) {
	b := NewBinding([]string{"alt"}, "x", "yabai -m window --close")
	b.Enabled = false
	cfg := Config{}.WithBinding(b)

	reparsed, _ := Parse(Generate(cfg))
	require.Len(t, reparsed.Bindings, 1)
	assert.False(t, reparsed.Bindings[0].Enabled)
	assert.Equal(t, "x", reparsed.Bindings[0].Key)
	assert.Equal(t, "yabai -m window --close", reparsed.Bindings[0].Action)
}

func TestJSONExchange_Bindings(t *testing.T) {
	cfg := Config{}.WithBinding(NewBinding([]string{"alt"}, "h", "yabai -m window --focus west"))

	data, err := EncodeJSON(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"modifiers"`)

	decoded, err := DecodeJSON(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, decoded)
}

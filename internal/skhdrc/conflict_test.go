package skhdrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasConflict_ModifierOrderInsignificant(t *testing.T) {
	cfg := Config{}.WithBinding(NewBinding([]string{"shift", "alt"}, "h", "yabai -m window --swap west"))

	assert.True(t, cfg.HasConflict([]string{"alt", "shift"}, "h", ""))
	assert.True(t, cfg.HasConflict([]string{"ALT", "Shift"}, "H", ""), "comparison is case-insensitive")
	assert.False(t, cfg.HasConflict([]string{"alt"}, "h", ""))
	assert.False(t, cfg.HasConflict([]string{"shift", "alt"}, "j", ""))
}

func TestHasConflict_ExcludesSelf(t *testing.T) {
	b := NewBinding([]string{"alt"}, "h", "yabai -m window --focus west")
	cfg := Config{}.WithBinding(b)

	assert.False(t, cfg.HasConflict([]string{"alt"}, "h", b.ID),
		"a binding does not conflict with itself while being edited")
	assert.True(t, cfg.HasConflict([]string{"alt"}, "h", "other-id"))
}

func TestHasConflict_DisabledNeverConflicts(t *testing.T) {
	disabled := NewBinding([]string{"alt"}, "h", "yabai -m window --focus west")
	disabled.Enabled = false
	cfg := Config{}.WithBinding(disabled)

	assert.False(t, cfg.HasConflict([]string{"alt"}, "h", ""))

	enabled := NewBinding([]string{"alt"}, "h", "yabai -m window --focus east")
	cfg = cfg.WithBinding(enabled)
	assert.True(t, cfg.HasConflict([]string{"alt"}, "h", ""))
}

func TestConflicts_ReturnsOffenders(t *testing.T) {
	a := NewBinding([]string{"alt"}, "h", "yabai -m window --focus west")
	b := NewBinding([]string{"alt"}, "h", "yabai -m window --focus east")
	c := NewBinding([]string{"alt"}, "j", "yabai -m window --focus south")
	cfg := Config{}.WithBinding(a).WithBinding(b).WithBinding(c)

	got := cfg.Conflicts([]string{"alt"}, "h", "")
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)
}

func TestDuplicateHotkeys(t *testing.T) {
	a := NewBinding([]string{"alt"}, "h", "yabai -m window --focus west")
	b := NewBinding([]string{"alt"}, "h", "yabai -m window --focus east")
	solo := NewBinding([]string{"cmd"}, "r", "skhd --restart-service")
	off := NewBinding([]string{"alt"}, "h", "yabai -m window --focus north")
	off.Enabled = false

	cfg := Config{}.WithBinding(a).WithBinding(solo).WithBinding(b).WithBinding(off)

	groups := cfg.DuplicateHotkeys()
	require.Len(t, groups, 1)
	require.Len(t, groups[0], 2)
	assert.Equal(t, a.ID, groups[0][0].ID)
	assert.Equal(t, b.ID, groups[0][1].ID)
}

package skhdrc

import (
	"sort"
	"strings"
)

// normalizeHotkey folds a modifier list and key into a canonical comparison
// form: modifiers are lowercased and set-sorted, the key is lowercased.
// Two hotkeys with the same normal form collide regardless of how the
// modifiers were ordered in the source text.
func normalizeHotkey(modifiers []string, key string) string {
	mods := make([]string, 0, len(modifiers))
	for _, m := range modifiers {
		m = strings.ToLower(strings.TrimSpace(m))
		if m != "" {
			mods = append(mods, m)
		}
	}
	sort.Strings(mods)
	return strings.Join(mods, "+") + "-" + strings.ToLower(key)
}

// HasConflict reports whether an enabled binding other than excludeID
// already uses the hotkey. Disabled bindings never conflict.
func (c Config) HasConflict(modifiers []string, key, excludeID string) bool {
	return len(c.Conflicts(modifiers, key, excludeID)) > 0
}

// Conflicts returns every enabled binding, excluding excludeID, whose
// hotkey collides with the given one.
func (c Config) Conflicts(modifiers []string, key, excludeID string) []Binding {
	want := normalizeHotkey(modifiers, key)
	var out []Binding
	for _, b := range c.Bindings {
		if !b.Enabled || b.ID == excludeID {
			continue
		}
		if normalizeHotkey(b.Modifiers, b.Key) == want {
			out = append(out, b.clone())
		}
	}
	return out
}

// DuplicateHotkeys groups enabled bindings that share a hotkey. Each group
// holds at least two bindings, in definition order.
func (c Config) DuplicateHotkeys() [][]Binding {
	byHotkey := make(map[string][]Binding)
	var order []string
	for _, b := range c.Bindings {
		if !b.Enabled {
			continue
		}
		norm := normalizeHotkey(b.Modifiers, b.Key)
		if _, seen := byHotkey[norm]; !seen {
			order = append(order, norm)
		}
		byHotkey[norm] = append(byHotkey[norm], b.clone())
	}

	var out [][]Binding
	for _, norm := range order {
		if group := byHotkey[norm]; len(group) > 1 {
			out = append(out, group)
		}
	}
	return out
}

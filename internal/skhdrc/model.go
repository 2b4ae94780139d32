// Package skhdrc implements the binding-side config language engine: it
// parses skhd hotkey text into structured binding records and regenerates
// canonical text grouped by category. Parse and generate are pure functions
// with no shared state; identifiers are assigned per parse invocation.
package skhdrc

import (
	"strings"

	"github.com/google/uuid"
)

// Binding is one hotkey record. Modifier order is preserved for display but
// is insignificant for equality and conflict detection.
type Binding struct {
	ID          string   `json:"id"`
	Modifiers   []string `json:"modifiers,omitempty"`
	Key         string   `json:"key"`
	Action      string   `json:"action"`
	Category    Category `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	Enabled     bool     `json:"enabled"`
}

// NewBinding constructs an enabled binding with a fresh identifier and a
// classified category.
func NewBinding(modifiers []string, key, action string) Binding {
	return Binding{
		ID:        uuid.NewString(),
		Modifiers: append([]string(nil), modifiers...),
		Key:       key,
		Action:    action,
		Category:  Classify(action),
		Enabled:   true,
	}
}

// Hotkey renders the modifier/key part in canonical form, e.g.
// "shift + alt - j" or just "j" when no modifiers apply.
func (b Binding) Hotkey() string {
	if len(b.Modifiers) == 0 {
		return b.Key
	}
	return strings.Join(b.Modifiers, " + ") + " - " + b.Key
}

func (b Binding) clone() Binding {
	out := b
	if len(b.Modifiers) > 0 {
		out.Modifiers = append([]string(nil), b.Modifiers...)
	}
	return out
}

// Config is the binding-side aggregate.
type Config struct {
	Bindings []Binding `json:"bindings,omitempty"`
}

// Clone returns a deep structural copy.
func (c Config) Clone() Config {
	var out Config
	if len(c.Bindings) > 0 {
		out.Bindings = make([]Binding, len(c.Bindings))
		for i, b := range c.Bindings {
			out.Bindings[i] = b.clone()
		}
	}
	return out
}

// WithBinding returns a copy with the binding appended.
func (c Config) WithBinding(b Binding) Config {
	out := c.Clone()
	out.Bindings = append(out.Bindings, b.clone())
	return out
}

// WithoutBinding returns a copy with the identified binding removed.
func (c Config) WithoutBinding(id string) Config {
	out := c.Clone()
	for i := range out.Bindings {
		if out.Bindings[i].ID == id {
			out.Bindings = append(out.Bindings[:i], out.Bindings[i+1:]...)
			break
		}
	}
	return out
}

// WithUpdatedBinding returns a copy with the binding carrying the same ID
// replaced. A binding whose ID is not present is ignored.
func (c Config) WithUpdatedBinding(b Binding) Config {
	out := c.Clone()
	for i := range out.Bindings {
		if out.Bindings[i].ID == b.ID {
			out.Bindings[i] = b.clone()
			break
		}
	}
	return out
}

// Find returns the binding with the given ID.
func (c Config) Find(id string) (Binding, bool) {
	for _, b := range c.Bindings {
		if b.ID == id {
			return b, true
		}
	}
	return Binding{}, false
}

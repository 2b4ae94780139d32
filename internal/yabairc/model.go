// Package yabairc implements the directive-side config language engine: it
// parses yabai configuration text into a structured model, validates it, and
// regenerates canonical text from the model. Parse and generate are pure
// functions; the model is an immutable value edited by structural copy.
package yabairc

import (
	"fmt"
	"sort"
)

// Config is the directive-side aggregate: global settings, window rules,
// signals, and per-space overrides.
type Config struct {
	Settings Settings      `json:"settings"`
	Rules    []WindowRule  `json:"rules,omitempty"`
	Signals  []Signal      `json:"signals,omitempty"`
	Spaces   []SpaceConfig `json:"spaces,omitempty"`
}

// DefaultConfig returns a Config with every setting at its documented
// default and no rules, signals, or space overrides.
func DefaultConfig() Config {
	return Config{Settings: DefaultSettings()}
}

// Clone returns a deep structural copy.
func (c Config) Clone() Config {
	out := Config{Settings: c.Settings.clone()}
	if len(c.Rules) > 0 {
		out.Rules = make([]WindowRule, len(c.Rules))
		for i, r := range c.Rules {
			cp := r
			cp.Manage = cloneBool(r.Manage)
			cp.Sticky = cloneBool(r.Sticky)
			out.Rules[i] = cp
		}
	}
	if len(c.Signals) > 0 {
		out.Signals = append([]Signal(nil), c.Signals...)
	}
	if len(c.Spaces) > 0 {
		out.Spaces = make([]SpaceConfig, len(c.Spaces))
		for i, s := range c.Spaces {
			out.Spaces[i] = s.clone()
		}
	}
	return out
}

func cloneBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// WithRule returns a copy with the rule appended.
func (c Config) WithRule(rule WindowRule) Config {
	out := c.Clone()
	out.Rules = append(out.Rules, rule)
	return out
}

// WithoutRule returns a copy with the rule at index removed. Out-of-range
// indices return the config unchanged.
func (c Config) WithoutRule(index int) Config {
	out := c.Clone()
	if index < 0 || index >= len(out.Rules) {
		return out
	}
	out.Rules = append(out.Rules[:index], out.Rules[index+1:]...)
	return out
}

// WithSignal returns a copy with the signal appended.
func (c Config) WithSignal(sig Signal) Config {
	out := c.Clone()
	out.Signals = append(out.Signals, sig)
	return out
}

// WithoutSignal returns a copy with the signal at index removed.
func (c Config) WithoutSignal(index int) Config {
	out := c.Clone()
	if index < 0 || index >= len(out.Signals) {
		return out
	}
	out.Signals = append(out.Signals[:index], out.Signals[index+1:]...)
	return out
}

// WithSpace returns a copy with the override added, replacing any existing
// override for the same index so index uniqueness holds by construction.
// An override for index < 1 is rejected.
func (c Config) WithSpace(space SpaceConfig) (Config, error) {
	if space.Index < 1 {
		return c, fmt.Errorf("space index must be 1-based, got %d", space.Index)
	}
	out := c.Clone()
	for i := range out.Spaces {
		if out.Spaces[i].Index == space.Index {
			out.Spaces[i] = space.clone()
			return out, nil
		}
	}
	out.Spaces = append(out.Spaces, space.clone())
	sort.Slice(out.Spaces, func(i, j int) bool { return out.Spaces[i].Index < out.Spaces[j].Index })
	return out, nil
}

// WithoutSpace returns a copy with the override for the given index removed.
func (c Config) WithoutSpace(index int) Config {
	out := c.Clone()
	for i := range out.Spaces {
		if out.Spaces[i].Index == index {
			out.Spaces = append(out.Spaces[:i], out.Spaces[i+1:]...)
			break
		}
	}
	return out
}

// Exclusions extracts the app-exclusion view from the rule list: every rule
// with an app-name selector, in rule order.
func (c Config) Exclusions() []ExclusionRule {
	var out []ExclusionRule
	for _, r := range c.Rules {
		if r.App == "" {
			continue
		}
		excl := ExclusionRule{App: r.App, Layer: LayerNormal}
		if r.Manage != nil && !*r.Manage {
			excl.ManageOff = true
		}
		if r.Sticky != nil && *r.Sticky {
			excl.Sticky = true
		}
		if r.Layer != "" {
			excl.Layer = r.Layer
		}
		out = append(out, excl)
	}
	return out
}

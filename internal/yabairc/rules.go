package yabairc

import "strings"

// Layer is the stacking layer a window rule can pin a window to.
type Layer string

const (
	LayerBelow  Layer = "below"
	LayerNormal Layer = "normal"
	LayerAbove  Layer = "above"
)

// LayerInfo carries display metadata for a layer variant.
type LayerInfo struct {
	Value       Layer
	Display     string
	Description string
}

// Layers lists the layer variants in stacking order.
var Layers = []LayerInfo{
	{LayerBelow, "Below", "Keep the window underneath tiled windows"},
	{LayerNormal, "Normal", "Stack the window with tiled windows"},
	{LayerAbove, "Above", "Keep the window on top of tiled windows"},
}

// ParseLayer maps a layer token to the enum, defaulting to normal.
func ParseLayer(s string) Layer {
	switch Layer(strings.ToLower(s)) {
	case LayerBelow:
		return LayerBelow
	case LayerAbove:
		return LayerAbove
	default:
		return LayerNormal
	}
}

// WindowRule is one `rule --add` entry. App and Title are selector patterns;
// App is stored without regex anchors, which are added back at generation
// time. Manage and Sticky are tri-state: nil means the property is absent.
type WindowRule struct {
	App    string `json:"app,omitempty"`
	Title  string `json:"title,omitempty"`
	Manage *bool  `json:"manage,omitempty"`
	Sticky *bool  `json:"sticky,omitempty"`
	Layer  Layer  `json:"layer,omitempty"`
	Space  int    `json:"space,omitempty"` // 1-based, 0 means unset
}

// hasSelector reports whether the rule matches anything at all.
func (r WindowRule) hasSelector() bool { return r.App != "" || r.Title != "" }

// hasActions reports whether the rule does anything when it matches.
func (r WindowRule) hasActions() bool {
	return r.Manage != nil || r.Sticky != nil || r.Layer != "" || r.Space != 0
}

// ExclusionRule is the narrower rule view used for app-exclusion management:
// an app-name selector plus the unmanage/sticky/layer actions.
type ExclusionRule struct {
	App       string `json:"app"`
	ManageOff bool   `json:"manage_off"`
	Sticky    bool   `json:"sticky"`
	Layer     Layer  `json:"layer"`
}

// stripAnchors removes a single leading ^ and trailing $ from an app-name
// selector pattern.
func stripAnchors(pattern string) string {
	pattern = strings.TrimPrefix(pattern, "^")
	return strings.TrimSuffix(pattern, "$")
}

// anchor wraps an app-name in ^…$ for emission.
func anchor(app string) string { return "^" + app + "$" }

// ruleFromProperties builds a WindowRule from a tokenized property fragment.
// A rule without any selector is meaningless and yields ok=false; the caller
// drops it without a diagnostic.
func ruleFromProperties(props Properties) (WindowRule, bool) {
	var rule WindowRule
	if tok, ok := props.Get("app"); ok {
		rule.App = stripAnchors(tok.Raw)
	}
	if tok, ok := props.Get("title"); ok {
		rule.Title = stripAnchors(tok.Raw)
	}
	if !rule.hasSelector() {
		return WindowRule{}, false
	}
	if tok, ok := props.Get("manage"); ok {
		if b, valid := parseBoolToken(tok.Raw); valid {
			rule.Manage = &b
		}
	}
	if tok, ok := props.Get("sticky"); ok {
		if b, valid := parseBoolToken(tok.Raw); valid {
			rule.Sticky = &b
		}
	}
	if tok, ok := props.Get("layer"); ok {
		rule.Layer = ParseLayer(tok.Raw)
	}
	if tok, ok := props.Get("space"); ok {
		if v := CoerceToken(tok); v.Kind() == KindInt && v.Int() > 0 {
			rule.Space = v.Int()
		}
	}
	return rule, true
}

// exclusionFromProperties builds the narrower exclusion view. Unlike the
// general rule builder it requires an app-name selector.
func exclusionFromProperties(props Properties) (ExclusionRule, bool) {
	tok, ok := props.Get("app")
	if !ok || stripAnchors(tok.Raw) == "" {
		return ExclusionRule{}, false
	}
	excl := ExclusionRule{App: stripAnchors(tok.Raw), Layer: LayerNormal}
	if t, ok := props.Get("manage"); ok {
		if b, valid := parseBoolToken(t.Raw); valid && !b {
			excl.ManageOff = true
		}
	}
	if t, ok := props.Get("sticky"); ok {
		if b, valid := parseBoolToken(t.Raw); valid {
			excl.Sticky = b
		}
	}
	if t, ok := props.Get("layer"); ok {
		excl.Layer = ParseLayer(t.Raw)
	}
	return excl, true
}

// Rule converts the exclusion back into the general rule form.
func (e ExclusionRule) Rule() WindowRule {
	rule := WindowRule{App: e.App}
	if e.ManageOff {
		off := false
		rule.Manage = &off
	}
	if e.Sticky {
		on := true
		rule.Sticky = &on
	}
	if e.Layer != "" && e.Layer != LayerNormal {
		rule.Layer = e.Layer
	}
	return rule
}

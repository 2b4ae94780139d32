package skhdrc

import "strings"

// Generate renders the bindings as canonical text, grouped by category in
// the fixed section order. Each group opens with a `# === Name ===` marker;
// descriptions precede their binding as comments and disabled bindings are
// emitted with the [DISABLED] prefix so they survive a round trip.
func Generate(cfg Config) string {
	groups := make(map[Category][]Binding)
	for _, b := range cfg.Bindings {
		groups[effectiveCategory(b)] = append(groups[effectiveCategory(b)], b)
	}

	var out strings.Builder
	first := true
	for _, info := range Categories {
		bindings := groups[info.Value]
		if len(bindings) == 0 {
			continue
		}
		if !first {
			out.WriteString("\n")
		}
		first = false

		out.WriteString("# === " + info.Display + " ===\n")
		for _, b := range bindings {
			if b.Description != "" {
				out.WriteString("# " + b.Description + "\n")
			}
			line := b.Hotkey() + actionSeparator + b.Action
			if !b.Enabled {
				line = "# " + disabledMarker + " " + line
			}
			out.WriteString(line + "\n")
		}
	}
	return out.String()
}

// effectiveCategory resolves the group a binding is emitted under. Records
// without a recognized category fall back to action classification.
func effectiveCategory(b Binding) Category {
	if _, ok := ParseCategory(string(b.Category)); ok {
		return b.Category
	}
	return Classify(b.Action)
}

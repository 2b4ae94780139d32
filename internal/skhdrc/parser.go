package skhdrc

import (
	"strings"

	"github.com/google/uuid"

	"github.com/tilecfg/tilecfg/internal/diag"
)

const (
	actionSeparator = " : "
	keySeparator    = " - "
	disabledMarker  = "[DISABLED]"
)

// Parse builds a Config from binding text and runs structural validation
// over the same text.
func Parse(text string) (Config, diag.List) {
	return Build(text), Validate(text)
}

// Build constructs the model. Parse state (category context, pending
// description) is local to the invocation, so concurrent parses never
// interfere.
func Build(text string) Config {
	var cfg Config

	// Category context persists until the next marker; a pending
	// description applies to the next binding only.
	var category Category
	haveCategory := false
	pendingDesc := ""

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			continue

		case strings.HasPrefix(line, "::"):
			// Mode declaration: recognized, not modeled.
			pendingDesc = ""
			continue

		case strings.HasPrefix(line, "#"):
			comment := strings.TrimSpace(strings.TrimPrefix(line, "#"))
			if name, ok := categoryMarker(comment); ok {
				category, haveCategory = ParseCategory(name)
				pendingDesc = ""
				continue
			}
			if rest, ok := strings.CutPrefix(comment, disabledMarker); ok {
				if b, parsed := parseBindingLine(strings.TrimSpace(rest)); parsed {
					b.Enabled = false
					attach(&b, &pendingDesc, category, haveCategory)
					cfg.Bindings = append(cfg.Bindings, b)
					continue
				}
			}
			pendingDesc = comment

		default:
			b, ok := parseBindingLine(line)
			if !ok {
				// Invalid binding: the description above it is discarded.
				pendingDesc = ""
				continue
			}
			attach(&b, &pendingDesc, category, haveCategory)
			cfg.Bindings = append(cfg.Bindings, b)
		}
	}
	return cfg
}

func attach(b *Binding, pendingDesc *string, category Category, haveCategory bool) {
	b.Description = *pendingDesc
	*pendingDesc = ""
	if haveCategory {
		b.Category = category
	} else {
		b.Category = Classify(b.Action)
	}
}

// categoryMarker recognizes `=== Name ===` comment content.
func categoryMarker(comment string) (string, bool) {
	if !strings.HasPrefix(comment, "===") || !strings.HasSuffix(comment, "===") || len(comment) < 7 {
		return "", false
	}
	return strings.TrimSpace(comment[3 : len(comment)-3]), true
}

// parseBindingLine parses `modifiers - key : action`. The hotkey/action
// boundary is the first ` : `; a plain colon may occur inside an action
// argument. The modifier/key boundary is the last ` - ` before that, since
// action-free hotkey text may still contain dashes in modifier names.
func parseBindingLine(line string) (Binding, bool) {
	sep := strings.Index(line, actionSeparator)
	if sep < 0 {
		return Binding{}, false
	}
	hotkey := strings.TrimSpace(line[:sep])
	action := strings.TrimSpace(line[sep+len(actionSeparator):])
	if hotkey == "" || action == "" {
		return Binding{}, false
	}

	var modifiers []string
	key := hotkey
	if dash := strings.LastIndex(hotkey, keySeparator); dash >= 0 {
		for _, m := range strings.Split(hotkey[:dash], "+") {
			m = strings.TrimSpace(m)
			if m == "" {
				return Binding{}, false
			}
			modifiers = append(modifiers, m)
		}
		key = strings.TrimSpace(hotkey[dash+len(keySeparator):])
	}
	if key == "" || strings.ContainsAny(key, " \t") {
		return Binding{}, false
	}

	return Binding{
		ID:        uuid.NewString(),
		Modifiers: modifiers,
		Key:       key,
		Action:    action,
		Enabled:   true,
	}, true
}

// Validate walks the raw binding text and reports structural problems.
// Comment lines, including markers and disabled entries, are exempt.
func Validate(text string) diag.List {
	var diags diag.List
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "::") {
			continue
		}
		if !strings.Contains(line, ":") {
			diags.Add(i+1, "missing separator", line)
			continue
		}
		if _, ok := parseBindingLine(line); !ok {
			diags.Add(i+1, "invalid shortcut format", line)
		}
	}
	return diags
}

// Package diag defines the diagnostic records produced while parsing the
// yabai and skhd configuration texts. Diagnostics are collected, never
// raised: a parse always yields a best-effort model plus a diagnostic list.
package diag

import "fmt"

// Diagnostic describes one problem found in a configuration text.
type Diagnostic struct {
	// Line is 1-based, counted against the original input.
	Line    int    `json:"line"`
	Message string `json:"message"`
	// Source is the offending line verbatim, trimmed of trailing newline.
	Source string `json:"source"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s: %q", d.Line, d.Message, d.Source)
}

// List is an ordered collection of diagnostics.
type List []Diagnostic

// Add appends a diagnostic for the given line.
func (l *List) Add(line int, message, source string) {
	*l = append(*l, Diagnostic{Line: line, Message: message, Source: source})
}

// HasErrors reports whether any diagnostic was collected.
func (l List) HasErrors() bool { return len(l) > 0 }

// Package diffview computes and renders a naive line diff between two
// versions of a config file. It is deliberately simple: canonical generation
// keeps ordering stable, so a line-by-line comparison reads well.
package diffview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ChangeType discriminates diff entries.
type ChangeType int

const (
	ChangeEqual ChangeType = iota
	ChangeAdded
	ChangeRemoved
)

// Change is one line of diff output.
type Change struct {
	Type ChangeType
	Line string
}

// Diff compares two texts line by line using a longest-common-subsequence
// over lines, producing removed/added runs.
func Diff(oldText, newText string) []Change {
	oldLines := splitLines(oldText)
	newLines := splitLines(newText)

	// LCS table over lines.
	m, n := len(oldLines), len(newLines)
	lcs := make([][]int, m+1)
	for i := range lcs {
		lcs[i] = make([]int, n+1)
	}
	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			if oldLines[i] == newLines[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	var changes []Change
	i, j := 0, 0
	for i < m && j < n {
		switch {
		case oldLines[i] == newLines[j]:
			changes = append(changes, Change{ChangeEqual, oldLines[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			changes = append(changes, Change{ChangeRemoved, oldLines[i]})
			i++
		default:
			changes = append(changes, Change{ChangeAdded, newLines[j]})
			j++
		}
	}
	for ; i < m; i++ {
		changes = append(changes, Change{ChangeRemoved, oldLines[i]})
	}
	for ; j < n; j++ {
		changes = append(changes, Change{ChangeAdded, newLines[j]})
	}
	return changes
}

// HasChanges reports whether the diff contains anything besides equal lines.
func HasChanges(changes []Change) bool {
	for _, c := range changes {
		if c.Type != ChangeEqual {
			return true
		}
	}
	return false
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// Renderer formats diffs for terminal display.
type Renderer struct {
	added   lipgloss.Style
	removed lipgloss.Style
	context lipgloss.Style
	color   bool
}

// NewRenderer creates a renderer; color toggles lipgloss styling.
func NewRenderer(color bool) *Renderer {
	return &Renderer{
		added:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		removed: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		context: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		color:   color,
	}
}

// Render formats the diff with +/- markers, skipping unchanged lines except
// one line of context around each change run.
func (r *Renderer) Render(changes []Change) string {
	if !HasChanges(changes) {
		return "No changes detected."
	}

	var sb strings.Builder
	for idx, c := range changes {
		switch c.Type {
		case ChangeAdded:
			sb.WriteString(r.styled(r.added, "+ "+c.Line) + "\n")
		case ChangeRemoved:
			sb.WriteString(r.styled(r.removed, "- "+c.Line) + "\n")
		case ChangeEqual:
			if neighborsChanged(changes, idx) {
				sb.WriteString(r.styled(r.context, "  "+c.Line) + "\n")
			}
		}
	}
	return sb.String()
}

// Summary returns a one-line count of additions and removals.
func Summary(changes []Change) string {
	var added, removed int
	for _, c := range changes {
		switch c.Type {
		case ChangeAdded:
			added++
		case ChangeRemoved:
			removed++
		}
	}
	return fmt.Sprintf("%d added, %d removed", added, removed)
}

func (r *Renderer) styled(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}

func neighborsChanged(changes []Change, idx int) bool {
	if idx > 0 && changes[idx-1].Type != ChangeEqual {
		return true
	}
	return idx+1 < len(changes) && changes[idx+1].Type != ChangeEqual
}

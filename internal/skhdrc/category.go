package skhdrc

import "strings"

// Category groups hotkeys for display. The binding side keeps space and
// display as distinct buckets; the rule-editing side of the application uses
// its own, smaller partition and the two are deliberately not unified.
type Category string

const (
	CategoryFocus   Category = "focus"
	CategoryMove    Category = "move"
	CategoryResize  Category = "resize"
	CategoryLayout  Category = "layout"
	CategorySpace   Category = "space"
	CategoryDisplay Category = "display"
	CategoryCustom  Category = "custom"
)

// CategoryInfo carries display metadata for a category variant.
type CategoryInfo struct {
	Value       Category
	Display     string
	Description string
}

// Categories lists the variants in canonical section order. The generator
// emits groups in this order.
var Categories = []CategoryInfo{
	{CategoryFocus, "Window Focus", "Move focus between windows"},
	{CategoryMove, "Window Movement", "Swap, warp, and move windows"},
	{CategoryResize, "Window Resize", "Resize and zoom windows"},
	{CategoryLayout, "Layout", "Toggle, rotate, and balance the layout"},
	{CategorySpace, "Spaces", "Target and switch spaces"},
	{CategoryDisplay, "Displays", "Target and switch displays"},
	{CategoryCustom, "Custom", "Everything else"},
}

// ParseCategory maps a marker name to a category, matching either the
// canonical string or the display name, case-insensitively. Unknown names
// yield ok=false and the caller falls back to classification.
func ParseCategory(name string) (Category, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, info := range Categories {
		if name == string(info.Value) || name == strings.ToLower(info.Display) {
			return info.Value, true
		}
	}
	return "", false
}

// DisplayName returns the section heading for a category.
func DisplayName(c Category) string {
	for _, info := range Categories {
		if info.Value == c {
			return info.Display
		}
	}
	return DisplayName(CategoryCustom)
}

// Classify infers a category from an action string. Rules are evaluated in
// a fixed order and the first match wins: an action like a window toggle
// would otherwise satisfy more than one pattern.
func Classify(action string) Category {
	a := strings.ToLower(action)
	switch {
	case strings.Contains(a, "window --focus"):
		return CategoryFocus
	case strings.Contains(a, "--swap"), strings.Contains(a, "--warp"),
		strings.Contains(a, "window --move"):
		return CategoryMove
	case strings.Contains(a, "--resize"), strings.Contains(a, "--ratio"),
		strings.Contains(a, "--toggle zoom"):
		return CategoryResize
	case strings.Contains(a, "--toggle"), strings.Contains(a, "--layout"),
		strings.Contains(a, "--balance"), strings.Contains(a, "--rotate"),
		strings.Contains(a, "--mirror"):
		return CategoryLayout
	case strings.Contains(a, "-m space"), strings.Contains(a, "--space"):
		return CategorySpace
	case strings.Contains(a, "-m display"), strings.Contains(a, "--display"):
		return CategoryDisplay
	default:
		return CategoryCustom
	}
}

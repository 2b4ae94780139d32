package cli

import (
	"github.com/tilecfg/tilecfg/internal/diag"
	"github.com/tilecfg/tilecfg/internal/skhdrc"
	"github.com/tilecfg/tilecfg/internal/yabairc"
)

// canonical regenerates the canonical text for a managed file.
func canonical(t target, text string) string {
	if t.name == "yabai" {
		return yabairc.Generate(yabairc.Build(text))
	}
	return skhdrc.Generate(skhdrc.Build(text))
}

// validateText runs the matching validator over raw file text.
func validateText(t target, text string) diag.List {
	if t.name == "yabai" {
		return yabairc.Validate(text)
	}
	return skhdrc.Validate(text)
}

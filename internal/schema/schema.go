// Package schema reflects JSON schemas for the exchange documents, so GUI
// front-ends and editors can validate payloads without guessing at shapes.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/tilecfg/tilecfg/internal/skhdrc"
	"github.com/tilecfg/tilecfg/internal/yabairc"
)

// Document identifies one exchange schema.
type Document string

const (
	DocumentDirective Document = "directive"
	DocumentBinding   Document = "binding"
)

// Generate returns the pretty-printed JSON schema for the named document.
func Generate(doc Document) ([]byte, error) {
	r := new(jsonschema.Reflector)

	var s *jsonschema.Schema
	switch doc {
	case DocumentDirective:
		s = r.Reflect(&yabairc.Config{})
		s.Title = "Directive Configuration"
		s.Description = "Structured form of the yabai directive config"
	case DocumentBinding:
		s = r.Reflect(&skhdrc.Config{})
		s.Title = "Binding Configuration"
		s.Description = "Structured form of the skhd hotkey config"
	default:
		return nil, fmt.Errorf("unknown schema document %q", doc)
	}
	s.ID = jsonschema.ID("https://github.com/tilecfg/tilecfg/" + string(doc) + ".schema.json")

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}

// Package exchange implements the JSON exchange format shared with the GUI.
// Field names are snake_case on both the directive and binding side.
package exchange

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidJSON means the payload is not syntactically valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")
	// ErrInvalidShape means the payload is valid JSON but does not match
	// the expected document shape.
	ErrInvalidShape = errors.New("JSON does not match expected shape")
)

// Decode deserializes data into v, distinguishing syntax errors from shape
// errors. Unknown fields are rejected so a mistyped key fails loudly instead
// of being silently dropped.
func Decode(data []byte, v any) error {
	if !json.Valid(data) {
		var syn *json.SyntaxError
		err := json.Unmarshal(data, v)
		if errors.As(err, &syn) {
			return fmt.Errorf("%w: offset %d: %v", ErrInvalidJSON, syn.Offset, err)
		}
		return fmt.Errorf("%w", ErrInvalidJSON)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	return nil
}

// Encode serializes v with stable, human-diffable indentation.
func Encode(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode exchange document: %w", err)
	}
	return append(data, '\n'), nil
}

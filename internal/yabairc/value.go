package yabairc

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind discriminates the scalar types a directive value can take.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindFloat
)

// Value is a typed directive scalar. The zero value is the empty string.
type Value struct {
	kind Kind
	b    bool
	i    int
	f    float64
	s    string
}

func BoolValue(b bool) Value     { return Value{kind: KindBool, b: b} }
func IntValue(i int) Value       { return Value{kind: KindInt, i: i} }
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

func (v Value) Kind() Kind     { return v.kind }
func (v Value) Bool() bool     { return v.b }
func (v Value) Int() int       { return v.i }
func (v Value) Float() float64 { return v.f }

// Text renders the value in directive vocabulary: booleans are on/off,
// never true/false.
func (v Value) Text() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "on"
		}
		return "off"
	case KindInt:
		return strconv.Itoa(v.i)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return v.s
	}
}

// parseBoolToken maps the directive boolean vocabulary to a bool.
func parseBoolToken(s string) (bool, bool) {
	switch s {
	case "on", "yes", "true":
		return true, true
	case "off", "no", "false":
		return false, true
	}
	return false, false
}

// CoerceToken turns a raw token into a typed value using the fixed priority:
// boolean literal, integer, float, string. Quoted tokens skip boolean and
// numeric coercion entirely so a quoted "2" survives as the string 2.
func CoerceToken(tok Token) Value {
	if tok.Quoted {
		return StringValue(tok.Raw)
	}
	if b, ok := parseBoolToken(tok.Raw); ok {
		return BoolValue(b)
	}
	if i, err := strconv.Atoi(tok.Raw); err == nil {
		return IntValue(i)
	}
	if f, err := strconv.ParseFloat(tok.Raw, 64); err == nil {
		return FloatValue(f)
	}
	return StringValue(tok.Raw)
}

// coerceTo maps a raw token onto a declared kind, falling back to the given
// default when the token cannot represent that kind.
func coerceTo(tok Token, kind Kind, fallback Value) Value {
	switch kind {
	case KindBool:
		if b, ok := parseBoolToken(tok.Raw); ok {
			return BoolValue(b)
		}
	case KindInt:
		if i, err := strconv.Atoi(tok.Raw); err == nil {
			return IntValue(i)
		}
	case KindFloat:
		if f, err := strconv.ParseFloat(tok.Raw, 64); err == nil {
			return FloatValue(f)
		}
	case KindString:
		return StringValue(tok.Raw)
	}
	return fallback
}

// MarshalJSON encodes the value as a native JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBool:
		return json.Marshal(v.b)
	case KindInt:
		return json.Marshal(v.i)
	case KindFloat:
		return json.Marshal(v.f)
	default:
		return json.Marshal(v.s)
	}
}

// UnmarshalJSON decodes a JSON scalar, inferring the kind from the JSON
// type. Whole-number JSON floats become integers, mirroring the coercion
// priority on the text side.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch val := raw.(type) {
	case bool:
		*v = BoolValue(val)
	case float64:
		if val == math.Trunc(val) && !isFloatLiteral(data) {
			*v = IntValue(int(val))
		} else {
			*v = FloatValue(val)
		}
	case string:
		*v = StringValue(val)
	default:
		return fmt.Errorf("unsupported directive value type %T", raw)
	}
	return nil
}

// isFloatLiteral reports whether the JSON literal was spelled with a decimal
// point or exponent, e.g. 1.0 rather than 1.
func isFloatLiteral(data []byte) bool {
	for _, c := range data {
		if c == '.' || c == 'e' || c == 'E' {
			return true
		}
	}
	return false
}

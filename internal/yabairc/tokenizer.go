package yabairc

import "strings"

// Token is one raw property value as it appeared in the source text.
// Quoted records whether the value was wrapped in quotes, which matters for
// coercion: a bare 2 is an integer, a quoted "2" stays a string.
type Token struct {
	Raw    string
	Quoted bool
}

// Properties is an ordered key→token mapping parsed from a
// `key=value key2="quoted value"` fragment. First-occurrence order is
// preserved for deterministic re-emission; a repeated key overwrites the
// earlier value in place.
type Properties struct {
	keys   []string
	values map[string]Token
}

// Get returns the token for key.
func (p Properties) Get(key string) (Token, bool) {
	tok, ok := p.values[key]
	return tok, ok
}

// Keys returns the keys in first-occurrence order.
func (p Properties) Keys() []string { return p.keys }

// Len returns the number of distinct keys.
func (p Properties) Len() int { return len(p.keys) }

func (p *Properties) set(key string, tok Token) {
	if p.values == nil {
		p.values = make(map[string]Token)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = tok
}

// ParseProperties splits a property fragment into an ordered mapping.
// Malformed fragments yield an empty mapping, not an error; callers treat
// that as "nothing parsed" and skip the line.
func ParseProperties(fragment string) Properties {
	var props Properties
	i := 0
	n := len(fragment)
	for i < n {
		// Skip whitespace between pairs.
		for i < n && (fragment[i] == ' ' || fragment[i] == '\t') {
			i++
		}
		if i >= n {
			break
		}

		start := i
		for i < n && isIdentChar(fragment[i]) {
			i++
		}
		key := fragment[start:i]
		if key == "" || i >= n || fragment[i] != '=' {
			// Not a key=value pair; skip to the next whitespace.
			for i < n && fragment[i] != ' ' && fragment[i] != '\t' {
				i++
			}
			continue
		}
		i++ // consume '='

		var tok Token
		switch {
		case i < n && (fragment[i] == '"' || fragment[i] == '\''):
			quote := fragment[i]
			i++
			vstart := i
			for i < n && fragment[i] != quote {
				i++
			}
			tok = Token{Raw: fragment[vstart:i], Quoted: true}
			if i < n {
				i++ // consume closing quote
			}
		default:
			vstart := i
			for i < n && fragment[i] != ' ' && fragment[i] != '\t' {
				i++
			}
			tok = Token{Raw: fragment[vstart:i]}
		}
		props.set(key, tok)
	}
	return props
}

func isIdentChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-' || c == '.':
		return true
	}
	return false
}

// quoteIfNeeded wraps v in double quotes when it contains whitespace or is
// empty, matching how the generator re-emits property fragments.
func quoteIfNeeded(v string) string {
	if v == "" || strings.ContainsAny(v, " \t") {
		return `"` + v + `"`
	}
	return v
}

package yabairc

import (
	"strings"

	"github.com/tilecfg/tilecfg/internal/diag"
)

// Validate walks the raw directive text and reports structural problems with
// 1-based line numbers. It never fails: diagnostics are collected, and the
// builder independently produces a best-effort model from the same text.
func Validate(text string) diag.List {
	var diags diag.List
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		lineNo := i + 1
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		toks := splitTokens(line)
		if toks[0].Raw != programName {
			// The canonical trailer is a status echo, not a directive.
			if toks[0].Raw == "echo" {
				continue
			}
			if !strings.Contains(line, "=") {
				diags.Add(lineNo, "unrecognized line", line)
			}
			continue
		}
		if len(toks) < 3 || toks[1].Raw != "-m" {
			diags.Add(lineNo, "unrecognized yabai command", line)
			continue
		}

		rest := toks[3:]
		switch toks[2].Raw {
		case "config":
			validateConfigLine(&diags, lineNo, line, rest)
		case "rule":
			if !hasFlag(toks, "--add") && !hasFlag(toks, "--remove") {
				diags.Add(lineNo, "rule command missing --add or --remove", line)
			}
		case "signal":
			validateSignalLine(&diags, lineNo, line, toks)
		default:
			diags.Add(lineNo, "unrecognized yabai command", line)
		}
	}
	return diags
}

func validateConfigLine(diags *diag.List, lineNo int, line string, rest []Token) {
	if len(rest) >= 2 && rest[0].Raw == "--space" {
		if len(rest) == 4 {
			return
		}
		diags.Add(lineNo, "invalid config format: expected --space <index> <key> <value>", line)
		return
	}
	if len(rest) != 2 {
		diags.Add(lineNo, "invalid config format: expected <key> <value>", line)
	}
}

func validateSignalLine(diags *diag.List, lineNo int, line string, toks []Token) {
	switch {
	case hasFlag(toks, "--add"):
		props := propertiesAfterFlag(line)
		if tok, ok := props.Get("event"); !ok || tok.Raw == "" {
			diags.Add(lineNo, "signal is missing required event parameter", line)
		}
		if tok, ok := props.Get("action"); !ok || tok.Raw == "" {
			diags.Add(lineNo, "signal is missing required action parameter", line)
		}
	case hasFlag(toks, "--remove"):
	default:
		diags.Add(lineNo, "signal command missing --add or --remove", line)
	}
}

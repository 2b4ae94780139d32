package yabairc

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tilecfg/tilecfg/internal/diag"
)

// programName is the directive program every meaningful line invokes.
const programName = "yabai"

// Parse builds a Config from directive text and runs structural validation
// over the same text. The model is always best-effort: unparsable lines are
// skipped by the builder and surfaced only through the diagnostic list.
func Parse(text string) (Config, diag.List) {
	return Build(text), Validate(text)
}

// Build constructs the model without collecting diagnostics. Incomplete
// entities (a rule without a selector, a signal missing event or action) are
// dropped silently; such lines are common boilerplate noise.
func Build(text string) Config {
	cfg := DefaultConfig()
	spaces := make(map[int]*SpaceConfig)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		toks := splitTokens(line)
		if len(toks) < 3 || toks[0].Raw != programName || toks[1].Raw != "-m" {
			continue
		}

		rest := toks[3:]
		switch toks[2].Raw {
		case "config":
			buildConfigLine(&cfg, spaces, rest)
		case "rule":
			if !hasFlag(toks, "--add") {
				continue
			}
			if rule, ok := ruleFromProperties(propertiesAfterFlag(line)); ok {
				cfg.Rules = append(cfg.Rules, rule)
			}
		case "signal":
			if !hasFlag(toks, "--add") {
				continue
			}
			if sig, ok := signalFromProperties(propertiesAfterFlag(line)); ok {
				cfg.Signals = append(cfg.Signals, sig)
			}
		}
	}

	for _, sc := range spaces {
		if !sc.isEmpty() {
			cfg.Spaces = append(cfg.Spaces, *sc)
		}
	}
	sort.Slice(cfg.Spaces, func(i, j int) bool { return cfg.Spaces[i].Index < cfg.Spaces[j].Index })
	return cfg
}

// buildConfigLine folds one `config` invocation into the model. Lines not
// matching the key/value shape are skipped here and reported by Validate.
func buildConfigLine(cfg *Config, spaces map[int]*SpaceConfig, rest []Token) {
	if len(rest) >= 4 && rest[0].Raw == "--space" {
		idx, err := strconv.Atoi(rest[1].Raw)
		if err != nil || idx < 1 {
			return
		}
		sc, ok := spaces[idx]
		if !ok {
			sc = &SpaceConfig{Index: idx}
			spaces[idx] = sc
		}
		sc.applySpaceSetting(rest[2].Raw, rest[3])
		return
	}
	if len(rest) >= 2 {
		cfg.Settings.set(rest[0].Raw, rest[1])
	}
}

// propertiesAfterFlag tokenizes the key=value fragment of a rule or signal
// line. The property tokenizer skips bare flags like --add on its own.
func propertiesAfterFlag(line string) Properties {
	return ParseProperties(line)
}

func hasFlag(toks []Token, flag string) bool {
	for _, t := range toks {
		if !t.Quoted && t.Raw == flag {
			return true
		}
	}
	return false
}

// splitTokens splits a directive line into whitespace-separated tokens,
// keeping quoted runs together and recording quote provenance.
func splitTokens(s string) []Token {
	var toks []Token
	i, n := 0, len(s)
	for i < n {
		for i < n && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i >= n {
			break
		}
		var sb strings.Builder
		quoted := false
		for i < n && s[i] != ' ' && s[i] != '\t' {
			if s[i] == '"' || s[i] == '\'' {
				quote := s[i]
				quoted = true
				i++
				for i < n && s[i] != quote {
					sb.WriteByte(s[i])
					i++
				}
				if i < n {
					i++
				}
				continue
			}
			sb.WriteByte(s[i])
			i++
		}
		toks = append(toks, Token{Raw: sb.String(), Quoted: quoted})
	}
	return toks
}

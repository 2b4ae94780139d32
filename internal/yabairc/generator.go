package yabairc

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	shebangLine = "#!/usr/bin/env sh"
	statusLine  = `echo "yabai configuration loaded.."`
)

// Generate renders the config as canonical directive text. Section order is
// fixed: shebang, window rules, layout, gaps and padding, external bar,
// mouse, appearance, extra settings, per-space overrides, signals, status
// echo. Rules come first so they apply before any other state; the opacity
// and border blocks are emitted only when their toggle is on. Booleans are
// always rendered on/off.
func Generate(cfg Config) string {
	var b strings.Builder
	b.WriteString(shebangLine + "\n\n")

	writeRules(&b, cfg.Rules)
	writeLayout(&b, cfg.Settings)
	writeGaps(&b, cfg.Settings)
	writeExternalBar(&b, cfg.Settings)
	writeMouse(&b, cfg.Settings)
	writeAppearance(&b, cfg.Settings)
	writeExtra(&b, cfg.Settings)
	writeSpaces(&b, cfg.Spaces)
	writeSignals(&b, cfg.Signals)

	b.WriteString(statusLine + "\n")
	return b.String()
}

func configLine(key string, value string) string {
	return fmt.Sprintf("%s -m config %s %s", programName, key, quoteIfNeeded(value))
}

func boolText(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func floatText(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func writeRules(b *strings.Builder, rules []WindowRule) {
	emitted := false
	for _, r := range rules {
		if !r.hasSelector() || !r.hasActions() {
			continue
		}
		if !emitted {
			b.WriteString("# window rules\n")
			emitted = true
		}
		var props []string
		if r.App != "" {
			props = append(props, fmt.Sprintf("app=%q", anchor(r.App)))
		}
		if r.Title != "" {
			props = append(props, fmt.Sprintf("title=%q", r.Title))
		}
		if r.Manage != nil {
			props = append(props, "manage="+boolText(*r.Manage))
		}
		if r.Sticky != nil {
			props = append(props, "sticky="+boolText(*r.Sticky))
		}
		if r.Layer != "" {
			props = append(props, "layer="+string(r.Layer))
		}
		if r.Space != 0 {
			props = append(props, "space="+strconv.Itoa(r.Space))
		}
		fmt.Fprintf(b, "%s -m rule --add %s\n", programName, strings.Join(props, " "))
	}
	if emitted {
		b.WriteString("\n")
	}
}

func writeLayout(b *strings.Builder, s Settings) {
	b.WriteString("# layout\n")
	b.WriteString(configLine("layout", s.Layout) + "\n")
	b.WriteString(configLine("window_placement", s.WindowPlacement) + "\n\n")
}

func writeGaps(b *strings.Builder, s Settings) {
	b.WriteString("# gaps and padding\n")
	b.WriteString(configLine("window_gap", strconv.Itoa(s.WindowGap)) + "\n")
	b.WriteString(configLine("top_padding", strconv.Itoa(s.TopPadding)) + "\n")
	b.WriteString(configLine("bottom_padding", strconv.Itoa(s.BottomPadding)) + "\n")
	b.WriteString(configLine("left_padding", strconv.Itoa(s.LeftPadding)) + "\n")
	b.WriteString(configLine("right_padding", strconv.Itoa(s.RightPadding)) + "\n\n")
}

func writeExternalBar(b *strings.Builder, s Settings) {
	if s.ExternalBar == "" {
		return
	}
	b.WriteString("# external bar\n")
	b.WriteString(configLine("external_bar", s.ExternalBar) + "\n\n")
}

func writeMouse(b *strings.Builder, s Settings) {
	b.WriteString("# mouse\n")
	b.WriteString(configLine("mouse_follows_focus", boolText(s.MouseFollowsFocus)) + "\n")
	b.WriteString(configLine("focus_follows_mouse", s.FocusFollowsMouse) + "\n")
	b.WriteString(configLine("mouse_modifier", s.MouseModifier) + "\n")
	b.WriteString(configLine("mouse_action1", s.MouseAction1) + "\n")
	b.WriteString(configLine("mouse_action2", s.MouseAction2) + "\n")
	b.WriteString(configLine("mouse_drop_action", s.MouseDropAction) + "\n\n")
}

func writeAppearance(b *strings.Builder, s Settings) {
	b.WriteString("# appearance\n")
	b.WriteString(configLine("auto_balance", boolText(s.AutoBalance)) + "\n")
	b.WriteString(configLine("split_ratio", floatText(s.SplitRatio)) + "\n")
	b.WriteString(configLine("split_type", s.SplitType) + "\n")
	b.WriteString(configLine("window_shadow", boolText(s.WindowShadow)) + "\n")

	if s.WindowOpacity {
		b.WriteString(configLine("window_opacity", "on") + "\n")
		b.WriteString(configLine("active_window_opacity", floatText(s.ActiveWindowOpacity)) + "\n")
		b.WriteString(configLine("normal_window_opacity", floatText(s.NormalWindowOpacity)) + "\n")
		b.WriteString(configLine("window_animation_duration", floatText(s.WindowAnimationDuration)) + "\n")
	}
	if s.WindowBorder {
		b.WriteString(configLine("window_border", "on") + "\n")
		b.WriteString(configLine("window_border_width", strconv.Itoa(s.WindowBorderWidth)) + "\n")
		b.WriteString(configLine("active_window_border_color", s.ActiveWindowBorderColor) + "\n")
		b.WriteString(configLine("normal_window_border_color", s.NormalWindowBorderColor) + "\n")
		b.WriteString(configLine("insert_feedback_color", s.InsertFeedbackColor) + "\n")
	}
	b.WriteString("\n")
}

func writeExtra(b *strings.Builder, s Settings) {
	if len(s.Extra) == 0 {
		return
	}
	b.WriteString("# other settings\n")
	for _, e := range s.Extra {
		b.WriteString(configLine(e.Key, e.Value.Text()) + "\n")
	}
	b.WriteString("\n")
}

func writeSpaces(b *strings.Builder, spaces []SpaceConfig) {
	emitted := false
	for _, sc := range spaces {
		if sc.isEmpty() {
			continue
		}
		if !emitted {
			b.WriteString("# per-space settings\n")
			emitted = true
		}
		if sc.Layout != "" {
			fmt.Fprintf(b, "%s -m config --space %d layout %s\n", programName, sc.Index, sc.Layout)
		}
		writeSpaceInt(b, sc.Index, "window_gap", sc.WindowGap)
		writeSpaceInt(b, sc.Index, "top_padding", sc.TopPadding)
		writeSpaceInt(b, sc.Index, "bottom_padding", sc.BottomPadding)
		writeSpaceInt(b, sc.Index, "left_padding", sc.LeftPadding)
		writeSpaceInt(b, sc.Index, "right_padding", sc.RightPadding)
	}
	if emitted {
		b.WriteString("\n")
	}
}

func writeSpaceInt(b *strings.Builder, index int, key string, v *int) {
	if v == nil {
		return
	}
	fmt.Fprintf(b, "%s -m config --space %d %s %d\n", programName, index, key, *v)
}

func writeSignals(b *strings.Builder, signals []Signal) {
	emitted := false
	for _, sig := range signals {
		if sig.Event == "" || sig.Action == "" {
			continue
		}
		if !emitted {
			b.WriteString("# signals\n")
			emitted = true
		}
		line := fmt.Sprintf("%s -m signal --add event=%s action=%s",
			programName, quoteIfNeeded(sig.Event), quoteIfNeeded(sig.Action))
		if sig.Label != "" {
			line += " label=" + quoteIfNeeded(sig.Label)
		}
		b.WriteString(line + "\n")
	}
	if emitted {
		b.WriteString("\n")
	}
}

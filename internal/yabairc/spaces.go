package yabairc

// SpaceConfig overrides a subset of directive settings for one space.
// Index is 1-based; nil pointer fields inherit the global setting.
type SpaceConfig struct {
	Index         int    `json:"index"`
	Layout        string `json:"layout,omitempty"`
	WindowGap     *int   `json:"window_gap,omitempty"`
	TopPadding    *int   `json:"top_padding,omitempty"`
	BottomPadding *int   `json:"bottom_padding,omitempty"`
	LeftPadding   *int   `json:"left_padding,omitempty"`
	RightPadding  *int   `json:"right_padding,omitempty"`
}

// isEmpty reports whether the override carries no values.
func (s SpaceConfig) isEmpty() bool {
	return s.Layout == "" && s.WindowGap == nil &&
		s.TopPadding == nil && s.BottomPadding == nil &&
		s.LeftPadding == nil && s.RightPadding == nil
}

// applySpaceSetting folds one `config --space N key value` line into the
// override. Unknown per-space keys are ignored; only the settings yabai
// accepts per space are modeled.
func (s *SpaceConfig) applySpaceSetting(key string, tok Token) {
	switch key {
	case "layout":
		s.Layout = tok.Raw
	case "window_gap":
		s.WindowGap = intToken(tok)
	case "top_padding":
		s.TopPadding = intToken(tok)
	case "bottom_padding":
		s.BottomPadding = intToken(tok)
	case "left_padding":
		s.LeftPadding = intToken(tok)
	case "right_padding":
		s.RightPadding = intToken(tok)
	}
}

func intToken(tok Token) *int {
	if v := CoerceToken(tok); v.Kind() == KindInt {
		i := v.Int()
		return &i
	}
	return nil
}

func (s SpaceConfig) clone() SpaceConfig {
	out := s
	out.WindowGap = cloneInt(s.WindowGap)
	out.TopPadding = cloneInt(s.TopPadding)
	out.BottomPadding = cloneInt(s.BottomPadding)
	out.LeftPadding = cloneInt(s.LeftPadding)
	out.RightPadding = cloneInt(s.RightPadding)
	return out
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

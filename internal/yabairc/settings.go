package yabairc

// Settings holds the recognized yabai config keys as typed fields. Keys the
// builder does not recognize are preserved opaquely in Extra so a round trip
// never silently loses configuration.
type Settings struct {
	Layout          string `json:"layout"`
	WindowPlacement string `json:"window_placement"`

	WindowGap     int `json:"window_gap"`
	TopPadding    int `json:"top_padding"`
	BottomPadding int `json:"bottom_padding"`
	LeftPadding   int `json:"left_padding"`
	RightPadding  int `json:"right_padding"`

	// ExternalBar is only emitted when set, e.g. "main:26:0".
	ExternalBar string `json:"external_bar,omitempty"`

	MouseFollowsFocus bool   `json:"mouse_follows_focus"`
	FocusFollowsMouse string `json:"focus_follows_mouse"`
	MouseModifier     string `json:"mouse_modifier"`
	MouseAction1      string `json:"mouse_action1"`
	MouseAction2      string `json:"mouse_action2"`
	MouseDropAction   string `json:"mouse_drop_action"`

	AutoBalance bool    `json:"auto_balance"`
	SplitRatio  float64 `json:"split_ratio"`
	SplitType   string  `json:"split_type"`

	WindowOpacity           bool    `json:"window_opacity"`
	ActiveWindowOpacity     float64 `json:"active_window_opacity"`
	NormalWindowOpacity     float64 `json:"normal_window_opacity"`
	WindowAnimationDuration float64 `json:"window_animation_duration"`

	WindowShadow bool `json:"window_shadow"`

	WindowBorder            bool   `json:"window_border"`
	WindowBorderWidth       int    `json:"window_border_width"`
	ActiveWindowBorderColor string `json:"active_window_border_color"`
	NormalWindowBorderColor string `json:"normal_window_border_color"`
	InsertFeedbackColor     string `json:"insert_feedback_color"`

	// Extra preserves unrecognized keys in first-seen order.
	Extra []ExtraSetting `json:"extra,omitempty"`
}

// ExtraSetting is an unrecognized config key carried through verbatim.
type ExtraSetting struct {
	Key   string `json:"key"`
	Value Value  `json:"value"`
}

// set applies a raw token to the setting named by key, coercing it to the
// key's declared kind and falling back to the documented default on a type
// mismatch. Unknown keys are retained in Extra with last-wins semantics.
func (s *Settings) set(key string, tok Token) {
	spec, known := settingSpecs[key]
	if !known {
		s.setExtra(key, CoerceToken(tok))
		return
	}
	spec.assign(s, coerceTo(tok, spec.kind, spec.def))
}

func (s *Settings) setExtra(key string, v Value) {
	for i := range s.Extra {
		if s.Extra[i].Key == key {
			s.Extra[i].Value = v
			return
		}
	}
	s.Extra = append(s.Extra, ExtraSetting{Key: key, Value: v})
}

// clone returns a structural copy, including the Extra slice.
func (s Settings) clone() Settings {
	out := s
	if len(s.Extra) > 0 {
		out.Extra = make([]ExtraSetting, len(s.Extra))
		copy(out.Extra, s.Extra)
	}
	return out
}

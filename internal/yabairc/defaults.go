package yabairc

// settingSpec declares one recognized config key: its scalar kind, its
// documented default, and how it lands in the Settings struct. The table is
// consulted once at model construction time; absent keys take the default.
type settingSpec struct {
	kind   Kind
	def    Value
	assign func(*Settings, Value)
}

var settingSpecs = map[string]settingSpec{
	"layout": {KindString, StringValue("bsp"),
		func(s *Settings, v Value) { s.Layout = v.Text() }},
	"window_placement": {KindString, StringValue("second_child"),
		func(s *Settings, v Value) { s.WindowPlacement = v.Text() }},

	"window_gap": {KindInt, IntValue(6),
		func(s *Settings, v Value) { s.WindowGap = v.Int() }},
	"top_padding": {KindInt, IntValue(6),
		func(s *Settings, v Value) { s.TopPadding = v.Int() }},
	"bottom_padding": {KindInt, IntValue(6),
		func(s *Settings, v Value) { s.BottomPadding = v.Int() }},
	"left_padding": {KindInt, IntValue(6),
		func(s *Settings, v Value) { s.LeftPadding = v.Int() }},
	"right_padding": {KindInt, IntValue(6),
		func(s *Settings, v Value) { s.RightPadding = v.Int() }},

	"external_bar": {KindString, StringValue(""),
		func(s *Settings, v Value) { s.ExternalBar = v.Text() }},

	"mouse_follows_focus": {KindBool, BoolValue(false),
		func(s *Settings, v Value) { s.MouseFollowsFocus = v.Bool() }},
	"focus_follows_mouse": {KindString, StringValue("off"),
		func(s *Settings, v Value) { s.FocusFollowsMouse = v.Text() }},
	"mouse_modifier": {KindString, StringValue("alt"),
		func(s *Settings, v Value) { s.MouseModifier = v.Text() }},
	"mouse_action1": {KindString, StringValue("move"),
		func(s *Settings, v Value) { s.MouseAction1 = v.Text() }},
	"mouse_action2": {KindString, StringValue("resize"),
		func(s *Settings, v Value) { s.MouseAction2 = v.Text() }},
	"mouse_drop_action": {KindString, StringValue("swap"),
		func(s *Settings, v Value) { s.MouseDropAction = v.Text() }},

	"auto_balance": {KindBool, BoolValue(false),
		func(s *Settings, v Value) { s.AutoBalance = v.Bool() }},
	"split_ratio": {KindFloat, FloatValue(0.5),
		func(s *Settings, v Value) { s.SplitRatio = v.Float() }},
	"split_type": {KindString, StringValue("auto"),
		func(s *Settings, v Value) { s.SplitType = v.Text() }},

	"window_opacity": {KindBool, BoolValue(false),
		func(s *Settings, v Value) { s.WindowOpacity = v.Bool() }},
	"active_window_opacity": {KindFloat, FloatValue(1.0),
		func(s *Settings, v Value) { s.ActiveWindowOpacity = v.Float() }},
	"normal_window_opacity": {KindFloat, FloatValue(0.9),
		func(s *Settings, v Value) { s.NormalWindowOpacity = v.Float() }},
	"window_animation_duration": {KindFloat, FloatValue(0.0),
		func(s *Settings, v Value) { s.WindowAnimationDuration = v.Float() }},

	"window_shadow": {KindBool, BoolValue(true),
		func(s *Settings, v Value) { s.WindowShadow = v.Bool() }},

	"window_border": {KindBool, BoolValue(false),
		func(s *Settings, v Value) { s.WindowBorder = v.Bool() }},
	"window_border_width": {KindInt, IntValue(4),
		func(s *Settings, v Value) { s.WindowBorderWidth = v.Int() }},
	"active_window_border_color": {KindString, StringValue("0xff775759"),
		func(s *Settings, v Value) { s.ActiveWindowBorderColor = v.Text() }},
	"normal_window_border_color": {KindString, StringValue("0xff555555"),
		func(s *Settings, v Value) { s.NormalWindowBorderColor = v.Text() }},
	"insert_feedback_color": {KindString, StringValue("0xffd75f5f"),
		func(s *Settings, v Value) { s.InsertFeedbackColor = v.Text() }},
}

// DefaultSettings returns a Settings with every recognized key at its
// documented default.
func DefaultSettings() Settings {
	var s Settings
	for _, spec := range settingSpecs {
		spec.assign(&s, spec.def)
	}
	return s
}

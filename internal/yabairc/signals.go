package yabairc

// Signal is one `signal --add` entry. Event and Action are both required; a
// signal line missing either is not constructible and is dropped during
// parse.
type Signal struct {
	Event  string `json:"event"`
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
}

// signalFromProperties builds a Signal from a tokenized property fragment,
// reporting ok=false when event or action is missing or empty.
func signalFromProperties(props Properties) (Signal, bool) {
	event, okEvent := props.Get("event")
	action, okAction := props.Get("action")
	if !okEvent || !okAction || event.Raw == "" || action.Raw == "" {
		return Signal{}, false
	}
	sig := Signal{Event: event.Raw, Action: action.Raw}
	if label, ok := props.Get("label"); ok {
		sig.Label = label.Raw
	}
	return sig, true
}

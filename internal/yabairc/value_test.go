package yabairc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceToken_Priority(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want Value
	}{
		{"bool on", Token{Raw: "on"}, BoolValue(true)},
		{"bool yes", Token{Raw: "yes"}, BoolValue(true)},
		{"bool true", Token{Raw: "true"}, BoolValue(true)},
		{"bool off", Token{Raw: "off"}, BoolValue(false)},
		{"bool no", Token{Raw: "no"}, BoolValue(false)},
		{"bool false", Token{Raw: "false"}, BoolValue(false)},
		{"integer", Token{Raw: "2"}, IntValue(2)},
		{"negative integer", Token{Raw: "-4"}, IntValue(-4)},
		{"float", Token{Raw: "0.5"}, FloatValue(0.5)},
		{"string", Token{Raw: "bsp"}, StringValue("bsp")},
		{"quoted integer stays string", Token{Raw: "2", Quoted: true}, StringValue("2")},
		{"quoted bool stays string", Token{Raw: "on", Quoted: true}, StringValue("on")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceToken(tt.tok))
		})
	}
}

func TestValue_Text(t *testing.T) {
	assert.Equal(t, "on", BoolValue(true).Text())
	assert.Equal(t, "off", BoolValue(false).Text())
	assert.Equal(t, "6", IntValue(6).Text())
	assert.Equal(t, "0.5", FloatValue(0.5).Text())
	assert.Equal(t, "0", FloatValue(0).Text())
	assert.Equal(t, "bsp", StringValue("bsp").Text())
}

func TestValue_JSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		val  Value
		json string
	}{
		{"bool", BoolValue(true), "true"},
		{"int", IntValue(6), "6"},
		{"float", FloatValue(0.5), "0.5"},
		{"string", StringValue("bsp"), `"bsp"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.val)
			require.NoError(t, err)
			assert.Equal(t, tt.json, string(data))

			var got Value
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, tt.val, got)
		})
	}
}

func TestCoerceTo_FallsBackToDefault(t *testing.T) {
	got := coerceTo(Token{Raw: "not-a-number"}, KindInt, IntValue(6))
	assert.Equal(t, IntValue(6), got)

	got = coerceTo(Token{Raw: "maybe"}, KindBool, BoolValue(false))
	assert.Equal(t, BoolValue(false), got)
}

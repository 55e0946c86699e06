package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeInput(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Eiffel Tower", "Eiffel Tower"},
		{"trims whitespace", "  Paris  ", "Paris"},
		{"strips null bytes", "Rome\x00", "Rome"},
		{"strips control characters", "Agra\x1b[31m", "Agra[31m"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.SanitizeInput(tt.input))
		})
	}
}

func TestValidateObjectID(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.ValidateObjectID("65f2a0c4b3e1d2f4a5b6c7d8"))
	assert.False(t, v.ValidateObjectID("not-an-id"))
	assert.False(t, v.ValidateObjectID("65f2a0c4"))
	assert.False(t, v.ValidateObjectID("65F2A0C4B3E1D2F4A5B6C7D8"))
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse("something broke")
	assert.Equal(t, "something broke", resp.Error)
}

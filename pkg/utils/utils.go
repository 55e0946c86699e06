package utils

import (
	"regexp"
	"strings"
)

// ErrorResponse is the error payload returned on failed requests
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// Validator provides input validation helpers
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

var controlChars = regexp.MustCompile(`[\x00-\x1f\x7f-\x9f]`)

// SanitizeInput sanitizes user input
func (v *Validator) SanitizeInput(input string) string {
	// Remove null bytes and control characters
	input = strings.ReplaceAll(input, "\x00", "")
	input = controlChars.ReplaceAllString(input, "")

	// Trim whitespace
	return strings.TrimSpace(input)
}

// ValidateObjectID reports whether the string looks like a hex object id
func (v *Validator) ValidateObjectID(id string) bool {
	idRegex := regexp.MustCompile(`^[a-f0-9]{24}$`)
	return idRegex.MatchString(id)
}

package core

import (
	"errors"
	"fmt"
)

// Error codes returned across the tool boundary. The orchestration layer
// switches on Code, not on message text.
const (
	CodeInvalidInput = "invalid_input"
	CodeInternal     = "internal_error"
)

// Error is the structured failure every engine operation returns instead of
// letting anything propagate as a panic or a stringly-typed flag.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

func invalidInput(format string, args ...interface{}) *Error {
	return &Error{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func internalError(format string, args ...interface{}) *Error {
	return &Error{Code: CodeInternal, Message: fmt.Sprintf(format, args...)}
}

// IsInvalidInput reports whether err is an invalid-input engine error.
func IsInvalidInput(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeInvalidInput
}

// AsError extracts the structured form of any error, wrapping unknown
// errors as internal.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Code: CodeInternal, Message: err.Error()}
}

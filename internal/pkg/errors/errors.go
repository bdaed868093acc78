// Package errors provides the infra error type used across services and
// handlers. An Error carries an HTTP status, a stable machine-readable
// reason code and a human-readable message; handlers map it onto the
// response envelope without inspecting error strings.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Error is the canonical service error.
type Error struct {
	Status  int    `json:"-"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
	cause   error
}

// Error renders "REASON: message" so the reason code survives fmt
// verbs and string joins; callers needing the bare message use Message.
func (e *Error) Error() string {
	if e.Reason != "" && e.Message != "" {
		return e.Reason + ": " + e.Message
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Reason
}

// Unwrap exposes the wrapped cause for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.cause }

// New creates an Error with the given HTTP status and reason code.
func New(status int, reason, message string) *Error {
	return &Error{Status: status, Reason: reason, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(status int, reason, format string, args ...any) *Error {
	return &Error{Status: status, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a new Error; the cause participates in
// errors.Is/As but is not exposed in the message.
func Wrap(cause error, status int, reason, message string) *Error {
	return &Error{Status: status, Reason: reason, Message: message, cause: cause}
}

// StatusCode returns the HTTP status carried by err, or 500 for plain
// errors.
func StatusCode(err error) int {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}

// Message returns the human-readable message carried by err without the
// reason prefix, or err.Error() for plain errors.
func Message(err error) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ReasonCode returns the stable reason carried by err, or empty for plain
// errors.
func ReasonCode(err error) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Reason
	}
	return ""
}

// IsReason reports whether err carries the given reason code.
func IsReason(err error, reason string) bool {
	return ReasonCode(err) == reason
}

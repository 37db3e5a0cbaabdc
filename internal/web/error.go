package web

import (
	"errors"
	"net/http"
)

// Error is an HTTP-mapped error. Fields holds per-field validation messages
// when the failure came from input validation.
type Error struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string { return e.Message }

// NewError builds an Error with a status and message.
func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// NewFieldError builds a 422 Error carrying a field->message map.
func NewFieldError(message string, fields map[string]string) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Message: message, Fields: fields}
}

// From normalizes any error into an *Error. Unknown errors become 500s with
// a generic message so internals never leak to clients.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Status: http.StatusInternalServerError, Message: "internal server error"}
}

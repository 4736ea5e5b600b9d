package errors

import (
	"errors"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func BadRequest(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusBadRequest}
}

func Unauthorized(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusUnauthorized}
}

func Forbidden(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusForbidden}
}

func NotFound(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusNotFound}
}

func Conflict(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusConflict}
}

// LoginRequired is returned by operations that need a current user.
func LoginRequired(action string) error {
	return Unauthorized("You must be logged in to " + action)
}

// StatusCode returns the status carried by err, 500 for anything else.
func StatusCode(err error) int {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	return err != nil && StatusCode(err) == http.StatusNotFound
}

func IsForbidden(err error) bool {
	return err != nil && StatusCode(err) == http.StatusForbidden
}

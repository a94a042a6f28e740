package utils

import "net/http"

// HTTPError carries the status code a handler should answer with.
type HTTPError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

func NewHTTPError(code int, message string) error {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

func BadRequest(message string) error {
	return NewHTTPError(http.StatusBadRequest, message)
}

func NotFound(message string) error {
	return NewHTTPError(http.StatusNotFound, message)
}

func Conflict(message string) error {
	return NewHTTPError(http.StatusConflict, message)
}

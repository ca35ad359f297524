package errors

import (
	"errors"
	"net/http"
)

// Exception is an error that already knows the HTTP status it maps to.
// Every message here is client-safe.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// StatusCode unwraps err to its Exception status, defaulting to 500 for
// anything unexpected.
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

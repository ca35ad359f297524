package errors

import "net/http"

// NewValidation wraps the first rule violation of a request body as a 400.
func NewValidation(message string) *Exception {
	return &Exception{
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

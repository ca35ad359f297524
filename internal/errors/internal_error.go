package errors

import "net/http"

// ErrInternal is the opaque message clients see for unexpected failures. The
// real cause is only ever logged server-side.
var ErrInternal = &Exception{
	Message:    "Internal error. Check the submitted CSV/JSON.",
	StatusCode: http.StatusInternalServerError,
}

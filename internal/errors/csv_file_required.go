package errors

import "net/http"

var ErrCSVFileRequired = &Exception{
	Message:    "Upload a CSV file.",
	StatusCode: http.StatusBadRequest,
}

package errors

import "net/http"

var ErrInvalidPriority = &Exception{
	Message:    "priority must be one of Low, Medium, High",
	StatusCode: http.StatusBadRequest,
}

package errors

import "net/http"

var ErrBackupNotFound = &Exception{
	Message:    "backup file not found or unreadable",
	StatusCode: http.StatusNotFound,
}

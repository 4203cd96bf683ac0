package errors

import "net/http"

var ErrBackupMalformed = &Exception{
	Message:    "backup file is malformed",
	StatusCode: http.StatusBadRequest,
}

package errors

import "net/http"

var ErrInvalidStatus = &Exception{
	Message:    "status must be 'Pending', 'InProgress' or 'Completed'",
	StatusCode: http.StatusBadRequest,
}

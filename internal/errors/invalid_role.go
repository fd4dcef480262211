package errors

import "net/http"

var ErrInvalidRole = &Exception{
	Message:    "role must be 'Admin' or 'User'",
	StatusCode: http.StatusBadRequest,
}

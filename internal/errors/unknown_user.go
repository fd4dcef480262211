package errors

import "net/http"

var ErrUnknownUser = &Exception{
	Message:    "assigned user does not exist",
	StatusCode: http.StatusBadRequest,
}

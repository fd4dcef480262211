package errors

import "net/http"

var ErrNameAndEmailRequired = &Exception{
	Message:    "name and email are required",
	StatusCode: http.StatusBadRequest,
}

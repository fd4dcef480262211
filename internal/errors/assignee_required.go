package errors

import "net/http"

var ErrAssigneeRequired = &Exception{
	Message:    "assignedToUserId is required",
	StatusCode: http.StatusBadRequest,
}

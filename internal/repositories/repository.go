package repository

import "errors"

// ErrUnknownUser is returned when a task references a user that does not exist.
var ErrUnknownUser = errors.New("assigned user does not exist")

package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", ErrTitleRequired, http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("user with id 7: %w", ErrUserNotFound), http.StatusNotFound},
		{"unclassified", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestMessage_HidesUnclassifiedErrors(t *testing.T) {
	assert.Equal(t, "internal server error", Message(errors.New("dial tcp: refused")))
	assert.Equal(t, "task not found", Message(fmt.Errorf("task with id 3: %w", ErrTaskNotFound)))
}

func TestClassification(t *testing.T) {
	assert.True(t, IsValidation(ErrInvalidRole))
	assert.False(t, IsValidation(ErrTaskNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("wrap: %w", ErrTaskNotFound)))
	assert.False(t, IsNotFound(errors.New("boom")))
}

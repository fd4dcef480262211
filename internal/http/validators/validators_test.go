package validators

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "task-management.com/task-management/internal/data_models"
	apperrors "task-management.com/task-management/internal/errors"
)

func TestParseID(t *testing.T) {
	e := echo.New()

	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{"7", 7, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			c.SetParamNames("id")
			c.SetParamValues(tt.raw)

			got, err := ParseID(c, "id")
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateCreateUserRequest(t *testing.T) {
	empty := ""
	admin := "Admin"

	assert.NoError(t, ValidateCreateUserRequest(&dto.CreateUserRequest{}))
	assert.NoError(t, ValidateCreateUserRequest(&dto.CreateUserRequest{Role: &admin}))
	assert.ErrorIs(t, ValidateCreateUserRequest(&dto.CreateUserRequest{Role: &empty}), apperrors.ErrInvalidRole)
}

func TestValidateCreateTaskRequest(t *testing.T) {
	assert.ErrorIs(t, ValidateCreateTaskRequest(&dto.CreateTaskRequest{Title: "x"}), apperrors.ErrAssigneeRequired)
	assert.NoError(t, ValidateCreateTaskRequest(&dto.CreateTaskRequest{AssignedToUserID: 3}))
}

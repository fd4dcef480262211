package validators

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "task-management.com/task-management/internal/errors"
)

// ParseID reads a positive integer path parameter.
func ParseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.ErrInvalidID
	}
	return uint(id), nil
}

package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"task-management.com/task-management/internal/constants"
)

const (
	HeaderUserRole = "X-User-Role"
	HeaderUserID   = "X-User-Id"
)

// Identity is the caller as described by request headers. It is not
// authenticated and no endpoint authorizes against it yet.
type Identity struct {
	UserID uint
	Role   constants.Role
}

func (i Identity) Known() bool {
	return i.Role != ""
}

// IdentityFromRequest reads the identity headers. Without a role header the
// identity is empty; a malformed user id becomes 0.
func IdentityFromRequest(r *http.Request) Identity {
	role := strings.TrimSpace(r.Header.Get(HeaderUserRole))
	if role == "" {
		return Identity{}
	}

	id := Identity{Role: constants.Role(role)}
	if v, err := strconv.ParseUint(r.Header.Get(HeaderUserID), 10, 32); err == nil {
		id.UserID = uint(v)
	}
	return id
}

type identityHandlerFunc func(c echo.Context, id Identity) error

func withIdentity(h identityHandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return h(c, IdentityFromRequest(c.Request()))
	}
}

// Package handler implements the tenant-scoped JSON API.  Handlers only
// translate between HTTP and the service layer; failures are returned as
// errors and rendered by ErrorHandler.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/abubasith456/React-white-label/internal/middleware"
	"github.com/abubasith456/React-white-label/internal/service"
)

// DefaultTimeout bounds the storage work of a single request.
const DefaultTimeout = 5 * time.Second

// errInvalidBody is returned when the request body cannot be decoded.
var errInvalidBody = echo.NewHTTPError(http.StatusBadRequest, "invalid body")

type base struct {
	timeout time.Duration
}

func newBase(timeout time.Duration) base {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return base{timeout: timeout}
}

// ctx derives the storage context of a request.
func (b base) ctx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), b.timeout)
}

// tenantID is the first path segment of every API route.
func tenantID(c echo.Context) string { return c.Param("tenant") }

// userID returns the id of the session user.  Routes using it sit behind
// RequireAuth, so a missing session is reported as Unauthorized.
func userID(c echo.Context) (string, error) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		return "", service.ErrUnauthorized
	}
	return sess.UserID, nil
}

func ok(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

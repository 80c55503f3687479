package middleware // middleware provides shared request processing for handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/abubasith456/React-white-label/internal/session"
)

// Context keys set by BindSession.  "user_id" is also read by the rate
// limiter when building per-user buckets.
const (
	ctxSession = "session"
	ctxUserID  = "user_id"
)

// SessionLookup resolves bearer tokens.  *session.Store satisfies it.
type SessionLookup interface {
	Lookup(token string) (session.Session, bool)
}

// AdminChecker answers whether a user is currently an admin of a tenant.
type AdminChecker interface {
	IsAdmin(ctx context.Context, tenantID, userID string) (bool, error)
}

// BindSession attaches the session named by an "Authorization: Bearer"
// header when the token resolves and was issued for the tenant in the
// path.  It never rejects a request.
func BindSession(sessions SessionLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if raw, ok := strings.CutPrefix(auth, "Bearer "); ok {
				if sess, ok := sessions.Lookup(strings.TrimSpace(raw)); ok && sess.TenantID == c.Param("tenant") {
					c.Set(ctxSession, sess)
					c.Set(ctxUserID, sess.UserID)
				}
			}
			return next(c)
		}
	}
}

// CurrentSession returns the session bound to the request, if any.
func CurrentSession(c echo.Context) (session.Session, bool) {
	sess, ok := c.Get(ctxSession).(session.Session)
	return sess, ok
}

// RequireAuth rejects requests without a bound session with 401.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := CurrentSession(c); !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
			}
			return next(c)
		}
	}
}

// RequireAdmin rejects requests without a session with 401 and requests
// from users whose email is not in the tenant's admin list with 403.
// Both the tenant and the user are looked up on every request.
func RequireAdmin(admins AdminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := CurrentSession(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
			}
			isAdmin, err := admins.IsAdmin(c.Request().Context(), sess.TenantID, sess.UserID)
			if err != nil {
				// let the error handler map unknown tenants and storage failures
				return err
			}
			if !isAdmin {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "Forbidden"})
			}
			return next(c)
		}
	}
}

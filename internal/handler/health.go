package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health returns the liveness check used by load balancers.  storage
// names the backend the process was started with.
func Health(storage string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "storage": storage})
	}
}

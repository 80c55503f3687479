package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request: method, uri, tenant, status,
// latency and client ip.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// run the error handler now so the logged status is final
				c.Error(err)
			}
			req := c.Request()
			tenant := c.Param("tenant")
			if tenant == "" {
				tenant = "-"
			}
			log.Info("request",
				zap.String("method", req.Method),
				zap.String("uri", req.RequestURI),
				zap.String("tenant", tenant),
				zap.Int("status", c.Response().Status),
				zap.Duration("took", time.Since(start)),
				zap.String("ip", c.RealIP()),
			)
			return nil
		}
	}
}

package echohttp

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// request logging middleware. The acting user is logged so lifecycle
// transitions can be traced back from the access log alone.
func logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()

			err := next(c)

			attrs := []any{
				"method", c.Request().Method,
				"url", c.Request().URL,
				"status", c.Response().Status,
				"duration", time.Since(now),
			}
			if actor := c.Request().Header.Get("X-Updatehub-User"); actor != "" {
				attrs = append(attrs, "actor", actor)
			}
			slog.Info("handled request", attrs...)
			return err
		}
	}
}

package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dlviewer/dlviewer/internal/platform/metrics"
)

// Metrics records request latency by route template. Errors are rendered
// before the status is read and then passed on, so outer middleware still
// sees the cause.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.ObserveRequest(c.Request().Method, route, strconv.Itoa(c.Response().Status), time.Since(start).Seconds())
			return err
		}
	}
}

package middleware

import (
	"storeRanker/business/ranking"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceID tags every request with an id, reusing the caller's X-Request-ID when present.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}

			req := c.Request()
			c.SetRequest(req.WithContext(ranking.ContextWithTraceID(req.Context(), id)))
			c.Response().Header().Set(echo.HeaderXRequestID, id)

			return next(c)
		}
	}
}

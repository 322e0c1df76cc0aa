package logging

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger attaches a request scoped logger to the request context and
// logs every request once it completes.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			rid := req.Header.Get(RequestIDHeader)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Response().Header().Set(RequestIDHeader, rid)

			logger := log.With().
				Str("request_id", rid).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("remote_ip", c.RealIP()).
				Logger()

			ctx := logger.WithContext(req.Context())
			c.SetRequest(req.WithContext(ctx))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			duration := time.Since(start)
			if status >= 500 {
				logger.Error().
					Err(err).
					Int("status", status).
					Dur("duration", duration).
					Msg("http request failed")
			} else {
				logger.Info().
					Int("status", status).
					Dur("duration", duration).
					Msg("http request served")
			}
			return nil
		}
	}
}

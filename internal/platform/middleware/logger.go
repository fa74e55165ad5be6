package middleware

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ptalab/emr/internal/platform/auth"
)

// Logger emits one structured line per request. Each line carries the request
// id assigned upstream and, once authentication has run, the acting clinician,
// so a chart action can be traced from HTTP edge to audit log.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			// A returned error has not been written yet; resolve the
			// status it will produce.
			status := c.Response().Status
			if err != nil {
				status = 500
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				}
			}

			ctx := c.Request().Context()
			evt := logger.Info()
			if err != nil || status >= 500 {
				evt = logger.Error().Err(err)
			}
			evt = evt.
				Str("request_id", RequestIDFromContext(ctx)).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", status).
				Dur("elapsed", time.Since(start)).
				Int64("bytes_out", c.Response().Size).
				Str("remote_ip", c.RealIP())
			if uid := auth.UserIDFromContext(ctx); uid != uuid.Nil {
				evt = evt.Str("user_id", uid.String()).Str("role", auth.RoleFromContext(ctx))
			}
			evt.Msg("request")

			return err
		}
	}
}

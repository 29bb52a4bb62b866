package router

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"skolmaten/internal/errors"
	"skolmaten/internal/handler"
	"skolmaten/internal/logging"
	"skolmaten/internal/service"
)

// Identify resolves the session token, if any, into the caller's identity.
// Requests without a valid token continue anonymously.
func Identify(tokens service.TokenService, log logging.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := handler.ExtractToken(c)
			if token == "" {
				return next(c)
			}

			ctx := c.Request().Context()
			identity, err := tokens.ResolveToken(ctx, token)
			if err != nil {
				log.Error(ctx, "resolve session token", "error", err)
				httpErr := errors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			if identity != nil {
				c.Set(handler.IdentityKey, identity)
				c.Set(handler.TokenKey, token)
			}
			return next(c)
		}
	}
}

// RequireIdentity rejects requests whose token is well signed but no longer
// the user's current one.
func RequireIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if handler.CurrentIdentity(c) == nil {
			httpErr := errors.MapErrorToHTTP(errors.ErrUnauthenticated)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return next(c)
	}
}

// RequestLogger writes one structured line per request.
func RequestLogger(log logging.Logger) echo.MiddlewareFunc {
	log = log.With("component", "http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			args := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				args = append(args, "error", v.Error)
				log.Warn(c.Request().Context(), "request failed", args...)
				return nil
			}
			log.Info(c.Request().Context(), "request", args...)
			return nil
		},
	})
}

// app/echoServer/middleware.go
package echoServer

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"coursecat/app/echoServer/authx"
	"coursecat/metrics"
	usersvc "coursecat/service/user"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterMiddlewares(e *echo.Echo) {

	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(Slog())
	e.Use(Metrics())
}

func Slog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			lat := time.Since(start).Milliseconds()

			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			slog.Info("http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", lat,
				"req_id", rid,
				"ip", c.RealIP(),
				"ua", c.Request().UserAgent(),
			)
			return err
		}
	}
}

func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			route := c.Path()
			metrics.RequestsTotal.WithLabelValues(route, c.Request().Method, status).Inc()
			metrics.RequestLatency.WithLabelValues(c.Request().Method, route, status).
				Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// BasicAuth resolves HTTP Basic credentials to a user and stores it on the
// context. Credential failures share one opaque response body; which factor
// failed goes only to the log.
func BasicAuth(users usersvc.Service, log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, password, ok := c.Request().BasicAuth()
			if !ok {
				log.Warn("authorization header not found", "path", c.Path(), "ip", c.RealIP())
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"message": "Access Denied",
					"errors":  []string{"Authorization header not found."},
				})
			}

			u, err := users.Authenticate(c.Request().Context(), email, password)
			if err != nil {
				switch {
				case errors.Is(err, usersvc.ErrUserNotFound):
					log.Warn("user not found", "email", email, "path", c.Path())
				case errors.Is(err, usersvc.ErrInvalidCreds):
					log.Warn("authentication failed", "email", email, "path", c.Path())
				default:
					log.Error("authentication lookup failed", "err", err, "path", c.Path())
					return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
				}
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"message": "Access Denied",
					"errors":  []string{"Access Denied"},
				})
			}

			authx.SetCurrentUser(c, u)
			return next(c)
		}
	}
}

package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
	"github.com/johnquangdev/meeting-summarizer/pkg/metrics"
)

// RateLimit limits each client IP to RATE_LIMIT_MAX requests per
// RATE_LIMIT_WINDOW, answering with the standard error envelope once the
// budget is spent.
func RateLimit(cfg config.ServerConfig) echo.MiddlewareFunc {
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RatePerSecond()),
		Burst:     cfg.RateLimitMax,
		ExpiresIn: cfg.RateLimitWindow,
	})

	reject := func(c echo.Context, _ string, _ error) error {
		appErr := errors.ErrRateLimited()
		return c.JSON(appErr.HTTPCode, common.ErrorResponse{
			Code:    appErr.Code,
			Message: appErr.Message,
		})
	}

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health" || c.Path() == "/metrics"
		},
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return reject(c, "", err)
		},
		DenyHandler: reject,
	})
}

// Metrics counts every request by route template and status code
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}
			m.ObserveRequest(c.Path(), strconv.Itoa(status))
			return err
		}
	}
}

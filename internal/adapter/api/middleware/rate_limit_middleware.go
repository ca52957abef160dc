package middleware

import (
	"github.com/labstack/echo/v4"

	"portalcms/internal/infrastructure/ratelimit"
	apperrors "portalcms/pkg/errors"
	"portalcms/pkg/response"
)

// RateLimitMiddleware throttles mutation endpoints per user and action.
type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
}

func NewRateLimitMiddleware(limiter *ratelimit.Limiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit keys the bucket on the authenticated username plus the action name,
// falling back to the client IP before authentication.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, _ := c.Get("username").(string)
			if key == "" {
				key = c.RealIP()
			}
			if !m.limiter.Allow(key + ":" + action) {
				return response.Error(c, apperrors.TooManyRequests("Too many requests, slow down"))
			}
			return next(c)
		}
	}
}

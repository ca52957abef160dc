package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"portalcms/internal/adapter/api/middleware"
	"portalcms/internal/infrastructure/ratelimit"
	"portalcms/pkg/config"
)

// Setup attaches the global middleware and every route group. The write
// limiter is injected so the caller owns its janitor lifecycle.
func Setup(e *echo.Echo, cfg *config.Config, writes *ratelimit.Limiter) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	auth := middleware.NewAuthMiddleware(cfg.JWTSecret)
	limiter := middleware.NewRateLimitMiddleware(writes)

	SetupAuthRoutes(e, auth)
	SetupDashboardRoutes(e, auth)
	SetupAnnouncementRoutes(e, auth, limiter)
	SetupNotificationRoutes(e, auth, limiter)
	SetupBannerRoutes(e, auth, limiter)
	SetupProviderRoutes(e, auth, limiter)
	SetupGameRoutes(e, auth, limiter)
	SetupUploadRoutes(e, auth, limiter)
	SetupSettingsRoutes(e, auth)
	SetupEventsRoutes(e, auth)
}

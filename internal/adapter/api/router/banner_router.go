package router

import (
	"github.com/labstack/echo/v4"

	"portalcms/internal/adapter/api/handler"
	"portalcms/internal/adapter/api/middleware"
)

func SetupBannerRoutes(e *echo.Echo, auth *middleware.AuthMiddleware, limiter *middleware.RateLimitMiddleware) {
	h := handler.GetBannerHandler()

	g := e.Group("/api/banners", auth.Authenticate)
	g.GET("", h.List)
	g.POST("", h.Create, limiter.Limit("banner-write"))
	g.PUT("/:id", h.Update, limiter.Limit("banner-write"))
	g.PATCH("/:id/status", h.UpdateStatus, limiter.Limit("banner-write"))
	g.PATCH("/:id/theme", h.UpdateTheme, limiter.Limit("banner-write"))
	g.PATCH("/:id/device", h.UpdateDevice, limiter.Limit("banner-write"))
	g.DELETE("/:id", h.Delete, limiter.Limit("banner-write"))
	g.DELETE("", h.DeleteSelected, limiter.Limit("banner-write"))
	g.POST("/selection/:id", h.ToggleSelect)
	g.POST("/selection", h.ToggleSelectAll)
}

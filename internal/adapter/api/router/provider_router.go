package router

import (
	"github.com/labstack/echo/v4"

	"portalcms/internal/adapter/api/handler"
	"portalcms/internal/adapter/api/middleware"
)

func SetupProviderRoutes(e *echo.Echo, auth *middleware.AuthMiddleware, limiter *middleware.RateLimitMiddleware) {
	h := handler.GetProviderHandler()

	g := e.Group("/api/providers", auth.Authenticate)
	g.GET("", h.List)
	g.POST("", h.Create, limiter.Limit("provider-write"))
	g.PUT("/reorder", h.Reorder, limiter.Limit("provider-write"))
	g.PUT("/:id", h.Update, limiter.Limit("provider-write"))
	g.PATCH("/:id/flags", h.UpdateFlag, limiter.Limit("provider-write"))
	g.DELETE("/:id", h.Delete, limiter.Limit("provider-write"))
	g.DELETE("", h.DeleteSelected, limiter.Limit("provider-write"))
	g.POST("/selection/:id", h.ToggleSelect)
	g.POST("/selection", h.ToggleSelectAll)
}

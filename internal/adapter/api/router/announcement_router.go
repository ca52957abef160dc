package router

import (
	"github.com/labstack/echo/v4"

	"portalcms/internal/adapter/api/handler"
	"portalcms/internal/adapter/api/middleware"
)

func SetupAnnouncementRoutes(e *echo.Echo, auth *middleware.AuthMiddleware, limiter *middleware.RateLimitMiddleware) {
	h := handler.GetAnnouncementHandler()

	g := e.Group("/api/announcements", auth.Authenticate)
	g.GET("", h.List)
	g.POST("", h.Create, limiter.Limit("announcement-write"))
	g.PUT("/:id", h.Update, limiter.Limit("announcement-write"))
	g.PATCH("/:id/status", h.UpdateStatus, limiter.Limit("announcement-write"))
	g.DELETE("/:id", h.Delete, limiter.Limit("announcement-write"))
	g.DELETE("", h.DeleteSelected, limiter.Limit("announcement-write"))
	g.POST("/selection/:id", h.ToggleSelect)
	g.POST("/selection", h.ToggleSelectAll)
}

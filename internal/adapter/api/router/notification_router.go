package router

import (
	"github.com/labstack/echo/v4"

	"portalcms/internal/adapter/api/handler"
	"portalcms/internal/adapter/api/middleware"
)

func SetupNotificationRoutes(e *echo.Echo, auth *middleware.AuthMiddleware, limiter *middleware.RateLimitMiddleware) {
	h := handler.GetNotificationHandler()

	g := e.Group("/api/notifications", auth.Authenticate)
	g.GET("", h.List)
	g.POST("", h.Create, limiter.Limit("notification-write"))
	g.PUT("/:id", h.Update, limiter.Limit("notification-write"))
	g.PATCH("/:id/status", h.UpdateStatus, limiter.Limit("notification-write"))
	g.DELETE("/:id", h.Delete, limiter.Limit("notification-write"))
	g.DELETE("", h.DeleteSelected, limiter.Limit("notification-write"))
	g.POST("/selection/:id", h.ToggleSelect)
	g.POST("/selection", h.ToggleSelectAll)
}

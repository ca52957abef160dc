package router

import (
	"github.com/labstack/echo/v4"

	"portalcms/internal/adapter/api/handler"
	"portalcms/internal/adapter/api/middleware"
)

func SetupDashboardRoutes(e *echo.Echo, auth *middleware.AuthMiddleware) {
	h := handler.GetDashboardHandler()

	e.GET("/api/dashboard", h.Summary, auth.Authenticate)
}

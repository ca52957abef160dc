package router

import (
	"github.com/labstack/echo/v4"

	"portalcms/internal/adapter/api/handler"
	"portalcms/internal/adapter/api/middleware"
)

func SetupSettingsRoutes(e *echo.Echo, auth *middleware.AuthMiddleware) {
	h := handler.GetSettingsHandler()

	g := e.Group("/api/settings", auth.Authenticate)
	g.GET("/theme", h.GetTheme)
	g.PUT("/theme", h.UpdateTheme)
}

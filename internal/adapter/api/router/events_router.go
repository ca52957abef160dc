package router

import (
	"github.com/labstack/echo/v4"

	"portalcms/internal/adapter/api/handler"
	"portalcms/internal/adapter/api/middleware"
)

func SetupEventsRoutes(e *echo.Echo, auth *middleware.AuthMiddleware) {
	h := handler.GetEventsHandler()

	e.GET("/api/events", h.Subscribe, auth.Authenticate)
}

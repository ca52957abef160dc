package router

import (
	"github.com/labstack/echo/v4"

	"portalcms/internal/adapter/api/handler"
	"portalcms/internal/adapter/api/middleware"
)

func SetupAuthRoutes(e *echo.Echo, auth *middleware.AuthMiddleware) {
	h := handler.GetAuthHandler()

	e.POST("/api/auth/login", h.Login)
	e.GET("/api/auth/me", h.Me, auth.Authenticate)
}

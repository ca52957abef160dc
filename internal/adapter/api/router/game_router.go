package router

import (
	"github.com/labstack/echo/v4"

	"portalcms/internal/adapter/api/handler"
	"portalcms/internal/adapter/api/middleware"
)

func SetupGameRoutes(e *echo.Echo, auth *middleware.AuthMiddleware, limiter *middleware.RateLimitMiddleware) {
	h := handler.GetGameHandler()

	e.GET("/api/providers/:name/games", h.ListForProvider, auth.Authenticate)

	g := e.Group("/api/games", auth.Authenticate)
	g.GET("", h.ListStored)
	g.POST("/:gameId/tags/:tag", h.ToggleTag, limiter.Limit("game-write"))
	g.DELETE("/:id", h.Delete, limiter.Limit("game-write"))
	g.DELETE("", h.DeleteSelected, limiter.Limit("game-write"))
}

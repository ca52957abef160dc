package handler

import (
	"github.com/labstack/echo/v4"

	"portalcms/internal/usecase"
	"portalcms/pkg/response"
)

type DashboardHandler struct {
	dashboard *usecase.DashboardUseCase
}

func NewDashboardHandler(dashboard *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Summary(c echo.Context) error {
	summary := h.dashboard.Summary(c.Request().Context(), c.QueryParam("device"))
	return response.Success(c, summary)
}

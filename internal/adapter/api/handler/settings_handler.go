package handler

import (
	"sync"

	"github.com/labstack/echo/v4"

	apperrors "portalcms/pkg/errors"
	"portalcms/pkg/response"
)

// ThemeSettings is the portal theme customization the admin controls: the
// default mode and the accent color applied portal-wide.
type ThemeSettings struct {
	Mode        string `json:"mode"`
	AccentColor string `json:"accentColor"`
}

// SettingsHandler keeps the theme preference for the admin session. It is
// gateway-local state; the portal reads it through the dashboard payloads.
type SettingsHandler struct {
	mu    sync.Mutex
	theme ThemeSettings
}

func NewSettingsHandler() *SettingsHandler {
	return &SettingsHandler{
		theme: ThemeSettings{Mode: "light", AccentColor: "#1976d2"},
	}
}

type ThemeSettingsRequest struct {
	Mode        string `json:"mode" validate:"required,oneof=light dark"`
	AccentColor string `json:"accentColor" validate:"required,hexcolor"`
}

func (h *SettingsHandler) GetTheme(c echo.Context) error {
	h.mu.Lock()
	theme := h.theme
	h.mu.Unlock()
	return response.Success(c, theme)
}

func (h *SettingsHandler) UpdateTheme(c echo.Context) error {
	var req ThemeSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, apperrors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	h.mu.Lock()
	h.theme = ThemeSettings{Mode: req.Mode, AccentColor: req.AccentColor}
	theme := h.theme
	h.mu.Unlock()
	return response.SuccessMessage(c, "Theme updated successfully.", theme)
}

package handler

import (
	"github.com/labstack/echo/v4"

	"portalcms/internal/domain/entity"
	"portalcms/internal/usecase"
	apperrors "portalcms/pkg/errors"
	"portalcms/pkg/response"
)

type BannerHandler struct {
	store *usecase.BannerStore
}

func NewBannerHandler(store *usecase.BannerStore) *BannerHandler {
	return &BannerHandler{store: store}
}

type BannerRequest struct {
	URL    string `json:"url" validate:"required,url"`
	Alt    string `json:"alt"`
	Status string `json:"status" validate:"required,oneof=active hide expired"`
	Expiry string `json:"expiry"`
	Device string `json:"device" validate:"required,oneof=desktop mobile"`
	Theme  string `json:"theme" validate:"required,oneof=light dark"`
}

type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

type DeviceRequest struct {
	Device string `json:"device" validate:"required,oneof=desktop mobile"`
}

func (h *BannerHandler) List(c echo.Context) error {
	h.store.FetchAll(c.Request().Context())
	q := c.QueryParams()
	if q.Has("device") {
		h.store.SetDeviceFilter(q.Get("device"))
	}
	if q.Has("theme") {
		h.store.SetThemeFilter(q.Get("theme"))
	}
	applyListQuery(c, h.store)
	return response.Success(c, h.store.View())
}

func (h *BannerHandler) Create(c echo.Context) error {
	var req BannerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, apperrors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	username, _ := c.Get("username").(string)
	fb := h.store.Create(c.Request().Context(), entity.Banner{
		URL:        req.URL,
		Alt:        req.Alt,
		Status:     entity.Status(req.Status),
		Expiry:     req.Expiry,
		Device:     req.Device,
		Theme:      req.Theme,
		UploadedBy: username,
	})
	return feedback(c, fb, h.store.View())
}

func (h *BannerHandler) Update(c echo.Context) error {
	var req BannerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, apperrors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	fb := h.store.Update(c.Request().Context(), c.Param("id"), entity.Banner{
		URL:    req.URL,
		Alt:    req.Alt,
		Status: entity.Status(req.Status),
		Expiry: req.Expiry,
		Device: req.Device,
		Theme:  req.Theme,
	})
	return feedback(c, fb, h.store.View())
}

func (h *BannerHandler) UpdateStatus(c echo.Context) error {
	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, apperrors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	fb := h.store.UpdateStatus(c.Request().Context(), c.Param("id"), entity.Status(req.Status))
	return feedback(c, fb, h.store.View())
}

func (h *BannerHandler) UpdateTheme(c echo.Context) error {
	var req ThemeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, apperrors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	fb := h.store.UpdateTheme(c.Request().Context(), c.Param("id"), req.Theme)
	return feedback(c, fb, h.store.View())
}

func (h *BannerHandler) UpdateDevice(c echo.Context) error {
	var req DeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, apperrors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	fb := h.store.UpdateDevice(c.Request().Context(), c.Param("id"), req.Device)
	return feedback(c, fb, h.store.View())
}

func (h *BannerHandler) Delete(c echo.Context) error {
	fb := h.store.Delete(c.Request().Context(), c.Param("id"))
	return feedback(c, fb, h.store.View())
}

func (h *BannerHandler) DeleteSelected(c echo.Context) error {
	fb := h.store.DeleteSelected(c.Request().Context())
	return feedback(c, fb, h.store.View())
}

func (h *BannerHandler) ToggleSelect(c echo.Context) error {
	h.store.ToggleSelect(c.Param("id"))
	return response.Success(c, h.store.View())
}

func (h *BannerHandler) ToggleSelectAll(c echo.Context) error {
	h.store.ToggleSelectAll()
	return response.Success(c, h.store.View())
}

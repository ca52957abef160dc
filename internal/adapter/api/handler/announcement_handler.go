package handler

import (
	"github.com/labstack/echo/v4"

	"portalcms/internal/domain/entity"
	"portalcms/internal/usecase"
	apperrors "portalcms/pkg/errors"
	"portalcms/pkg/response"
)

type AnnouncementHandler struct {
	store *usecase.AnnouncementStore
}

func NewAnnouncementHandler(store *usecase.AnnouncementStore) *AnnouncementHandler {
	return &AnnouncementHandler{store: store}
}

type AnnouncementRequest struct {
	Desc   string `json:"desc" validate:"required,max=120"`
	Status string `json:"status" validate:"required,oneof=active hide expired"`
	Expiry string `json:"expiry"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active hide expired"`
}

// List refreshes the cache from the backend and renders the current view.
// A fetch failure falls back to the last cached collection.
func (h *AnnouncementHandler) List(c echo.Context) error {
	h.store.FetchAll(c.Request().Context())
	applyListQuery(c, h.store)
	return response.Success(c, h.store.View())
}

func (h *AnnouncementHandler) Create(c echo.Context) error {
	var req AnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, apperrors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	fb := h.store.Create(c.Request().Context(), entity.Announcement{
		Desc:   req.Desc,
		Status: entity.Status(req.Status),
		Expiry: req.Expiry,
	})
	return feedback(c, fb, h.store.View())
}

func (h *AnnouncementHandler) Update(c echo.Context) error {
	var req AnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, apperrors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	fb := h.store.Update(c.Request().Context(), c.Param("id"), entity.Announcement{
		Desc:   req.Desc,
		Status: entity.Status(req.Status),
		Expiry: req.Expiry,
	})
	return feedback(c, fb, h.store.View())
}

func (h *AnnouncementHandler) UpdateStatus(c echo.Context) error {
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

func (h *AnnouncementHandler) Delete(c echo.Context) error {
	fb := h.store.Delete(c.Request().Context(), c.Param("id"))
	return feedback(c, fb, h.store.View())
}

func (h *AnnouncementHandler) DeleteSelected(c echo.Context) error {
	fb := h.store.DeleteSelected(c.Request().Context())
	return feedback(c, fb, h.store.View())
}

func (h *AnnouncementHandler) ToggleSelect(c echo.Context) error {
	h.store.ToggleSelect(c.Param("id"))
	return response.Success(c, h.store.View())
}

func (h *AnnouncementHandler) ToggleSelectAll(c echo.Context) error {
	h.store.ToggleSelectAll()
	return response.Success(c, h.store.View())
}

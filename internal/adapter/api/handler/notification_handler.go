package handler

import (
	"github.com/labstack/echo/v4"

	"portalcms/internal/domain/entity"
	"portalcms/internal/usecase"
	apperrors "portalcms/pkg/errors"
	"portalcms/pkg/response"
)

type NotificationHandler struct {
	store *usecase.NotificationStore
}

func NewNotificationHandler(store *usecase.NotificationStore) *NotificationHandler {
	return &NotificationHandler{store: store}
}

type NotificationRequest struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required,max=120"`
	Status  string `json:"status" validate:"required,oneof=active hide expired"`
	Expiry  string `json:"expiry"`
}

func (h *NotificationHandler) List(c echo.Context) error {
	h.store.FetchAll(c.Request().Context())
	applyListQuery(c, h.store)
	return response.Success(c, h.store.View())
}

func (h *NotificationHandler) Create(c echo.Context) error {
	var req NotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, apperrors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	fb := h.store.Create(c.Request().Context(), entity.Notification{
		Title:   req.Title,
		Message: req.Message,
		Status:  entity.Status(req.Status),
		Expiry:  req.Expiry,
	})
	return feedback(c, fb, h.store.View())
}

func (h *NotificationHandler) Update(c echo.Context) error {
	var req NotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, apperrors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	fb := h.store.Update(c.Request().Context(), c.Param("id"), entity.Notification{
		Title:   req.Title,
		Message: req.Message,
		Status:  entity.Status(req.Status),
		Expiry:  req.Expiry,
	})
	return feedback(c, fb, h.store.View())
}

func (h *NotificationHandler) UpdateStatus(c echo.Context) error {
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

func (h *NotificationHandler) Delete(c echo.Context) error {
	fb := h.store.Delete(c.Request().Context(), c.Param("id"))
	return feedback(c, fb, h.store.View())
}

func (h *NotificationHandler) DeleteSelected(c echo.Context) error {
	fb := h.store.DeleteSelected(c.Request().Context())
	return feedback(c, fb, h.store.View())
}

func (h *NotificationHandler) ToggleSelect(c echo.Context) error {
	h.store.ToggleSelect(c.Param("id"))
	return response.Success(c, h.store.View())
}

func (h *NotificationHandler) ToggleSelectAll(c echo.Context) error {
	h.store.ToggleSelectAll()
	return response.Success(c, h.store.View())
}

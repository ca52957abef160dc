package handler

import (
	"github.com/labstack/echo/v4"

	"portalcms/internal/domain/entity"
	"portalcms/internal/usecase"
	apperrors "portalcms/pkg/errors"
	"portalcms/pkg/response"
)

type ProviderHandler struct {
	store *usecase.ProviderStore
}

func NewProviderHandler(store *usecase.ProviderStore) *ProviderHandler {
	return &ProviderHandler{store: store}
}

type ProviderRequest struct {
	ProviderID string `json:"provider_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Directory  string `json:"directory" validate:"required"`
	DarkLogo   string `json:"darkLogo" validate:"omitempty,url"`
	LightLogo  string `json:"lightLogo" validate:"omitempty,url"`
	Image      string `json:"image" validate:"omitempty,url"`
}

type FlagRequest struct {
	Flag  string `json:"flag" validate:"required,oneof=newGame topGame hidden"`
	Value bool   `json:"value"`
}

type ReorderRequest struct {
	Source      int `json:"source" validate:"min=0"`
	Destination int `json:"destination" validate:"min=0"`
}

func (h *ProviderHandler) List(c echo.Context) error {
	h.store.FetchAll(c.Request().Context())
	applyListQuery(c, h.store)
	return response.Success(c, h.store.View())
}

func (h *ProviderHandler) Create(c echo.Context) error {
	var req ProviderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, apperrors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}
	// The main image is mandatory when adding a provider; edits may keep
	// the existing one by omitting it.
	if req.Image == "" {
		return response.Error(c, apperrors.BadRequest("image is required", nil))
	}

	fb := h.store.Create(c.Request().Context(), entity.Provider{
		ProviderID: req.ProviderID,
		Name:       req.Name,
		Directory:  req.Directory,
		DarkLogo:   req.DarkLogo,
		LightLogo:  req.LightLogo,
		Image:      req.Image,
	})
	return feedback(c, fb, h.store.View())
}

func (h *ProviderHandler) Update(c echo.Context) error {
	var req ProviderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, apperrors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	fb := h.store.Update(c.Request().Context(), c.Param("id"), entity.Provider{
		ProviderID: req.ProviderID,
		Name:       req.Name,
		Directory:  req.Directory,
		DarkLogo:   req.DarkLogo,
		LightLogo:  req.LightLogo,
		Image:      req.Image,
	})
	return feedback(c, fb, h.store.View())
}

func (h *ProviderHandler) UpdateFlag(c echo.Context) error {
	var req FlagRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, apperrors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	fb := h.store.UpdateFlag(c.Request().Context(), c.Param("id"), req.Flag, req.Value)
	return feedback(c, fb, h.store.View())
}

// Reorder moves a row within the filtered view by positional indexes, the
// shape the drag-and-drop UI reports.
func (h *ProviderHandler) Reorder(c echo.Context) error {
	var req ReorderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, apperrors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	fb := h.store.Reorder(c.Request().Context(), req.Source, req.Destination)
	return feedback(c, fb, h.store.View())
}

func (h *ProviderHandler) Delete(c echo.Context) error {
	fb := h.store.Delete(c.Request().Context(), c.Param("id"))
	return feedback(c, fb, h.store.View())
}

func (h *ProviderHandler) DeleteSelected(c echo.Context) error {
	fb := h.store.DeleteSelected(c.Request().Context())
	return feedback(c, fb, h.store.View())
}

func (h *ProviderHandler) ToggleSelect(c echo.Context) error {
	h.store.ToggleSelect(c.Param("id"))
	return response.Success(c, h.store.View())
}

func (h *ProviderHandler) ToggleSelectAll(c echo.Context) error {
	h.store.ToggleSelectAll()
	return response.Success(c, h.store.View())
}

package handler

import (
	"github.com/labstack/echo/v4"

	"portalcms/internal/usecase"
	apperrors "portalcms/pkg/errors"
	"portalcms/pkg/response"
)

type GameHandler struct {
	store *usecase.GameStore
}

type DeleteGamesRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

func NewGameHandler(store *usecase.GameStore) *GameHandler {
	return &GameHandler{store: store}
}

// ListForProvider merges the catalog list for one provider with the stored
// tag records and renders the working list.
func (h *GameHandler) ListForProvider(c echo.Context) error {
	providerName := c.Param("name")
	mobile := c.QueryParam("mobile") == "1" || c.QueryParam("mobile") == "true"

	fb := h.store.LoadProviderGames(c.Request().Context(), providerName, mobile)
	if !fb.Success {
		return response.Failed(c, fb.Message)
	}

	if c.QueryParams().Has("search") {
		h.store.SetSearch(c.QueryParam("search"))
	}
	return response.Success(c, h.store.Games())
}

// ListStored renders only the backend's stored records for a provider,
// skipping the catalog fetch.
func (h *GameHandler) ListStored(c echo.Context) error {
	fb := h.store.FetchStored(c.Request().Context(), c.QueryParam("provider"))
	if !fb.Success {
		return response.Failed(c, fb.Message)
	}

	if c.QueryParams().Has("search") {
		h.store.SetSearch(c.QueryParam("search"))
	}
	return response.Success(c, h.store.Games())
}

// ToggleTag flips one tag on a game in the current working list.
func (h *GameHandler) ToggleTag(c echo.Context) error {
	fb := h.store.ToggleTag(c.Request().Context(), c.Param("gameId"), c.Param("tag"))
	return feedback(c, fb, h.store.Games())
}

func (h *GameHandler) Delete(c echo.Context) error {
	fb := h.store.Delete(c.Request().Context(), c.Param("id"))
	return feedback(c, fb, h.store.Games())
}

func (h *GameHandler) DeleteSelected(c echo.Context) error {
	var req DeleteGamesRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, apperrors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	fb := h.store.DeleteMany(c.Request().Context(), req.IDs)
	return feedback(c, fb, h.store.Games())
}

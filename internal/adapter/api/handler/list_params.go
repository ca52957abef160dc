package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"portalcms/internal/usecase"
	"portalcms/pkg/response"
)

// listStore is the view-state surface shared by every entity store.
type listStore interface {
	SetStatusFilter(string)
	SetSearch(string)
	SetPageSize(int)
	ChangePage(int)
}

// applyListQuery maps list query parameters onto the store. Filter and page
// size changes reset the page inside the store, so the page parameter is
// applied last.
func applyListQuery(c echo.Context, s listStore) {
	q := c.QueryParams()
	if q.Has("status") {
		s.SetStatusFilter(q.Get("status"))
	}
	if q.Has("search") {
		s.SetSearch(q.Get("search"))
	}
	if q.Has("pageSize") {
		if n, err := strconv.Atoi(q.Get("pageSize")); err == nil {
			s.SetPageSize(n)
		}
	}
	if q.Has("page") {
		if n, err := strconv.Atoi(q.Get("page")); err == nil {
			s.ChangePage(n)
		}
	}
}

// feedback renders a store result: failures stay HTTP 200 with success
// false, matching how the UI surfaces them as dismissible messages.
func feedback(c echo.Context, fb usecase.Feedback, data interface{}) error {
	if !fb.Success {
		return response.Failed(c, fb.Message)
	}
	return response.SuccessMessage(c, fb.Message, data)
}

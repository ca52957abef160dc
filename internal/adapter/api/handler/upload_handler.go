package handler

import (
	"github.com/labstack/echo/v4"

	"portalcms/internal/domain/service"
	apperrors "portalcms/pkg/errors"
	"portalcms/pkg/response"
)

type UploadHandler struct {
	uploads service.ImageUploadService
}

func NewUploadHandler(uploads service.ImageUploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// Upload pushes a multipart image to the external host and returns the
// hosted URL for use as a banner or logo reference.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, apperrors.BadRequest("Missing image file", err))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, apperrors.BadRequest("Unreadable image file", err))
	}
	defer file.Close()

	url, err := h.uploads.Upload(c.Request().Context(), file, fileHeader.Filename)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"url": url})
}

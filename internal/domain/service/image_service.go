package service

import (
	"context"
	"io"
)

// ImageUploadService pushes an image to the external host and returns the
// secure URL to store as the image/logo reference.
type ImageUploadService interface {
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)
}

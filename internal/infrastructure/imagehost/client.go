package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	apperrors "portalcms/pkg/errors"
)

// MaxUploadBytes caps banner and logo uploads at 1 MiB.
const MaxUploadBytes = 1 << 20

var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/webp": {},
}

// Client uploads images to the external image host using an unsigned upload
// preset and returns the hosted secure URL.
type Client struct {
	baseURL      string
	cloudName    string
	uploadPreset string
	http         *http.Client
}

func NewClient(baseURL, cloudName, uploadPreset string) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		http:         &http.Client{Timeout: 30 * time.Second},
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload validates the file's size and sniffed content type, then posts it
// as multipart form data. The declared filename is not trusted; only the
// content bytes decide whether the file is accepted.
func (c *Client) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(file, MaxUploadBytes+1))
	if err != nil {
		return "", apperrors.Internal("failed to read upload", err)
	}
	if len(data) > MaxUploadBytes {
		return "", apperrors.BadRequest("Image must be 1MB or smaller", nil)
	}
	if len(data) == 0 {
		return "", apperrors.BadRequest("Image file is empty", nil)
	}

	mtype := mimetype.Detect(data)
	if _, ok := allowedTypes[mtype.String()]; !ok {
		return "", apperrors.BadRequest("Only JPG and WEBP images are allowed", nil)
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := w.WriteField("upload_preset", c.uploadPreset); err != nil {
		return "", apperrors.Internal("failed to build upload request", err)
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", apperrors.Internal("failed to build upload request", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", apperrors.Internal("failed to build upload request", err)
	}
	if err := w.Close(); err != nil {
		return "", apperrors.Internal("failed to build upload request", err)
	}

	endpoint := fmt.Sprintf("%s/%s/image/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", apperrors.Internal("failed to build upload request", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", apperrors.Upstream("Image host is unreachable", err)
	}
	defer resp.Body.Close()

	var payload uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", apperrors.Upstream("Image host returned an unreadable response", err)
	}
	if resp.StatusCode != http.StatusOK || payload.SecureURL == "" {
		msg := payload.Error.Message
		if msg == "" {
			msg = fmt.Sprintf("Image upload failed with status %d", resp.StatusCode)
		}
		return "", apperrors.Upstream(msg, nil)
	}
	return payload.SecureURL, nil
}

package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "portalcms/pkg/errors"
)

// Client is the shared HTTP plumbing for the CMS backend REST API. Every
// request runs under the caller's context plus a default timeout, so a
// backend that never answers cannot leave a store's loading flag stuck.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: timeout,
	}
}

// do sends a JSON request and decodes the response into out (may be nil).
// Non-2xx responses become Upstream errors carrying the backend's own
// message, so the failure text the backend wrote is what staff will see.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apperrors.Internal("Failed to encode request body", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperrors.Internal("Failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode >= 400 {
		var envelope struct {
			Message string `json:"message"`
		}
		json.Unmarshal(data, &envelope)
		msg := envelope.Message
		if msg == "" {
			msg = res.Status
		}
		return apperrors.Upstream(msg, nil)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return err
		}
	}
	return nil
}

// successFromMessage translates the backend's legacy convention: deletes are
// judged successful by a case-insensitive "success" substring in the
// response message. The convention is fragile but load-bearing for
// backend compatibility, so it is translated exactly once, here.
func successFromMessage(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "success")
}

// ensureMessage backfills a default message when the backend omits one, so
// callers can render uniform feedback.
func ensureMessage(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}

// collection decodes a list response that may arrive either as a bare array
// or wrapped in an object under the resource key.
func collection[T any](raw json.RawMessage, key string) ([]T, error) {
	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, err
	}
	if inner, ok := wrapped[key]; ok {
		if err := json.Unmarshal(inner, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	return []T{}, nil
}

type messageEnvelope struct {
	Message string `json:"message"`
}

// deleteResult applies the legacy success convention to a delete response.
func deleteResult(env messageEnvelope, fallback string) (string, error) {
	msg := ensureMessage(env.Message, fallback)
	if !successFromMessage(msg) {
		return "", apperrors.Upstream(msg, nil)
	}
	return msg, nil
}

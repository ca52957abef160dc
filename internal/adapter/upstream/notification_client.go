package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"portalcms/internal/domain/entity"
	"portalcms/internal/domain/repository"
)

type notificationClient struct {
	c *Client
}

func NewNotificationRepository(c *Client) repository.NotificationRepository {
	return &notificationClient{c: c}
}

type notificationEnvelope struct {
	Message      string               `json:"message"`
	Notification *entity.Notification `json:"notification"`
}

func (r *notificationClient) List(ctx context.Context) ([]entity.Notification, error) {
	var raw json.RawMessage
	if err := r.c.do(ctx, http.MethodGet, "/notifications", nil, &raw); err != nil {
		return nil, err
	}
	return collection[entity.Notification](raw, "notifications")
}

func (r *notificationClient) Create(ctx context.Context, n entity.Notification) (*entity.Notification, string, error) {
	var env notificationEnvelope
	if err := r.c.do(ctx, http.MethodPost, "/notifications", n, &env); err != nil {
		return nil, "", err
	}
	return env.Notification, ensureMessage(env.Message, "Notification created successfully."), nil
}

func (r *notificationClient) Update(ctx context.Context, id string, n entity.Notification) (*entity.Notification, string, error) {
	var env notificationEnvelope
	if err := r.c.do(ctx, http.MethodPut, "/notifications/"+id, n, &env); err != nil {
		return nil, "", err
	}
	return env.Notification, ensureMessage(env.Message, "Notification updated successfully."), nil
}

func (r *notificationClient) UpdateStatus(ctx context.Context, id string, status entity.Status) (*entity.Notification, string, error) {
	var env notificationEnvelope
	payload := map[string]entity.Status{"status": status}
	if err := r.c.do(ctx, http.MethodPut, "/notifications/"+id, payload, &env); err != nil {
		return nil, "", err
	}
	return env.Notification, ensureMessage(env.Message, "Status updated successfully."), nil
}

func (r *notificationClient) Delete(ctx context.Context, id string) (string, error) {
	var env messageEnvelope
	if err := r.c.do(ctx, http.MethodDelete, "/notifications/"+id, nil, &env); err != nil {
		return "", err
	}
	return deleteResult(env, "Notification deleted successfully.")
}

func (r *notificationClient) DeleteMany(ctx context.Context, ids []string) (string, error) {
	var env messageEnvelope
	payload := map[string][]string{"ids": ids}
	if err := r.c.do(ctx, http.MethodPost, "/notifications/bulk-delete", payload, &env); err != nil {
		return "", err
	}
	return deleteResult(env, "Notifications deleted successfully.")
}

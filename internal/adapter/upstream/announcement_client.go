package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"portalcms/internal/domain/entity"
	"portalcms/internal/domain/repository"
)

type announcementClient struct {
	c *Client
}

func NewAnnouncementRepository(c *Client) repository.AnnouncementRepository {
	return &announcementClient{c: c}
}

type announcementEnvelope struct {
	Message      string               `json:"message"`
	Announcement *entity.Announcement `json:"announcement"`
}

// The announcement routes carry a trailing slash on the collection path;
// the backend 404s without it.
func (r *announcementClient) List(ctx context.Context) ([]entity.Announcement, error) {
	var raw json.RawMessage
	if err := r.c.do(ctx, http.MethodGet, "/announcements/", nil, &raw); err != nil {
		return nil, err
	}
	return collection[entity.Announcement](raw, "announcements")
}

func (r *announcementClient) Create(ctx context.Context, a entity.Announcement) (*entity.Announcement, string, error) {
	var env announcementEnvelope
	if err := r.c.do(ctx, http.MethodPost, "/announcements/", a, &env); err != nil {
		return nil, "", err
	}
	return env.Announcement, ensureMessage(env.Message, "Announcement created successfully."), nil
}

func (r *announcementClient) Update(ctx context.Context, id string, a entity.Announcement) (*entity.Announcement, string, error) {
	var env announcementEnvelope
	if err := r.c.do(ctx, http.MethodPut, "/announcements/"+id, a, &env); err != nil {
		return nil, "", err
	}
	return env.Announcement, ensureMessage(env.Message, "Announcement updated successfully."), nil
}

func (r *announcementClient) UpdateStatus(ctx context.Context, id string, status entity.Status) (*entity.Announcement, string, error) {
	var env announcementEnvelope
	payload := map[string]entity.Status{"status": status}
	if err := r.c.do(ctx, http.MethodPut, "/announcements/"+id, payload, &env); err != nil {
		return nil, "", err
	}
	return env.Announcement, ensureMessage(env.Message, "Status updated successfully."), nil
}

func (r *announcementClient) Delete(ctx context.Context, id string) (string, error) {
	var env messageEnvelope
	if err := r.c.do(ctx, http.MethodDelete, "/announcements/"+id, nil, &env); err != nil {
		return "", err
	}
	return deleteResult(env, "Announcement deleted successfully.")
}

func (r *announcementClient) DeleteMany(ctx context.Context, ids []string) (string, error) {
	var env messageEnvelope
	payload := map[string][]string{"ids": ids}
	if err := r.c.do(ctx, http.MethodPost, "/announcements/bulk-delete", payload, &env); err != nil {
		return "", err
	}
	return deleteResult(env, "Announcements deleted successfully.")
}

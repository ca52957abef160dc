package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"portalcms/internal/domain/entity"
	"portalcms/internal/domain/repository"
)

type bannerClient struct {
	c *Client
}

func NewBannerRepository(c *Client) repository.BannerRepository {
	return &bannerClient{c: c}
}

type bannerEnvelope struct {
	Message string         `json:"message"`
	Banner  *entity.Banner `json:"banner"`
}

func (r *bannerClient) List(ctx context.Context) ([]entity.Banner, error) {
	var raw json.RawMessage
	if err := r.c.do(ctx, http.MethodGet, "/banners", nil, &raw); err != nil {
		return nil, err
	}
	return collection[entity.Banner](raw, "banners")
}

func (r *bannerClient) Create(ctx context.Context, b entity.Banner) (*entity.Banner, string, error) {
	var env bannerEnvelope
	if err := r.c.do(ctx, http.MethodPost, "/banners", b, &env); err != nil {
		return nil, "", err
	}
	return env.Banner, ensureMessage(env.Message, "Banner created successfully."), nil
}

func (r *bannerClient) Update(ctx context.Context, id string, b entity.Banner) (*entity.Banner, string, error) {
	var env bannerEnvelope
	if err := r.c.do(ctx, http.MethodPut, "/banners/"+id, b, &env); err != nil {
		return nil, "", err
	}
	return env.Banner, ensureMessage(env.Message, "Banner updated successfully."), nil
}

func (r *bannerClient) UpdateStatus(ctx context.Context, id string, status entity.Status) (string, error) {
	var env messageEnvelope
	payload := map[string]entity.Status{"status": status}
	if err := r.c.do(ctx, http.MethodPatch, "/banners/status/"+id, payload, &env); err != nil {
		return "", err
	}
	return ensureMessage(env.Message, "Banner status updated successfully."), nil
}

func (r *bannerClient) UpdateTheme(ctx context.Context, id string, theme string) (string, error) {
	var env messageEnvelope
	payload := map[string]string{"theme": theme}
	if err := r.c.do(ctx, http.MethodPatch, "/banners/theme/"+id, payload, &env); err != nil {
		return "", err
	}
	return ensureMessage(env.Message, "Banner theme updated successfully."), nil
}

func (r *bannerClient) UpdateDevice(ctx context.Context, id string, device string) (string, error) {
	var env messageEnvelope
	payload := map[string]string{"device": device}
	if err := r.c.do(ctx, http.MethodPatch, "/banners/device/"+id, payload, &env); err != nil {
		return "", err
	}
	return ensureMessage(env.Message, "Banner device updated successfully."), nil
}

func (r *bannerClient) Delete(ctx context.Context, id string) (string, error) {
	var env messageEnvelope
	if err := r.c.do(ctx, http.MethodDelete, "/banners/"+id, nil, &env); err != nil {
		return "", err
	}
	return deleteResult(env, "Banner deleted successfully.")
}

func (r *bannerClient) DeleteMany(ctx context.Context, ids []string) (string, error) {
	var env messageEnvelope
	payload := map[string][]string{"ids": ids}
	if err := r.c.do(ctx, http.MethodPost, "/banners/bulk-delete", payload, &env); err != nil {
		return "", err
	}
	return deleteResult(env, "Banners deleted successfully.")
}

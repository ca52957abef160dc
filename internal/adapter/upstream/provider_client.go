package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"portalcms/internal/domain/entity"
	"portalcms/internal/domain/repository"
)

type providerClient struct {
	c *Client
}

func NewProviderRepository(c *Client) repository.ProviderRepository {
	return &providerClient{c: c}
}

type providerEnvelope struct {
	Message  string           `json:"message"`
	Provider *entity.Provider `json:"provider"`
}

func (r *providerClient) List(ctx context.Context) ([]entity.Provider, error) {
	var raw json.RawMessage
	if err := r.c.do(ctx, http.MethodGet, "/providers", nil, &raw); err != nil {
		return nil, err
	}
	return collection[entity.Provider](raw, "providers")
}

func (r *providerClient) Create(ctx context.Context, p entity.Provider) (*entity.Provider, string, error) {
	var env providerEnvelope
	if err := r.c.do(ctx, http.MethodPost, "/providers", p, &env); err != nil {
		return nil, "", err
	}
	return env.Provider, ensureMessage(env.Message, "Provider created successfully."), nil
}

func (r *providerClient) Update(ctx context.Context, id string, p entity.Provider) (*entity.Provider, string, error) {
	var env providerEnvelope
	if err := r.c.do(ctx, http.MethodPut, "/providers/"+id, p, &env); err != nil {
		return nil, "", err
	}
	return env.Provider, ensureMessage(env.Message, "Provider updated successfully."), nil
}

// UpdateFlag sends a one-field PUT so concurrent edits to the other fields
// are never clobbered.
func (r *providerClient) UpdateFlag(ctx context.Context, id string, flag string, value bool) (string, error) {
	var env messageEnvelope
	payload := map[string]bool{flag: value}
	if err := r.c.do(ctx, http.MethodPut, "/providers/"+id, payload, &env); err != nil {
		return "", err
	}
	return ensureMessage(env.Message, "Provider updated successfully."), nil
}

func (r *providerClient) Delete(ctx context.Context, id string) (string, error) {
	var env messageEnvelope
	if err := r.c.do(ctx, http.MethodDelete, "/providers/"+id, nil, &env); err != nil {
		return "", err
	}
	return deleteResult(env, "Provider deleted successfully.")
}

func (r *providerClient) DeleteMany(ctx context.Context, ids []string) (string, error) {
	var env messageEnvelope
	payload := map[string][]string{"ids": ids}
	if err := r.c.do(ctx, http.MethodPost, "/providers/bulk-delete", payload, &env); err != nil {
		return "", err
	}
	return deleteResult(env, "Providers deleted successfully.")
}

func (r *providerClient) Reorder(ctx context.Context, orderedIDs []string) ([]entity.Provider, string, error) {
	var env struct {
		Message   string            `json:"message"`
		Providers []entity.Provider `json:"providers"`
	}
	payload := map[string][]string{"orderedIds": orderedIDs}
	if err := r.c.do(ctx, http.MethodPut, "/providers/reorder", payload, &env); err != nil {
		return nil, "", err
	}
	return env.Providers, ensureMessage(env.Message, "Providers reordered successfully."), nil
}

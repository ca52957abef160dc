package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"portalcms/internal/domain/entity"
	"portalcms/internal/domain/repository"
)

type gameClient struct {
	c *Client
}

func NewGameRepository(c *Client) repository.GameRepository {
	return &gameClient{c: c}
}

type gameEnvelope struct {
	Message string       `json:"message"`
	Game    *entity.Game `json:"game"`
}

func (r *gameClient) List(ctx context.Context, provider string) ([]entity.Game, error) {
	path := "/games"
	if provider != "" {
		path += "?" + url.Values{"provider": {provider}}.Encode()
	}
	var raw json.RawMessage
	if err := r.c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	return collection[entity.Game](raw, "games")
}

func (r *gameClient) Create(ctx context.Context, g entity.Game) (*entity.Game, string, error) {
	var env gameEnvelope
	if err := r.c.do(ctx, http.MethodPost, "/games", g, &env); err != nil {
		return nil, "", err
	}
	return env.Game, ensureMessage(env.Message, "Game created successfully."), nil
}

func (r *gameClient) Update(ctx context.Context, id string, g entity.Game) (*entity.Game, string, error) {
	var env gameEnvelope
	if err := r.c.do(ctx, http.MethodPut, "/games/"+id, g, &env); err != nil {
		return nil, "", err
	}
	return env.Game, ensureMessage(env.Message, "Game updated successfully."), nil
}

// UpdateTags serializes the tag set back into the legacy gameTab string for
// the wire; only that field is sent.
func (r *gameClient) UpdateTags(ctx context.Context, id string, tags entity.TagSet) (*entity.Game, string, error) {
	var env gameEnvelope
	payload := map[string]string{"gameTab": tags.String()}
	if err := r.c.do(ctx, http.MethodPut, "/games/"+id, payload, &env); err != nil {
		return nil, "", err
	}
	return env.Game, ensureMessage(env.Message, "Game updated successfully."), nil
}

func (r *gameClient) Delete(ctx context.Context, id string) (string, error) {
	var env messageEnvelope
	if err := r.c.do(ctx, http.MethodDelete, "/games/"+id, nil, &env); err != nil {
		return "", err
	}
	return deleteResult(env, "Game deleted successfully.")
}

func (r *gameClient) DeleteMany(ctx context.Context, ids []string) (string, error) {
	var env messageEnvelope
	payload := map[string][]string{"ids": ids}
	if err := r.c.do(ctx, http.MethodPost, "/games/bulk-delete", payload, &env); err != nil {
		return "", err
	}
	return deleteResult(env, "Games deleted successfully.")
}

func (r *gameClient) GetByGameID(ctx context.Context, gameID string) (*entity.Game, bool, error) {
	var env struct {
		Exists bool         `json:"exists"`
		Game   *entity.Game `json:"game"`
	}
	if err := r.c.do(ctx, http.MethodGet, "/games/"+gameID, nil, &env); err != nil {
		return nil, false, err
	}
	return env.Game, env.Exists, nil
}

package repository

import (
	"context"

	"portalcms/internal/domain/entity"
)

type GameRepository interface {
	// List returns backend-stored game records, optionally for one provider.
	List(ctx context.Context, provider string) ([]entity.Game, error)
	Create(ctx context.Context, g entity.Game) (*entity.Game, string, error)
	Update(ctx context.Context, id string, g entity.Game) (*entity.Game, string, error)
	UpdateTags(ctx context.Context, id string, tags entity.TagSet) (*entity.Game, string, error)
	Delete(ctx context.Context, id string) (string, error)
	DeleteMany(ctx context.Context, ids []string) (string, error)
	// GetByGameID checks whether a backend record exists for the external
	// game code.
	GetByGameID(ctx context.Context, gameID string) (*entity.Game, bool, error)
}

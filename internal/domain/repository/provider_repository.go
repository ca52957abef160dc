package repository

import (
	"context"

	"portalcms/internal/domain/entity"
)

type ProviderRepository interface {
	List(ctx context.Context) ([]entity.Provider, error)
	Create(ctx context.Context, p entity.Provider) (*entity.Provider, string, error)
	Update(ctx context.Context, id string, p entity.Provider) (*entity.Provider, string, error)
	UpdateFlag(ctx context.Context, id string, flag string, value bool) (string, error)
	Delete(ctx context.Context, id string) (string, error)
	DeleteMany(ctx context.Context, ids []string) (string, error)
	// Reorder persists the full ordered id list and returns the canonical
	// reordered collection.
	Reorder(ctx context.Context, orderedIDs []string) ([]entity.Provider, string, error)
}

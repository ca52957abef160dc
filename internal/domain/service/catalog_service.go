package service

import (
	"context"

	"portalcms/internal/domain/entity"
)

// CatalogService fetches the raw game list for a provider from the
// third-party catalog endpoint.
type CatalogService interface {
	ProviderGames(ctx context.Context, providerName string, mobile bool) ([]entity.Game, error)
}

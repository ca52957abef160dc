package repository

import (
	"context"

	"portalcms/internal/domain/entity"
)

// BannerRepository adds the field-level facet mutators the banner resource
// exposes as dedicated PATCH routes.
type BannerRepository interface {
	List(ctx context.Context) ([]entity.Banner, error)
	Create(ctx context.Context, b entity.Banner) (*entity.Banner, string, error)
	Update(ctx context.Context, id string, b entity.Banner) (*entity.Banner, string, error)
	UpdateStatus(ctx context.Context, id string, status entity.Status) (string, error)
	UpdateTheme(ctx context.Context, id string, theme string) (string, error)
	UpdateDevice(ctx context.Context, id string, device string) (string, error)
	Delete(ctx context.Context, id string) (string, error)
	DeleteMany(ctx context.Context, ids []string) (string, error)
}

package repository

import (
	"context"

	"portalcms/internal/domain/entity"
)

// AnnouncementRepository is the port to the backend's announcement resource.
// Mutations return the canonical entity (when the backend sends one) and the
// backend's human-readable message; backend-reported failures come back as
// errors carrying that message.
type AnnouncementRepository interface {
	List(ctx context.Context) ([]entity.Announcement, error)
	Create(ctx context.Context, a entity.Announcement) (*entity.Announcement, string, error)
	Update(ctx context.Context, id string, a entity.Announcement) (*entity.Announcement, string, error)
	UpdateStatus(ctx context.Context, id string, status entity.Status) (*entity.Announcement, string, error)
	Delete(ctx context.Context, id string) (string, error)
	DeleteMany(ctx context.Context, ids []string) (string, error)
}

package repository

import (
	"context"

	"portalcms/internal/domain/entity"
)

type NotificationRepository interface {
	List(ctx context.Context) ([]entity.Notification, error)
	Create(ctx context.Context, n entity.Notification) (*entity.Notification, string, error)
	Update(ctx context.Context, id string, n entity.Notification) (*entity.Notification, string, error)
	UpdateStatus(ctx context.Context, id string, status entity.Status) (*entity.Notification, string, error)
	Delete(ctx context.Context, id string) (string, error)
	DeleteMany(ctx context.Context, ids []string) (string, error)
}

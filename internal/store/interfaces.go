package store

import (
	"context"

	"github.com/MKhiriev/go-sample-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

type ItemRepository interface {
	Create(ctx context.Context, payload models.ItemPayload) (models.Item, error)
	Get(ctx context.Context, id int64) (models.Item, error)
	List(ctx context.Context, skip, limit int) ([]models.Item, error)
	Update(ctx context.Context, id int64, payload models.ItemPayload) (models.Item, error)
	Delete(ctx context.Context, id int64) error
	All(ctx context.Context) ([]models.Item, error)
}

type UserRepository interface {
	Create(ctx context.Context, payload models.UserPayload) (models.User, error)
	Get(ctx context.Context, id int64) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	List(ctx context.Context, skip, limit int) ([]models.User, error)
	All(ctx context.Context) ([]models.User, error)
}

type AuditRepository interface {
	Record(ctx context.Context, payload models.AuditPayload) (models.AuditLog, error)
	ListAll(ctx context.Context) ([]models.AuditLog, error)
	ClearAll(ctx context.Context) error
}

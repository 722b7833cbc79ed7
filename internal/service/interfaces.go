package service

import (
	"context"

	"github.com/MKhiriev/go-sample-api/models"
)

type ItemService interface {
	CreateItem(ctx context.Context, payload models.ItemPayload) (models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	ListItems(ctx context.Context, skip, limit int) ([]models.Item, error)
	UpdateItem(ctx context.Context, id int64, payload models.ItemPayload) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

type UserService interface {
	CreateUser(ctx context.Context, payload models.UserPayload) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context, skip, limit int) ([]models.User, error)
}

// AuditService records and exposes the append-only audit trail. Recording is
// never invoked implicitly by the CRUD services: any caller wishing to log
// an action does so through an explicit call (or the audit endpoints).
type AuditService interface {
	RecordAudit(ctx context.Context, payload models.AuditPayload) (models.AuditLog, error)
	ListAuditLogs(ctx context.Context) ([]models.AuditLog, error)
	ClearAuditLogs(ctx context.Context) error
}

// StatsService computes derived read-only metrics over the stores.
type StatsService interface {
	// Compute scans the stores fresh on every call; nothing is cached.
	Compute(ctx context.Context) (models.Stats, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

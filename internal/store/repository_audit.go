package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sample-api/internal/logger"
	"github.com/MKhiriev/go-sample-api/models"
)

type auditRepository struct {
	logs *collection[models.AuditLog]

	logger *logger.Logger
}

func NewAuditRepository(logger *logger.Logger) AuditRepository {
	return &auditRepository{
		logs: newCollection(func(log models.AuditLog) int64 {
			return log.ID
		}),
		logger: logger,
	}
}

func (r *auditRepository) Record(_ context.Context, payload models.AuditPayload) (models.AuditLog, error) {
	entry := r.logs.insert(func(id int64) models.AuditLog {
		return models.AuditLog{
			ID:        id,
			Action:    payload.Action,
			Entity:    payload.Entity,
			Timestamp: time.Now(),
		}
	})

	r.logger.Debug().Int64("id", entry.ID).Str("action", entry.Action).Str("entity", entry.Entity).Msg("audit entry recorded")
	return entry, nil
}

func (r *auditRepository) ListAll(_ context.Context) ([]models.AuditLog, error) {
	return r.logs.all(), nil
}

// ClearAll removes every entry AND rewinds the audit identifier sequence
// back to 1, so the next recorded entry gets id=1 again. This deliberately
// differs from the items and users collections, whose allocators keep
// counting across clears. Both behaviours are contracts; do not unify them.
func (r *auditRepository) ClearAll(_ context.Context) error {
	r.logs.clear(true)

	r.logger.Debug().Msg("audit trail cleared, identifier sequence reset")
	return nil
}

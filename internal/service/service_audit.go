package service

import (
	"context"

	"github.com/MKhiriev/go-sample-api/internal/logger"
	"github.com/MKhiriev/go-sample-api/internal/store"
	"github.com/MKhiriev/go-sample-api/models"
)

type auditService struct {
	auditRepository store.AuditRepository

	logger *logger.Logger
}

func NewAuditService(auditRepository store.AuditRepository, logger *logger.Logger) AuditService {
	return &auditService{
		auditRepository: auditRepository,
		logger:          logger,
	}
}

func (s *auditService) RecordAudit(ctx context.Context, payload models.AuditPayload) (models.AuditLog, error) {
	return s.auditRepository.Record(ctx, payload)
}

func (s *auditService) ListAuditLogs(ctx context.Context) ([]models.AuditLog, error) {
	return s.auditRepository.ListAll(ctx)
}

func (s *auditService) ClearAuditLogs(ctx context.Context) error {
	return s.auditRepository.ClearAll(ctx)
}

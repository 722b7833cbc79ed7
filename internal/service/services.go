package service

import (
	"github.com/MKhiriev/go-sample-api/internal/config"
	"github.com/MKhiriev/go-sample-api/internal/logger"
	"github.com/MKhiriev/go-sample-api/internal/store"
)

type Services struct {
	ItemService    ItemService
	UserService    UserService
	AuditService   AuditService
	StatsService   StatsService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ItemService:    NewItemService(storages.ItemRepository, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		AuditService:   NewAuditService(storages.AuditRepository, logger),
		StatsService:   NewStatsService(storages.ItemRepository, storages.UserRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}

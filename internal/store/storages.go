package store

import "github.com/MKhiriev/go-sample-api/internal/logger"

// Storages aggregates every repository of the application. The three
// collections are fully independent: each one owns its own identifier
// allocator and mutex, and no operation spans more than one of them.
type Storages struct {
	ItemRepository  ItemRepository
	UserRepository  UserRepository
	AuditRepository AuditRepository
}

func NewStorages(logger *logger.Logger) *Storages {
	return &Storages{
		ItemRepository:  NewItemRepository(logger),
		UserRepository:  NewUserRepository(logger),
		AuditRepository: NewAuditRepository(logger),
	}
}

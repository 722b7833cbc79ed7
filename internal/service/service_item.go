package service

import (
	"context"

	"github.com/MKhiriev/go-sample-api/internal/logger"
	"github.com/MKhiriev/go-sample-api/internal/store"
	"github.com/MKhiriev/go-sample-api/internal/validators"
	"github.com/MKhiriev/go-sample-api/models"
)

type itemService struct {
	itemRepository store.ItemRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		validator:      validators.NewItemValidator(),
		logger:         logger,
	}
}

func (s *itemService) CreateItem(ctx context.Context, payload models.ItemPayload) (models.Item, error) {
	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.Item{}, err
	}

	return s.itemRepository.Create(ctx, payload)
}

func (s *itemService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	return s.itemRepository.Get(ctx, id)
}

func (s *itemService) ListItems(ctx context.Context, skip, limit int) ([]models.Item, error) {
	return s.itemRepository.List(ctx, skip, limit)
}

// UpdateItem applies the same field bounds as creation before replacing the
// stored record in place. On success the returned item keeps its identifier
// and CreatedAt, carries the new field values, and has a refreshed UpdatedAt.
func (s *itemService) UpdateItem(ctx context.Context, id int64, payload models.ItemPayload) (models.Item, error) {
	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.Item{}, err
	}

	return s.itemRepository.Update(ctx, id, payload)
}

func (s *itemService) DeleteItem(ctx context.Context, id int64) error {
	return s.itemRepository.Delete(ctx, id)
}

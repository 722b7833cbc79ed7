package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sample-api/internal/logger"
	"github.com/MKhiriev/go-sample-api/models"
)

type itemRepository struct {
	items *collection[models.Item]

	logger *logger.Logger
}

func NewItemRepository(logger *logger.Logger) ItemRepository {
	return &itemRepository{
		items: newCollection(func(item models.Item) int64 {
			return item.ID
		}),
		logger: logger,
	}
}

func (r *itemRepository) Create(_ context.Context, payload models.ItemPayload) (models.Item, error) {
	now := time.Now()

	item := r.items.insert(func(id int64) models.Item {
		return models.Item{
			ID:          id,
			Name:        payload.Name,
			Description: payload.Description,
			Price:       payload.Price,
			Quantity:    payload.Quantity,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	})

	r.logger.Debug().Int64("id", item.ID).Str("name", item.Name).Msg("item created")
	return item, nil
}

func (r *itemRepository) Get(_ context.Context, id int64) (models.Item, error) {
	item, ok := r.items.findByID(id)
	if !ok {
		return models.Item{}, fmt.Errorf("item id=%d: %w", id, ErrItemNotFound)
	}

	return item, nil
}

func (r *itemRepository) List(_ context.Context, skip, limit int) ([]models.Item, error) {
	return r.items.slice(skip, limit), nil
}

// Update overwrites the stored item in place: the identifier and CreatedAt
// of the existing record are preserved, every payload field replaces the old
// value, and UpdatedAt is refreshed.
func (r *itemRepository) Update(_ context.Context, id int64, payload models.ItemPayload) (models.Item, error) {
	item, ok := r.items.replace(id, func(old models.Item) models.Item {
		return models.Item{
			ID:          old.ID,
			Name:        payload.Name,
			Description: payload.Description,
			Price:       payload.Price,
			Quantity:    payload.Quantity,
			CreatedAt:   old.CreatedAt,
			UpdatedAt:   time.Now(),
		}
	})
	if !ok {
		return models.Item{}, fmt.Errorf("item id=%d: %w", id, ErrItemNotFound)
	}

	r.logger.Debug().Int64("id", item.ID).Msg("item updated")
	return item, nil
}

func (r *itemRepository) Delete(_ context.Context, id int64) error {
	if !r.items.remove(id) {
		return fmt.Errorf("item id=%d: %w", id, ErrItemNotFound)
	}

	r.logger.Debug().Int64("id", id).Msg("item deleted")
	return nil
}

func (r *itemRepository) All(_ context.Context) ([]models.Item, error) {
	return r.items.all(), nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-sample-api/internal/logger"
	"github.com/MKhiriev/go-sample-api/internal/mock"
	"github.com/MKhiriev/go-sample-api/internal/store"
	"github.com/MKhiriev/go-sample-api/internal/validators"
	"github.com/MKhiriev/go-sample-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestItemService(t *testing.T) (ItemService, *mock.MockItemRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)
	return NewItemService(repo, logger.Nop()), repo
}

func TestItemService_CreateItem_DelegatesToRepository(t *testing.T) {
	svc, repo := newTestItemService(t)
	ctx := context.Background()

	payload := models.ItemPayload{Name: "Widget", Price: 9.99, Quantity: 3}
	want := models.Item{ID: 1, Name: "Widget", Price: 9.99, Quantity: 3}

	repo.EXPECT().Create(ctx, payload).Return(want, nil)

	got, err := svc.CreateItem(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestItemService_CreateItem_RejectsInvalidPayload(t *testing.T) {
	svc, _ := newTestItemService(t)

	// no EXPECT: the repository must not be reached
	_, err := svc.CreateItem(context.Background(), models.ItemPayload{
		Name:     "Widget",
		Price:    0,
		Quantity: 3,
	})

	assert.ErrorIs(t, err, validators.ErrInvalidPrice)
}

func TestItemService_UpdateItem_RejectsInvalidPayload(t *testing.T) {
	svc, _ := newTestItemService(t)

	_, err := svc.UpdateItem(context.Background(), 1, models.ItemPayload{
		Name:     "",
		Price:    9.99,
		Quantity: 3,
	})

	assert.ErrorIs(t, err, validators.ErrInvalidName)
}

func TestItemService_UpdateItem_PropagatesNotFound(t *testing.T) {
	svc, repo := newTestItemService(t)
	ctx := context.Background()

	payload := models.ItemPayload{Name: "Widget", Price: 9.99, Quantity: 3}
	repo.EXPECT().Update(ctx, int64(42), payload).Return(models.Item{}, store.ErrItemNotFound)

	_, err := svc.UpdateItem(ctx, 42, payload)
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestItemService_GetItem_Delegates(t *testing.T) {
	svc, repo := newTestItemService(t)
	ctx := context.Background()

	want := models.Item{ID: 7, Name: "Widget"}
	repo.EXPECT().Get(ctx, int64(7)).Return(want, nil)

	got, err := svc.GetItem(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestItemService_ListItems_Delegates(t *testing.T) {
	svc, repo := newTestItemService(t)
	ctx := context.Background()

	want := []models.Item{{ID: 1}, {ID: 2}}
	repo.EXPECT().List(ctx, 0, 10).Return(want, nil)

	got, err := svc.ListItems(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestItemService_DeleteItem_PropagatesError(t *testing.T) {
	svc, repo := newTestItemService(t)
	ctx := context.Background()

	repoErr := errors.New("boom")
	repo.EXPECT().Delete(ctx, int64(3)).Return(repoErr)

	err := svc.DeleteItem(ctx, 3)
	assert.ErrorIs(t, err, repoErr)
}

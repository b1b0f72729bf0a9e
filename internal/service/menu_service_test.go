package service

import (
	"context"
	"errors"
	"testing"

	"restaurant/internal/events"
	"restaurant/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMenuService_AddItem(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("PublishesEvent", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("CreateMenuItem", ctx, mock.AnythingOfType("*models.MenuItem")).Run(func(args mock.Arguments) {
			args.Get(1).(*models.MenuItem).ID = 13
		}).Return(nil)

		bus := events.NewEventBus()
		var added int
		bus.Subscribe(events.EventMenuItemAdded, func(*events.Event) error {
			added++
			return nil
		})

		svc := NewMenuService(repo, bus, &logger)
		item := &models.MenuItem{Name: "Pelmeni", Category: "Mains", Price: 11}
		require.NoError(t, svc.AddItem(ctx, item))
		assert.Equal(t, int64(13), item.ID)
		assert.Equal(t, 1, added)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		storeErr := errors.New("db locked")
		repo := new(mockRepo)
		repo.On("CreateMenuItem", ctx, mock.AnythingOfType("*models.MenuItem")).Return(storeErr)

		bus := events.NewEventBus()
		var added int
		bus.Subscribe(events.EventMenuItemAdded, func(*events.Event) error {
			added++
			return nil
		})

		svc := NewMenuService(repo, bus, &logger)
		err := svc.AddItem(ctx, &models.MenuItem{Name: "Pelmeni"})
		assert.ErrorIs(t, err, storeErr)
		assert.Zero(t, added)
	})
}

func TestMenuService_ListSections(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	sections := []models.MenuSection{{Category: "Salads", Items: []models.MenuItem{{ID: 1}}}}
	repo := new(mockRepo)
	repo.On("GetMenuSections", ctx).Return(sections, nil)

	svc := NewMenuService(repo, events.NewEventBus(), &logger)
	got, err := svc.ListSections(ctx)
	require.NoError(t, err)
	assert.Equal(t, sections, got)
}

package service

import (
	"context"
	"testing"

	"restaurant/internal/database"
	"restaurant/internal/events"
	"restaurant/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingService_AvailableSlots(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("AllFreeOnEmptyDay", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetSlotCounts", ctx, "2026-09-01").Return(map[string]int64{}, nil)

		svc := NewBookingService(repo, events.NewEventBus(), 5, &logger)
		slots, err := svc.AvailableSlots(ctx, "2026-09-01")
		require.NoError(t, err)

		assert.Len(t, slots, models.SlotsPerDay)
		assert.Equal(t, "12:00", slots[0])
		assert.Equal(t, "23:30", slots[len(slots)-1])
	})

	t.Run("FullSlotDisappears", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetSlotCounts", ctx, "2026-09-01").Return(map[string]int64{
			"19:00": 5,
			"19:30": 4,
		}, nil)

		svc := NewBookingService(repo, events.NewEventBus(), 5, &logger)
		slots, err := svc.AvailableSlots(ctx, "2026-09-01")
		require.NoError(t, err)

		assert.NotContains(t, slots, "19:00")
		assert.Contains(t, slots, "19:30")
		assert.Len(t, slots, models.SlotsPerDay-1)
	})

	t.Run("InvalidDate", func(t *testing.T) {
		svc := NewBookingService(new(mockRepo), events.NewEventBus(), 5, &logger)
		_, err := svc.AvailableSlots(ctx, "01.09.2026")
		assert.Error(t, err)
	})
}

func TestBookingService_SlotAvailability(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	repo := new(mockRepo)
	repo.On("GetSlotCounts", ctx, "2026-09-01").Return(map[string]int64{"12:00": 5}, nil)

	svc := NewBookingService(repo, events.NewEventBus(), 5, &logger)
	slots, err := svc.SlotAvailability(ctx, "2026-09-01")
	require.NoError(t, err)

	require.Len(t, slots, models.SlotsPerDay)
	assert.Equal(t, "12:00", slots[0].Slot)
	assert.False(t, slots[0].Available)
	assert.Equal(t, int64(5), slots[0].Booked)
	assert.True(t, slots[1].Available)
}

func TestBookingService_SubmitBooking(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("PublishesEvent", func(t *testing.T) {
		booking := &models.Booking{Name: "Anna", Date: "2026-09-01", Slot: "19:00", Guests: 2}

		repo := new(mockRepo)
		repo.On("CreateBookingChecked", ctx, booking, int64(5)).Return(nil)

		bus := events.NewEventBus()
		var got []*events.Event
		bus.Subscribe(events.EventBookingCreated, func(e *events.Event) error {
			got = append(got, e)
			return nil
		})

		svc := NewBookingService(repo, bus, 5, &logger)
		require.NoError(t, svc.SubmitBooking(ctx, booking))
		assert.Len(t, got, 1)
	})

	t.Run("FullSlot", func(t *testing.T) {
		booking := &models.Booking{Name: "Anna", Date: "2026-09-01", Slot: "19:00", Guests: 2}

		repo := new(mockRepo)
		repo.On("CreateBookingChecked", ctx, booking, int64(5)).Return(database.ErrSlotFull)

		svc := NewBookingService(repo, events.NewEventBus(), 5, &logger)
		err := svc.SubmitBooking(ctx, booking)
		assert.ErrorIs(t, err, database.ErrSlotFull)
	})
}

func TestBookingService_DefaultCapacity(t *testing.T) {
	logger := zerolog.Nop()
	svc := NewBookingService(new(mockRepo), events.NewEventBus(), 0, &logger)
	assert.Equal(t, int64(models.DefaultSlotCapacity), svc.capacity)
}

func TestBookingService_GetBookingsByDateRange(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("InvalidRange", func(t *testing.T) {
		svc := NewBookingService(new(mockRepo), events.NewEventBus(), 5, &logger)
		_, err := svc.GetBookingsByDateRange(ctx, "2026-09-01", "not-a-date")
		assert.Error(t, err)
	})

	t.Run("Passthrough", func(t *testing.T) {
		expected := []*models.Booking{{ID: 1}}
		repo := new(mockRepo)
		repo.On("GetBookingsByDateRange", ctx, "2026-09-01", "2026-09-30").Return(expected, nil)

		svc := NewBookingService(repo, events.NewEventBus(), 5, &logger)
		got, err := svc.GetBookingsByDateRange(ctx, "2026-09-01", "2026-09-30")
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})
}

package service

import (
	"context"
	"fmt"
	"time"

	"restaurant/internal/domain"
	"restaurant/internal/events"
	"restaurant/internal/models"

	"github.com/rs/zerolog"
)

type BookingService struct {
	repo     domain.Repository
	eventBus domain.EventPublisher
	capacity int64
	logger   *zerolog.Logger
}

func NewBookingService(repo domain.Repository, eventBus domain.EventPublisher, capacity int64, logger *zerolog.Logger) *BookingService {
	if capacity <= 0 {
		capacity = models.DefaultSlotCapacity
	}
	return &BookingService{
		repo:     repo,
		eventBus: eventBus,
		capacity: capacity,
		logger:   logger,
	}
}

// AvailableSlots returns the slots of the date that still have room,
// in chronological order. A slot has room while its booking count is
// strictly below the capacity.
func (s *BookingService) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	counts, err := s.repo.GetSlotCounts(ctx, date)
	if err != nil {
		return nil, err
	}

	var available []string
	for _, slot := range models.SlotUniverse() {
		if counts[slot] < s.capacity {
			available = append(available, slot)
		}
	}
	return available, nil
}

// SlotAvailability returns the whole slot universe of the date with
// per-slot booked counts, for display.
func (s *BookingService) SlotAvailability(ctx context.Context, date string) ([]models.SlotAvailability, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	counts, err := s.repo.GetSlotCounts(ctx, date)
	if err != nil {
		return nil, err
	}

	slots := make([]models.SlotAvailability, 0, models.SlotsPerDay)
	for _, slot := range models.SlotUniverse() {
		slots = append(slots, models.SlotAvailability{
			Slot:      slot,
			Booked:    counts[slot],
			Available: counts[slot] < s.capacity,
		})
	}
	return slots, nil
}

// SubmitBooking persists a validated booking. The capacity check runs
// inside the same transaction as the insert, so two concurrent
// submissions cannot overbook a slot.
func (s *BookingService) SubmitBooking(ctx context.Context, booking *models.Booking) error {
	if err := s.repo.CreateBookingChecked(ctx, booking, s.capacity); err != nil {
		return err
	}

	s.logger.Info().
		Int64("booking_id", booking.ID).
		Str("date", booking.Date).
		Str("slot", booking.Slot).
		Int64("guests", booking.Guests).
		Msg("Booking created")

	_ = s.eventBus.PublishJSON(events.EventBookingCreated, events.BookingEventPayload{
		BookingID: booking.ID,
		Name:      booking.Name,
		Date:      booking.Date,
		Slot:      booking.Slot,
		Guests:    booking.Guests,
		UserID:    booking.UserID.Int64,
	})
	return nil
}

func (s *BookingService) GetBookingsByDateRange(ctx context.Context, startDate, endDate string) ([]*models.Booking, error) {
	for _, date := range []string{startDate, endDate} {
		if _, err := time.Parse(models.DateLayout, date); err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", date, err)
		}
	}
	return s.repo.GetBookingsByDateRange(ctx, startDate, endDate)
}

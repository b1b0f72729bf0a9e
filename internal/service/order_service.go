package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"restaurant/internal/database"
	"restaurant/internal/domain"
	"restaurant/internal/events"
	"restaurant/internal/models"

	"github.com/rs/zerolog"
)

type OrderService struct {
	repo     domain.Repository
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewOrderService(repo domain.Repository, eventBus domain.EventPublisher, logger *zerolog.Logger) *OrderService {
	return &OrderService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// PlaceOrder converts the cart into a persisted order. The total is a
// snapshot of current prices; cart entries whose item no longer exists
// are skipped. The order row and all its line rows are written in one
// transaction — on any failure nothing is persisted and the caller's
// cart is left untouched.
func (s *OrderService) PlaceOrder(ctx context.Context, userID int64, cart models.Cart) (*models.Order, error) {
	if userID == 0 {
		return nil, ErrAuthRequired
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	ids := make([]int64, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	order := &models.Order{
		UserID:    userID,
		OrderDate: time.Now(),
	}
	for _, id := range ids {
		item, err := s.repo.GetMenuItem(ctx, id)
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		quantity := cart[id]
		order.Items = append(order.Items, models.OrderItem{
			ItemID:   id,
			Quantity: quantity,
		})
		order.TotalAmount += item.Price * float64(quantity)
	}

	// Every cart entry pointed at a vanished item.
	if len(order.Items) == 0 {
		return nil, ErrEmptyCart
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Int64("user_id", userID).
		Float64("total", order.TotalAmount).
		Int("lines", len(order.Items)).
		Msg("Order placed")

	_ = s.eventBus.PublishJSON(events.EventOrderPlaced, events.OrderEventPayload{
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		LineCount:   len(order.Items),
	})
	return order, nil
}

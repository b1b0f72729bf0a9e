package service

import (
	"context"
	"errors"
	"sort"

	"restaurant/internal/database"
	"restaurant/internal/domain"
	"restaurant/internal/models"

	"github.com/rs/zerolog"
)

type CartService struct {
	repo   domain.Repository
	logger *zerolog.Logger
}

func NewCartService(repo domain.Repository, logger *zerolog.Logger) *CartService {
	return &CartService{
		repo:   repo,
		logger: logger,
	}
}

// AddToCart increments the quantity for the item in the cart and
// returns the item for the confirmation message. Unknown items yield
// database.ErrNotFound and leave the cart untouched.
func (s *CartService) AddToCart(ctx context.Context, cart models.Cart, itemID int64) (*models.MenuItem, error) {
	item, err := s.repo.GetMenuItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	cart.Add(itemID)
	return item, nil
}

// RemoveFromCart drops the item from the cart. Removing an absent item
// is a no-op, not an error.
func (s *CartService) RemoveFromCart(cart models.Cart, itemID int64) {
	cart.Remove(itemID)
}

// ViewCart resolves every cart entry against the current menu, so line
// prices always reflect the price of the moment, not the price at add
// time. Entries whose item no longer exists are silently dropped.
func (s *CartService) ViewCart(ctx context.Context, cart models.Cart) (*models.CartView, error) {
	ids := make([]int64, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	view := &models.CartView{}
	for _, id := range ids {
		item, err := s.repo.GetMenuItem(ctx, id)
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		quantity := cart[id]
		lineTotal := item.Price * float64(quantity)
		view.Lines = append(view.Lines, models.CartLine{
			Item:      *item,
			Quantity:  quantity,
			LineTotal: lineTotal,
		})
		view.Total += lineTotal
	}

	return view, nil
}

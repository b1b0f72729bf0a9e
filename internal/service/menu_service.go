package service

import (
	"context"

	"restaurant/internal/domain"
	"restaurant/internal/events"
	"restaurant/internal/models"

	"github.com/rs/zerolog"
)

type MenuService struct {
	repo     domain.Repository
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewMenuService(repo domain.Repository, eventBus domain.EventPublisher, logger *zerolog.Logger) *MenuService {
	return &MenuService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *MenuService) ListSections(ctx context.Context) ([]models.MenuSection, error) {
	return s.repo.GetMenuSections(ctx)
}

func (s *MenuService) GetItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	return s.repo.GetMenuItem(ctx, id)
}

func (s *MenuService) AddItem(ctx context.Context, item *models.MenuItem) error {
	if err := s.repo.CreateMenuItem(ctx, item); err != nil {
		return err
	}

	s.logger.Info().Int64("item_id", item.ID).Str("name", item.Name).Msg("Menu item added")
	_ = s.eventBus.PublishJSON(events.EventMenuItemAdded, item)
	return nil
}

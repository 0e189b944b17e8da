package service

import (
	"context"
	"fmt"

	"github.com/stefpopov/go-wine-cellar/internal/logger"
	"github.com/stefpopov/go-wine-cellar/internal/store"
	"github.com/stefpopov/go-wine-cellar/internal/validators"
	"github.com/stefpopov/go-wine-cellar/models"
)

type wineService struct {
	repo      store.WineRepository
	broadcast Broadcaster
	validator validators.WineValidator
	logger    *logger.Logger
}

// NewWineService constructs the server-side [WineService]. Mutations are
// broadcast only after the repository confirms them, so clients never see an
// event for a record that does not exist.
func NewWineService(repo store.WineRepository, broadcast Broadcaster, log *logger.Logger) WineService {
	return &wineService{
		repo:      repo,
		broadcast: broadcast,
		validator: validators.NewWineValidator(),
		logger:    log,
	}
}

func (s *wineService) List(ctx context.Context) ([]models.Wine, error) {
	return s.repo.List(ctx)
}

func (s *wineService) Get(ctx context.Context, id int64) (models.Wine, error) {
	return s.repo.Get(ctx, id)
}

func (s *wineService) Create(ctx context.Context, wine models.Wine) (models.Wine, error) {
	if err := s.validator.Validate(wine); err != nil {
		return models.Wine{}, err
	}

	wine.ID = 0
	created, err := s.repo.Create(ctx, wine)
	if err != nil {
		return models.Wine{}, fmt.Errorf("create wine: %w", err)
	}

	s.announceWine(models.PushWineAdded, created)
	return created, nil
}

func (s *wineService) Update(ctx context.Context, wine models.Wine) (models.Wine, error) {
	if err := s.validator.Validate(wine); err != nil {
		return models.Wine{}, err
	}

	updated, err := s.repo.Update(ctx, wine)
	if err != nil {
		return models.Wine{}, err
	}

	s.announceWine(models.PushWineUpdated, updated)
	return updated, nil
}

func (s *wineService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	msg, err := models.NewDeletePush(id)
	if err != nil {
		s.logger.Error().Err(err).Str("func", "wineService.Delete").Int64("id", id).Msg("failed to build push event")
		return nil
	}
	s.broadcast.Broadcast(msg)
	return nil
}

func (s *wineService) announceWine(msgType string, wine models.Wine) {
	msg, err := models.NewWinePush(msgType, wine)
	if err != nil {
		s.logger.Error().Err(err).Str("func", "wineService.announceWine").Int64("id", wine.ID).Msg("failed to build push event")
		return
	}
	s.broadcast.Broadcast(msg)
}

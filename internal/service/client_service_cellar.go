package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stefpopov/go-wine-cellar/internal/adapter"
	"github.com/stefpopov/go-wine-cellar/internal/logger"
	"github.com/stefpopov/go-wine-cellar/internal/store"
	"github.com/stefpopov/go-wine-cellar/internal/validators"
	"github.com/stefpopov/go-wine-cellar/models"
)

type cellarService struct {
	store     store.RecordStore
	remote    adapter.RemoteStore
	net       Connectivity
	scheduler Scheduler
	validator validators.WineValidator
	logger    *logger.Logger
}

// NewCellarService wires the sync engine's user-facing half. All
// collaborators are passed in explicitly; there is no ambient lookup.
func NewCellarService(
	recordStore store.RecordStore,
	remote adapter.RemoteStore,
	net Connectivity,
	scheduler Scheduler,
	log *logger.Logger,
) CellarService {
	return &cellarService{
		store:     recordStore,
		remote:    remote,
		net:       net,
		scheduler: scheduler,
		validator: validators.NewWineValidator(),
		logger:    log,
	}
}

func (s *cellarService) Wines(ctx context.Context) ([]models.Wine, error) {
	return s.store.GetVisible(ctx)
}

func (s *cellarService) Wine(ctx context.Context, id int64) (models.Wine, error) {
	return s.store.GetByID(ctx, id)
}

func (s *cellarService) Watch() <-chan struct{} {
	return s.store.Watch()
}

func (s *cellarService) Create(ctx context.Context, wine models.Wine) (models.Wine, error) {
	if err := s.validator.Validate(wine); err != nil {
		return models.Wine{}, err
	}

	wine.ID = 0
	wine.Status = models.StatusPendingCreate

	if !s.net.Online() {
		s.logger.Debug().Str("func", "cellarService.Create").Msg("offline: saving new wine as pending")
		return s.saveDraft(ctx, wine)
	}

	created, err := s.remote.Create(ctx, wine)
	switch {
	case err == nil:
		created.Status = models.StatusSynced
		stored, upsertErr := s.store.Upsert(ctx, created)
		if upsertErr != nil {
			return models.Wine{}, fmt.Errorf("store created wine: %w", upsertErr)
		}
		return stored, nil

	case adapter.Transient(err):
		s.logger.Warn().Err(err).Str("func", "cellarService.Create").Msg("failed to reach server, saving locally")
		return s.saveDraft(ctx, wine)

	default:
		// the server rejected the record; nothing is persisted
		return models.Wine{}, fmt.Errorf("create wine: %w", err)
	}
}

func (s *cellarService) Update(ctx context.Context, wine models.Wine) (models.Wine, error) {
	if err := s.validator.Validate(wine); err != nil {
		return models.Wine{}, err
	}

	current, err := s.store.GetByID(ctx, wine.ID)
	if err != nil {
		return models.Wine{}, fmt.Errorf("load wine for update: %w", err)
	}

	// an unconfirmed record must still go through create semantics: the
	// server has never seen it, so there is nothing to "update" there
	wine.Status = models.StatusPendingUpdate
	if current.Status == models.StatusPendingCreate {
		wine.Status = models.StatusPendingCreate
	}

	if !s.net.Online() {
		s.logger.Debug().Str("func", "cellarService.Update").Msg("offline: saving edit as pending")
		return s.saveEdit(ctx, wine)
	}

	var synced models.Wine
	if wine.Status == models.StatusPendingUpdate {
		synced, err = s.remote.Update(ctx, wine)
	} else {
		synced, err = s.remote.Create(ctx, wine)
	}

	switch {
	case err == nil:
		synced.Status = models.StatusSynced
		if wine.Status == models.StatusPendingCreate {
			// the synced copy replaces the provisional row entirely,
			// otherwise two rows would exist for the same record
			if delErr := s.store.DeletePermanently(ctx, wine.ID); delErr != nil {
				return models.Wine{}, fmt.Errorf("drop provisional wine row: %w", delErr)
			}
		}
		stored, upsertErr := s.store.Upsert(ctx, synced)
		if upsertErr != nil {
			return models.Wine{}, fmt.Errorf("store updated wine: %w", upsertErr)
		}
		return stored, nil

	case adapter.Transient(err):
		s.logger.Warn().Err(err).Str("func", "cellarService.Update").Msg("failed to reach server, saving locally")
		return s.saveEdit(ctx, wine)

	default:
		return models.Wine{}, fmt.Errorf("update wine: %w", err)
	}
}

func (s *cellarService) Delete(ctx context.Context, id int64) error {
	current, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("load wine for delete: %w", err)
	}

	if current.Status != models.StatusSynced {
		// the server never saw this record; deleting locally is the whole job
		s.logger.Debug().Str("func", "cellarService.Delete").Int64("id", id).Msg("deleting pending record locally")
		return s.store.DeletePermanently(ctx, id)
	}

	if !s.net.Online() {
		s.logger.Debug().Str("func", "cellarService.Delete").Int64("id", id).Msg("offline: marking for deletion")
		return s.markPendingDelete(ctx, id)
	}

	err = s.remote.Delete(ctx, id)
	switch {
	case err == nil:
		return s.store.DeletePermanently(ctx, id)

	case adapter.Transient(err):
		s.logger.Warn().Err(err).Str("func", "cellarService.Delete").Int64("id", id).
			Msg("failed to reach server, marking for deletion")
		return s.markPendingDelete(ctx, id)

	default:
		return fmt.Errorf("delete wine: %w", err)
	}
}

func (s *cellarService) saveDraft(ctx context.Context, wine models.Wine) (models.Wine, error) {
	stored, err := s.store.Upsert(ctx, wine)
	if err != nil {
		return models.Wine{}, fmt.Errorf("save wine draft: %w", err)
	}

	s.scheduler.Schedule()
	return stored, ErrSavedOffline
}

func (s *cellarService) saveEdit(ctx context.Context, wine models.Wine) (models.Wine, error) {
	stored, err := s.store.Upsert(ctx, wine)
	if err != nil {
		return models.Wine{}, fmt.Errorf("save wine edit: %w", err)
	}

	s.scheduler.Schedule()
	return stored, ErrSavedOffline
}

func (s *cellarService) markPendingDelete(ctx context.Context, id int64) error {
	if err := s.store.UpdateStatus(ctx, id, models.StatusPendingDelete); err != nil {
		return fmt.Errorf("mark wine for deletion: %w", err)
	}

	s.scheduler.Schedule()
	return ErrSavedOffline
}

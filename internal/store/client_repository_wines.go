package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stefpopov/go-wine-cellar/internal/logger"
	"github.com/stefpopov/go-wine-cellar/models"
)

type recordStore struct {
	db     *ClientDB
	logger *logger.Logger

	watchers []chan struct{}
}

// NewRecordStore constructs the SQLite-backed [RecordStore].
func NewRecordStore(db *ClientDB, log *logger.Logger) RecordStore {
	return &recordStore{db: db, logger: log}
}

func (s *recordStore) Upsert(ctx context.Context, wine models.Wine) (models.Wine, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Wine{}, fmt.Errorf("begin upsert tx: %w", err)
	}
	defer tx.Rollback()

	if wine.ID == 0 {
		// a draft without a server identifier gets a provisional negative key
		// so it can never shadow a server-assigned row
		var minID int64
		if err = tx.QueryRowContext(ctx, nextProvisionalID).Scan(&minID); err != nil {
			return models.Wine{}, fmt.Errorf("assign provisional id: %w", err)
		}
		if minID > 0 {
			minID = 0
		}
		wine.ID = minID - 1
	}

	_, err = tx.ExecContext(ctx, upsertWine,
		wine.ID,
		wine.Name,
		wine.Price,
		wine.ProductionDate,
		wine.Origin,
		wine.AlcoholDegree,
		wine.Status,
	)
	if err != nil {
		s.logger.Err(err).
			Str("func", "recordStore.Upsert").
			Int64("id", wine.ID).
			Msg("failed to execute upsert for wine")
		return models.Wine{}, fmt.Errorf("failed to upsert wine (id=%d): %w", wine.ID, err)
	}

	if err = tx.Commit(); err != nil {
		return models.Wine{}, fmt.Errorf("commit upsert tx: %w", err)
	}

	s.notify()
	return wine, nil
}

func (s *recordStore) InsertAll(ctx context.Context, wines []models.Wine) error {
	if len(wines) == 0 {
		return nil
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert-all tx: %w", err)
	}
	defer tx.Rollback()

	for _, wine := range wines {
		_, err = tx.ExecContext(ctx, upsertWine,
			wine.ID,
			wine.Name,
			wine.Price,
			wine.ProductionDate,
			wine.Origin,
			wine.AlcoholDegree,
			wine.Status,
		)
		if err != nil {
			s.logger.Err(err).
				Str("func", "recordStore.InsertAll").
				Int64("id", wine.ID).
				Msg("failed to insert wine in batch")
			return fmt.Errorf("failed to insert wine (id=%d): %w", wine.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit insert-all tx: %w", err)
	}

	s.notify()
	return nil
}

func (s *recordStore) UpdateStatus(ctx context.Context, id int64, status models.SyncStatus) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	result, err := s.db.ExecContext(ctx, updateWineStatus, status, id)
	if err != nil {
		s.logger.Err(err).
			Str("func", "recordStore.UpdateStatus").
			Int64("id", id).
			Msg("failed to execute status update")
		return fmt.Errorf("failed to update status (id=%d): %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (id=%d): %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: update status (id=%d)", ErrNotFound, id)
	}

	s.notify()
	return nil
}

func (s *recordStore) DeletePermanently(ctx context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, deleteWine, id); err != nil {
		s.logger.Err(err).
			Str("func", "recordStore.DeletePermanently").
			Int64("id", id).
			Msg("failed to execute delete")
		return fmt.Errorf("failed to delete wine (id=%d): %w", id, err)
	}

	s.notify()
	return nil
}

func (s *recordStore) GetByID(ctx context.Context, id int64) (models.Wine, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	var wine models.Wine
	row := s.db.QueryRowContext(ctx, getWineByID, id)
	err := row.Scan(
		&wine.ID,
		&wine.Name,
		&wine.Price,
		&wine.ProductionDate,
		&wine.Origin,
		&wine.AlcoholDegree,
		&wine.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Wine{}, fmt.Errorf("%w: get (id=%d)", ErrNotFound, id)
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "recordStore.GetByID").
			Int64("id", id).
			Msg("failed to scan wine row")
		return models.Wine{}, fmt.Errorf("failed to scan wine row: %w", err)
	}

	return wine, nil
}

func (s *recordStore) GetVisible(ctx context.Context) ([]models.Wine, error) {
	return s.query(ctx, "recordStore.GetVisible", getVisibleWines)
}

func (s *recordStore) GetPending(ctx context.Context) ([]models.Wine, error) {
	return s.query(ctx, "recordStore.GetPending", getPendingWines)
}

func (s *recordStore) ClearAllSynced(ctx context.Context) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, clearSyncedWines); err != nil {
		s.logger.Err(err).
			Str("func", "recordStore.ClearAllSynced").
			Msg("failed to clear synced wines")
		return fmt.Errorf("failed to clear synced wines: %w", err)
	}

	s.notify()
	return nil
}

func (s *recordStore) Watch() <-chan struct{} {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	ch := make(chan struct{}, 1)
	s.watchers = append(s.watchers, ch)
	return ch
}

func (s *recordStore) query(ctx context.Context, caller, query string) ([]models.Wine, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		s.logger.Err(err).Str("func", caller).Msg("failed to execute wine query")
		return nil, fmt.Errorf("failed to query wines: %w", err)
	}
	defer rows.Close()

	var wines []models.Wine
	for rows.Next() {
		var wine models.Wine
		err = rows.Scan(
			&wine.ID,
			&wine.Name,
			&wine.Price,
			&wine.ProductionDate,
			&wine.Origin,
			&wine.AlcoholDegree,
			&wine.Status,
		)
		if err != nil {
			s.logger.Err(err).Str("func", caller).Msg("failed to scan wine row")
			return nil, fmt.Errorf("failed to scan wine row: %w", err)
		}
		wines = append(wines, wine)
	}

	if err = rows.Err(); err != nil {
		s.logger.Err(err).Str("func", caller).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating wine rows: %w", err)
	}

	return wines, nil
}

// notify wakes every watcher without blocking; a watcher that already has a
// pending token gets nothing extra (signals are coalesced). Callers hold the
// store mutex.
func (s *recordStore) notify() {
	for _, ch := range s.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stefpopov/go-wine-cellar/internal/adapter"
	"github.com/stefpopov/go-wine-cellar/internal/logger"
	"github.com/stefpopov/go-wine-cellar/internal/store"
	"github.com/stefpopov/go-wine-cellar/models"
)

type replayService struct {
	store  store.RecordStore
	remote adapter.RemoteStore
	logger *logger.Logger
}

// NewReplayService builds the [Replayer] that drains the pending queue.
func NewReplayService(recordStore store.RecordStore, remote adapter.RemoteStore, log *logger.Logger) Replayer {
	return &replayService{
		store:  recordStore,
		remote: remote,
		logger: log,
	}
}

// Replay processes every pending record, then runs a best-effort
// reconciliation fetch of the authoritative set.
//
// Error classification per record: a transport failure or server fault aborts
// the whole remaining batch with ReplayRetry (when connectivity itself is the
// problem, further attempts are pointless). A remote client fault is
// permanent: the offending local record is discarded, logged, and the batch
// continues. Any other failure (a local store error, say) also aborts with
// ReplayRetry but keeps the record queued. Remote per-record failures never
// propagate to callers; the batch reports only its aggregate outcome.
func (s *replayService) Replay(ctx context.Context) (ReplayResult, error) {
	pending, err := s.store.GetPending(ctx)
	if err != nil {
		return ReplayRetry, fmt.Errorf("load pending records: %w", err)
	}

	if len(pending) > 0 {
		s.logger.Debug().Str("func", "replayService.Replay").Int("count", len(pending)).Msg("replaying pending records")
	}

	for _, wine := range pending {
		if ctx.Err() != nil {
			// canceled between records; every completed record was written
			// atomically, so the store stays consistent
			return ReplayRetry, ctx.Err()
		}

		err = s.replayOne(ctx, wine)
		if err == nil {
			continue
		}

		if adapter.Transient(err) {
			s.logger.Warn().Err(err).
				Str("func", "replayService.Replay").
				Int64("id", wine.ID).
				Str("status", string(wine.Status)).
				Msg("transient failure, stopping batch to retry later")
			return ReplayRetry, nil
		}

		if !errors.Is(err, adapter.ErrClientFault) {
			// only a remote rejection condemns a record; a local store
			// failure says nothing about the record itself, so it stays
			// queued for the next batch
			return ReplayRetry, fmt.Errorf("replay record %d: %w", wine.ID, err)
		}

		s.logger.Error().Err(err).
			Str("func", "replayService.Replay").
			Int64("id", wine.ID).
			Str("status", string(wine.Status)).
			Msg("permanent failure, discarding local record")
		if delErr := s.store.DeletePermanently(ctx, wine.ID); delErr != nil {
			return ReplayRetry, fmt.Errorf("discard failed record %d: %w", wine.ID, delErr)
		}
	}

	return s.reconcile(ctx)
}

func (s *replayService) replayOne(ctx context.Context, wine models.Wine) error {
	switch wine.Status {
	case models.StatusPendingCreate:
		created, err := s.remote.Create(ctx, wine)
		if err != nil {
			return err
		}
		// the provisional row goes away before the synced copy lands, so
		// exactly one row exists for the record
		if err = s.store.DeletePermanently(ctx, wine.ID); err != nil {
			return fmt.Errorf("drop provisional row: %w", err)
		}
		created.Status = models.StatusSynced
		if _, err = s.store.Upsert(ctx, created); err != nil {
			return fmt.Errorf("store synced wine: %w", err)
		}
		return nil

	case models.StatusPendingUpdate:
		updated, err := s.remote.Update(ctx, wine)
		if err != nil {
			return err
		}
		updated.Status = models.StatusSynced
		if _, err = s.store.Upsert(ctx, updated); err != nil {
			return fmt.Errorf("store synced wine: %w", err)
		}
		return nil

	case models.StatusPendingDelete:
		if err := s.remote.Delete(ctx, wine.ID); err != nil {
			return err
		}
		return s.store.DeletePermanently(ctx, wine.ID)

	default:
		return fmt.Errorf("unexpected pending status %q", wine.Status)
	}
}

// reconcile pulls the authoritative set and swaps it in under the synced
// rows. Reconciliation is best-effort: a transient fetch failure asks for a
// retry, a permanent one still reports success for the work already synced.
func (s *replayService) reconcile(ctx context.Context) (ReplayResult, error) {
	wines, err := s.remote.List(ctx)
	if err != nil {
		if adapter.Transient(err) {
			s.logger.Warn().Err(err).Str("func", "replayService.reconcile").Msg("reconciliation fetch failed, will retry")
			return ReplayRetry, nil
		}
		s.logger.Warn().Err(err).Str("func", "replayService.reconcile").Msg("reconciliation fetch rejected, skipping")
		return ReplaySuccess, nil
	}

	if err = s.store.ClearAllSynced(ctx); err != nil {
		return ReplayRetry, fmt.Errorf("clear synced records: %w", err)
	}

	for i := range wines {
		wines[i].Status = models.StatusSynced
	}
	if err = s.store.InsertAll(ctx, wines); err != nil {
		return ReplayRetry, fmt.Errorf("store fetched records: %w", err)
	}

	s.logger.Debug().Str("func", "replayService.reconcile").Int("count", len(wines)).Msg("reconciled with server")
	return ReplaySuccess, nil
}

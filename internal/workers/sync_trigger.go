package workers

import (
	"context"
	"time"

	"github.com/stefpopov/go-wine-cellar/internal/logger"
	"github.com/stefpopov/go-wine-cellar/internal/service"
)

// SyncTriggerConfig tunes the retry backoff of the replay worker.
type SyncTriggerConfig struct {
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// SyncTrigger owns the single replay loop. Any number of callers may request
// work via Schedule; requests arriving while a replay is pending or running
// collapse into one, so at most one batch is ever in flight.
type SyncTrigger struct {
	replayer service.Replayer
	net      service.Connectivity
	wake     chan struct{}
	initial  time.Duration
	max      time.Duration
	logger   *logger.Logger
}

// NewSyncTrigger builds the replay worker. It implements both
// [service.Scheduler] for producers and [Worker] for the runtime.
func NewSyncTrigger(replayer service.Replayer, net service.Connectivity, cfg SyncTriggerConfig, log *logger.Logger) *SyncTrigger {
	return &SyncTrigger{
		replayer: replayer,
		net:      net,
		wake:     make(chan struct{}, 1),
		initial:  cfg.InitialBackoff,
		max:      cfg.MaxBackoff,
		logger:   log,
	}
}

// Schedule requests a replay. Never blocks: if a request is already queued
// the new one coalesces into it.
func (t *SyncTrigger) Schedule() {
	select {
	case t.wake <- struct{}{}:
	default:
	}
}

// Run services wake requests until the context is canceled. A batch that
// asks to be retried is re-attempted after an exponentially growing delay;
// the delay resets as soon as a batch completes.
func (t *SyncTrigger) Run(ctx context.Context) {
	attempt := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.wake:
		}

		if !t.net.Online() {
			// stay idle; the connectivity monitor schedules us again the
			// moment the server becomes reachable
			t.logger.Debug().Str("func", "SyncTrigger.Run").Msg("offline, skipping replay")
			continue
		}

		result, err := t.replayer.Replay(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			t.logger.Error().Err(err).Str("func", "SyncTrigger.Run").Msg("replay batch failed")
		}

		if result == service.ReplaySuccess {
			attempt = 0
			continue
		}

		delay := retryDelay(t.initial, t.max, attempt)
		attempt++
		t.logger.Warn().
			Str("func", "SyncTrigger.Run").
			Dur("delay", delay).
			Int("attempt", attempt).
			Msg("replay incomplete, retrying after backoff")

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
			t.Schedule()
		}
	}
}

// retryDelay doubles the initial delay per attempt and caps it at max.
func retryDelay(initial, max time.Duration, attempt int) time.Duration {
	if attempt >= 63 {
		return max
	}
	delay := initial << uint(attempt)
	if delay <= 0 || delay > max {
		return max
	}
	return delay
}

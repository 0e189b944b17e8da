// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stefan Popov

// Package service hosts the offline-first sync engine on the client and the
// wine CRUD service on the server.
//
// The client side translates user intents into either an immediate remote
// round-trip or a durably queued pending mutation ([CellarService]), and
// replays the queue when the trigger fires ([Replayer]). The outcome
// [ErrSavedOffline] is deliberately not a plain failure: it tells the caller
// the write succeeded locally and is awaiting remote confirmation.
package service

import (
	"context"

	"github.com/stefpopov/go-wine-cellar/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/cellar_service_mock.go -package=mock

// CellarService is the user-facing surface of the sync engine.
type CellarService interface {
	// Wines returns the currently visible records (rows pending delete are
	// excluded).
	Wines(ctx context.Context) ([]models.Wine, error)

	// Wine returns a single record by identifier.
	Wine(ctx context.Context, id int64) (models.Wine, error)

	// Create stores a new record. Online, it round-trips to the server and
	// returns the canonical synced copy. Offline or on a transient remote
	// failure it persists a PENDING_CREATE draft, schedules a replay, and
	// returns the draft together with [ErrSavedOffline]. A remote client
	// fault is a pure failure: nothing is persisted.
	Create(ctx context.Context, wine models.Wine) (models.Wine, error)

	// Update edits an existing record, with the same outcome contract as
	// Create. A record still in PENDING_CREATE keeps that status and goes
	// through create semantics on the wire.
	Update(ctx context.Context, wine models.Wine) (models.Wine, error)

	// Delete removes a record. Never-synced records are removed locally right
	// away; synced ones either round-trip or are marked PENDING_DELETE until
	// the server confirms.
	Delete(ctx context.Context, id int64) error

	// Watch exposes the record store's change notifications so a presentation
	// layer can keep its visible list live.
	Watch() <-chan struct{}
}

// ReplayResult is the aggregate outcome of one replay batch.
type ReplayResult int

const (
	// ReplaySuccess: the batch is done; nothing left that a retry would fix.
	ReplaySuccess ReplayResult = iota
	// ReplayRetry: connectivity or the server failed mid-batch; the trigger
	// should re-invoke with backoff.
	ReplayRetry
)

// Replayer drains the pending-mutation queue. Exactly one replay batch may be
// in flight at a time; the sync trigger enforces that.
type Replayer interface {
	Replay(ctx context.Context) (ReplayResult, error)
}

// Scheduler wakes the background replay worker. Implemented by the sync
// trigger; calls are coalesced, so scheduling while work is already pending
// is a no-op.
type Scheduler interface {
	Schedule()
}

// Connectivity answers whether the server is believed reachable right now.
// Implemented by the netmon monitor.
type Connectivity interface {
	Online() bool
}

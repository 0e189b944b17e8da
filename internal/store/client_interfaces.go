// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stefan Popov

package store

import (
	"context"

	"github.com/stefpopov/go-wine-cellar/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/record_store_mock.go -package=mock

// RecordStore is the durable client-side store of wine records and their sync
// status. It is the single serialization point between the sync engine and
// the push client: every operation is atomic with respect to every other, so
// two concurrent writers can never leave a half-applied row behind.
//
// The status column is the only state the sync engine needs across restarts:
// after a crash, any row with a pending status is picked up by the next
// replay.
type RecordStore interface {
	// Upsert inserts or replaces a record keyed by its identifier and returns
	// the stored row. A record without an identifier is assigned a
	// provisional negative one, which can never collide with server-assigned
	// (positive) identifiers.
	Upsert(ctx context.Context, wine models.Wine) (models.Wine, error)

	// InsertAll upserts a batch of records in a single transaction.
	InsertAll(ctx context.Context, wines []models.Wine) error

	// UpdateStatus sets the sync status of the record with the given
	// identifier. Updating a missing record returns [ErrNotFound].
	UpdateStatus(ctx context.Context, id int64, status models.SyncStatus) error

	// DeletePermanently removes the row with the given identifier. Deleting a
	// missing row is a no-op.
	DeletePermanently(ctx context.Context, id int64) error

	// GetByID returns the record with the given identifier, or [ErrNotFound].
	GetByID(ctx context.Context, id int64) (models.Wine, error)

	// GetVisible returns the records a user should currently see: everything
	// except rows awaiting delete confirmation.
	GetVisible(ctx context.Context) ([]models.Wine, error)

	// GetPending returns every record whose status is not SYNCED, in
	// identifier order.
	GetPending(ctx context.Context) ([]models.Wine, error)

	// ClearAllSynced removes every SYNCED row. Used by the reconciliation
	// fetch before re-inserting the authoritative set.
	ClearAllSynced(ctx context.Context) error

	// Watch returns a coalesced change-notification channel: one token is
	// pending after any number of mutations since the last receive.
	// Consumers re-query GetVisible on each signal, which makes the visible
	// view live-updating.
	Watch() <-chan struct{}
}

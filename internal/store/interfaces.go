// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stefan Popov

package store

import (
	"context"

	"github.com/stefpopov/go-wine-cellar/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/wine_repository_mock.go -package=mock

// WineRepository is the server-side persistence surface over the
// authoritative wines table.
type WineRepository interface {
	// List returns every wine ordered by identifier.
	List(ctx context.Context) ([]models.Wine, error)

	// Get returns one wine by identifier, or [ErrNotFound].
	Get(ctx context.Context, id int64) (models.Wine, error)

	// Create inserts a wine and returns it with the server-assigned ID.
	Create(ctx context.Context, wine models.Wine) (models.Wine, error)

	// Update overwrites an existing wine, or returns [ErrNotFound].
	Update(ctx context.Context, wine models.Wine) (models.Wine, error)

	// Delete removes a wine by identifier, or returns [ErrNotFound].
	Delete(ctx context.Context, id int64) error
}

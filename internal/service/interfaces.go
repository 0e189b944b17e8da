// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stefan Popov

package service

import (
	"context"

	"github.com/stefpopov/go-wine-cellar/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/wine_service_mock.go -package=mock

// WineService is the server-side business surface over the authoritative
// wine set. Every confirmed mutation is announced on the push channel.
type WineService interface {
	List(ctx context.Context) ([]models.Wine, error)
	Get(ctx context.Context, id int64) (models.Wine, error)
	Create(ctx context.Context, wine models.Wine) (models.Wine, error)
	Update(ctx context.Context, wine models.Wine) (models.Wine, error)
	Delete(ctx context.Context, id int64) error
}

// Broadcaster publishes push events to connected clients. Implemented by the
// push hub; delivery is best-effort.
type Broadcaster interface {
	Broadcast(msg models.PushMessage)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stefan Popov

// Package adapter provides the transport layer for talking to the cellar
// server.
//
// The primary abstraction is [RemoteStore], which decouples the sync engine
// from the wire protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRemoteStore]) built on resty.
//
// Every failed call is wrapped in exactly one of the sentinel errors defined
// in errors.go, so callers branch with [errors.Is] instead of inspecting
// status codes: [ErrUnavailable] for transport failures, [ErrServerFault]
// for 5xx responses, and [ErrClientFault] for 4xx responses.
package adapter

import (
	"context"

	"github.com/stefpopov/go-wine-cellar/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore defines the create/read/update/delete surface of the
// authoritative cellar server. Implementations are responsible for
// serialisation and for mapping transport-level failures onto the sentinel
// errors of this package.
type RemoteStore interface {
	// List fetches the full authoritative record set.
	List(ctx context.Context) ([]models.Wine, error)

	// Get fetches a single record by its server identifier.
	Get(ctx context.Context, id int64) (models.Wine, error)

	// Create stores a new record on the server and returns the canonical
	// copy, including the server-assigned identifier. The local provisional
	// identifier and status of the argument are not transmitted.
	Create(ctx context.Context, wine models.Wine) (models.Wine, error)

	// Update replaces the record identified by wine.ID and returns the
	// canonical server copy.
	Update(ctx context.Context, wine models.Wine) (models.Wine, error)

	// Delete removes the record with the given server identifier.
	Delete(ctx context.Context, id int64) error

	// WSEndpoint returns the push-channel URL derived from the REST base
	// endpoint (http→ws, https→wss, path "/ws").
	WSEndpoint() string
}

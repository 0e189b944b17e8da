// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stefan Popov

// Package models defines the domain records shared by the client and the
// server: the wine record itself, its local synchronization status, and the
// push-channel message envelope.
package models

// SyncStatus describes where a locally stored wine record stands relative to
// the authoritative server copy. It is persisted as a column on the client
// and never serialized to the wire.
type SyncStatus string

const (
	// StatusSynced means the local row matches the server copy.
	StatusSynced SyncStatus = "SYNCED"
	// StatusPendingCreate means the record was created locally and the server
	// has not confirmed it yet. Records without a server identifier may exist
	// only in this status.
	StatusPendingCreate SyncStatus = "PENDING_CREATE"
	// StatusPendingUpdate means a local edit of a server-confirmed record is
	// awaiting upload.
	StatusPendingUpdate SyncStatus = "PENDING_UPDATE"
	// StatusPendingDelete means a local delete of a server-confirmed record is
	// awaiting confirmation. The row stays in the database but is hidden from
	// the visible view until the server acknowledges the delete.
	StatusPendingDelete SyncStatus = "PENDING_DELETE"
)

// Valid reports whether s is one of the four known statuses.
func (s SyncStatus) Valid() bool {
	switch s {
	case StatusSynced, StatusPendingCreate, StatusPendingUpdate, StatusPendingDelete:
		return true
	}
	return false
}

// Pending reports whether s marks a record that still needs a replay pass.
func (s SyncStatus) Pending() bool {
	return s.Valid() && s != StatusSynced
}

// CanTransition reports whether moving from s to next is a legal move of the
// status state machine. Both the sync engine and the push client are expected
// to stay inside this table; tests assert it.
func (s SyncStatus) CanTransition(next SyncStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	switch s {
	case StatusSynced:
		// a synced row may be edited or marked for deletion; push upserts keep
		// it synced
		return true
	case StatusPendingCreate:
		// an unconfirmed record stays PENDING_CREATE through edits and only
		// becomes SYNCED once the server confirms the create
		return next == StatusPendingCreate || next == StatusSynced
	case StatusPendingUpdate:
		return next == StatusPendingUpdate || next == StatusSynced || next == StatusPendingDelete
	case StatusPendingDelete:
		// the only way out of PENDING_DELETE is row removal, or a push upsert
		// that reinstates the server copy
		return next == StatusSynced
	}
	return false
}

// Wine is a single cellar record. Field names on the wire match the server
// API exactly; Status is client-local bookkeeping and is excluded from JSON.
//
// ID semantics: a positive ID was assigned by the server; zero means "no
// identifier yet"; negative IDs are provisional keys assigned by the local
// record store for rows in StatusPendingCreate (they can never collide with
// server-assigned identifiers).
type Wine struct {
	ID             int64      `json:"id,omitempty"`
	Name           string     `json:"name"`
	Price          float64    `json:"price"`
	ProductionDate string     `json:"productionDate"`
	Origin         string     `json:"origin,omitempty"`
	AlcoholDegree  float64    `json:"alcoholDegree"`
	Status         SyncStatus `json:"-"`
}

// HasServerID reports whether the record carries a server-assigned identifier.
func (w Wine) HasServerID() bool {
	return w.ID > 0
}

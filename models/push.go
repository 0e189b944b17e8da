// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stefan Popov

package models

import (
	"encoding/json"
	"fmt"
)

// Push message types carried in the PushMessage envelope. Added and Updated
// carry a full wine snapshot; Deleted carries only the identifier.
const (
	PushWineAdded   = "WINE_ADDED"
	PushWineUpdated = "WINE_UPDATED"
	PushWineDeleted = "WINE_DELETED"
)

// PushMessage is the envelope for every frame on the push channel. The
// payload is kept raw because its shape depends on Type.
type PushMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// DeletePayload is the payload of a WINE_DELETED message.
type DeletePayload struct {
	ID int64 `json:"id"`
}

// NewWinePush builds an Added/Updated envelope around a full wine snapshot.
func NewWinePush(msgType string, wine Wine) (PushMessage, error) {
	payload, err := json.Marshal(wine)
	if err != nil {
		return PushMessage{}, fmt.Errorf("marshal wine push payload: %w", err)
	}
	return PushMessage{Type: msgType, Payload: payload}, nil
}

// NewDeletePush builds a WINE_DELETED envelope around a bare identifier.
func NewDeletePush(id int64) (PushMessage, error) {
	payload, err := json.Marshal(DeletePayload{ID: id})
	if err != nil {
		return PushMessage{}, fmt.Errorf("marshal delete push payload: %w", err)
	}
	return PushMessage{Type: PushWineDeleted, Payload: payload}, nil
}

// Wine decodes the payload as a full wine snapshot (Added/Updated frames).
func (m PushMessage) Wine() (Wine, error) {
	var w Wine
	if err := json.Unmarshal(m.Payload, &w); err != nil {
		return Wine{}, fmt.Errorf("decode wine push payload: %w", err)
	}
	return w, nil
}

// DeletedID decodes the payload as a bare identifier (Deleted frames).
func (m PushMessage) DeletedID() (int64, error) {
	var p DeletePayload
	if err := json.Unmarshal(m.Payload, &p); err != nil {
		return 0, fmt.Errorf("decode delete push payload: %w", err)
	}
	if p.ID == 0 {
		return 0, fmt.Errorf("delete push payload without id")
	}
	return p.ID, nil
}

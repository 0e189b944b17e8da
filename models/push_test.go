package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushMessage_WineEnvelope(t *testing.T) {
	msg, err := NewWinePush(PushWineAdded, Wine{ID: 7, Name: "Rioja", Price: 12.5, Status: StatusSynced})
	require.NoError(t, err)
	assert.Equal(t, PushWineAdded, msg.Type)

	// envelope survives a wire round-trip
	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded PushMessage
	require.NoError(t, json.Unmarshal(data, &decoded))

	wine, err := decoded.Wine()
	require.NoError(t, err)
	assert.Equal(t, int64(7), wine.ID)
	assert.Equal(t, "Rioja", wine.Name)
	assert.Empty(t, wine.Status, "local status must not travel over the push channel")
}

func TestPushMessage_DeletedID(t *testing.T) {
	msg, err := NewDeletePush(5)
	require.NoError(t, err)
	assert.Equal(t, PushWineDeleted, msg.Type)

	id, err := msg.DeletedID()
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
}

func TestPushMessage_MalformedPayloads(t *testing.T) {
	bad := PushMessage{Type: PushWineAdded, Payload: json.RawMessage(`"not an object"`)}
	_, err := bad.Wine()
	require.Error(t, err)

	noID := PushMessage{Type: PushWineDeleted, Payload: json.RawMessage(`{"name":"x"}`)}
	_, err = noID.DeletedID()
	require.Error(t, err)
}

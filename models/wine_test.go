package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncStatus_Valid(t *testing.T) {
	for _, s := range []SyncStatus{StatusSynced, StatusPendingCreate, StatusPendingUpdate, StatusPendingDelete} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, SyncStatus("").Valid())
	assert.False(t, SyncStatus("DELETED").Valid())
}

func TestSyncStatus_Pending(t *testing.T) {
	assert.False(t, StatusSynced.Pending())
	assert.True(t, StatusPendingCreate.Pending())
	assert.True(t, StatusPendingUpdate.Pending())
	assert.True(t, StatusPendingDelete.Pending())
	assert.False(t, SyncStatus("garbage").Pending())
}

func TestSyncStatus_CanTransition(t *testing.T) {
	// an unconfirmed record must not pretend the server knows about it
	assert.False(t, StatusPendingCreate.CanTransition(StatusPendingUpdate))
	assert.False(t, StatusPendingCreate.CanTransition(StatusPendingDelete))
	assert.True(t, StatusPendingCreate.CanTransition(StatusPendingCreate))
	assert.True(t, StatusPendingCreate.CanTransition(StatusSynced))

	assert.True(t, StatusSynced.CanTransition(StatusPendingUpdate))
	assert.True(t, StatusSynced.CanTransition(StatusPendingDelete))

	assert.True(t, StatusPendingDelete.CanTransition(StatusSynced))
	assert.False(t, StatusPendingDelete.CanTransition(StatusPendingUpdate))

	assert.False(t, SyncStatus("garbage").CanTransition(StatusSynced))
	assert.False(t, StatusSynced.CanTransition(SyncStatus("garbage")))
}

func TestWine_StatusNeverSerializes(t *testing.T) {
	data, err := json.Marshal(Wine{ID: 1, Name: "Rioja", Status: StatusPendingUpdate})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "PENDING_UPDATE")
	assert.NotContains(t, string(data), "status")
}

func TestWine_ProvisionalIDOmittedFromJSON(t *testing.T) {
	w := Wine{ID: 0, Name: "Draft"}
	data, err := json.Marshal(w)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"id"`)
}

func TestWine_HasServerID(t *testing.T) {
	assert.True(t, Wine{ID: 1}.HasServerID())
	assert.False(t, Wine{ID: 0}.HasServerID())
	assert.False(t, Wine{ID: -3}.HasServerID(), "provisional ids are not server ids")
}

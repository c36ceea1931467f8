package sync_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"farmdeck.io/farmdeck/ent"
	syncengine "farmdeck.io/farmdeck/internal/sync"
	"farmdeck.io/farmdeck/internal/testutil"
)

func mustChange(t *testing.T, client *ent.Client, farmID, entityType, entityID string, seq int64) {
	t.Helper()
	err := client.ChangeLogEntry.Create().
		SetFarmID(farmID).
		SetEntityType(entityType).
		SetEntityID(entityID).
		SetOp("UPDATE").
		SetPayload([]byte(`{}`)).
		SetSeq(seq).
		Exec(context.Background())
	require.NoError(t, err)
}

func mustTombstone(t *testing.T, client *ent.Client, farmID, entityType, entityID string, seq int64) {
	t.Helper()
	err := client.Tombstone.Create().
		SetFarmID(farmID).
		SetEntityType(entityType).
		SetEntityID(entityID).
		SetSeq(seq).
		Exec(context.Background())
	require.NoError(t, err)
}

func currentState(t *testing.T, client *ent.Client, farmID string, ref syncengine.EntityRef) syncengine.EntityState {
	t.Helper()
	var state syncengine.EntityState
	err := syncengine.WithTx(context.Background(), client, func(tx *ent.Tx) error {
		var err error
		state, err = syncengine.CurrentState(context.Background(), tx, farmID, ref)
		return err
	})
	require.NoError(t, err)
	return state
}

func TestCurrentState_DerivedFromLogs(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, t.Name())
	ref := syncengine.EntityRef{Type: "paddock", ID: "p-1"}

	// Never written.
	state := currentState(t, client, "farm-1", ref)
	require.False(t, state.Exists)
	require.Zero(t, state.Seq)

	// Latest change wins while no tombstone outranks it.
	mustChange(t, client, "farm-1", "paddock", "p-1", 3)
	mustChange(t, client, "farm-1", "paddock", "p-1", 5)
	state = currentState(t, client, "farm-1", ref)
	require.True(t, state.Exists)
	require.False(t, state.Deleted)
	require.Equal(t, int64(5), state.Seq)

	// Tombstone at or above the latest change marks the key deleted.
	mustTombstone(t, client, "farm-1", "paddock", "p-1", 5)
	state = currentState(t, client, "farm-1", ref)
	require.True(t, state.Deleted)
	require.Equal(t, int64(5), state.Seq)

	// A later change outranks the tombstone again (revival).
	mustChange(t, client, "farm-1", "paddock", "p-1", 8)
	state = currentState(t, client, "farm-1", ref)
	require.True(t, state.Exists)
	require.False(t, state.Deleted)
	require.Equal(t, int64(8), state.Seq)
}

func TestCurrentState_ScopedByFarmAndType(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, t.Name())

	mustChange(t, client, "farm-1", "paddock", "x-1", 1)
	mustChange(t, client, "farm-2", "paddock", "x-1", 4)
	mustChange(t, client, "farm-1", "mob", "x-1", 2)

	state := currentState(t, client, "farm-1", syncengine.EntityRef{Type: "paddock", ID: "x-1"})
	require.Equal(t, int64(1), state.Seq)
	state = currentState(t, client, "farm-2", syncengine.EntityRef{Type: "paddock", ID: "x-1"})
	require.Equal(t, int64(4), state.Seq)
	state = currentState(t, client, "farm-1", syncengine.EntityRef{Type: "mob", ID: "x-1"})
	require.Equal(t, int64(2), state.Seq)
}

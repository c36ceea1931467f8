package sync_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"farmdeck.io/farmdeck/ent"
	apperrors "farmdeck.io/farmdeck/internal/pkg/errors"
	"farmdeck.io/farmdeck/internal/pkg/logger"
	"farmdeck.io/farmdeck/internal/service"
	syncengine "farmdeck.io/farmdeck/internal/sync"
	"farmdeck.io/farmdeck/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

type engine struct {
	client  *ent.Client
	applier *syncengine.Applier
	puller  *syncengine.Puller
}

func newEngine(t *testing.T, maxBatch int) *engine {
	t.Helper()
	client := testutil.OpenEntPostgres(t, t.Name())

	registry := syncengine.NewRegistry()
	registry.Register(service.EntityPaddock, service.NewPaddockService(client))
	registry.Register(service.EntityMob, service.NewMobService(client))
	registry.Register(service.EntityStockRecord, service.NewStockRecordService(client))

	recorder := syncengine.NewRecorder()
	return &engine{
		client:  client,
		applier: syncengine.NewApplier(client, registry, recorder, maxBatch),
		puller:  syncengine.NewPuller(client),
	}
}

func action(clientID string, op syncengine.Op, entityType, entityID, data string) syncengine.ClientAction {
	return syncengine.ClientAction{
		ClientID: clientID,
		Entity:   syncengine.EntityRef{Type: entityType, ID: entityID},
		Op:       op,
		Data:     json.RawMessage(data),
	}
}

func TestApplier_CreateThenPull(t *testing.T) {
	t.Parallel()
	e := newEngine(t, 0)
	ctx := context.Background()

	result, err := e.applier.Apply(ctx, "farm-1", []syncengine.ClientAction{
		action("c-1", syncengine.OpCreate, service.EntityPaddock, "p-1", `{"name":"River Flat","areaHa":12.5}`),
	})
	require.NoError(t, err)
	require.Len(t, result.Applied, 1)
	require.Empty(t, result.Conflicts)
	require.Equal(t, int64(1), result.Applied[0].Seq)
	require.Equal(t, "APPLIED", result.Applied[0].Status)

	delta, err := e.puller.Pull(ctx, "farm-1", 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), delta.ServerTime)
	require.Len(t, delta.Changes, 1)
	require.Empty(t, delta.Tombstones)
	require.Equal(t, syncengine.OpCreate, delta.Changes[0].Op)
	require.Equal(t, "p-1", delta.Changes[0].EntityID)

	var snapshot map[string]interface{}
	require.NoError(t, json.Unmarshal(delta.Changes[0].Payload, &snapshot))
	require.Equal(t, "River Flat", snapshot["name"])
}

func TestApplier_ReplayReturnsRecordedOutcome(t *testing.T) {
	t.Parallel()
	e := newEngine(t, 0)
	ctx := context.Background()

	batch := []syncengine.ClientAction{
		action("c-1", syncengine.OpCreate, service.EntityPaddock, "p-1", `{"name":"Top"}`),
	}

	first, err := e.applier.Apply(ctx, "farm-1", batch)
	require.NoError(t, err)
	require.Len(t, first.Applied, 1)

	// Same batch again: same outcome, no second mutation.
	second, err := e.applier.Apply(ctx, "farm-1", batch)
	require.NoError(t, err)
	require.Len(t, second.Applied, 1)
	require.Equal(t, first.Applied[0].Seq, second.Applied[0].Seq)

	count, err := e.client.ChangeLogEntry.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestApplier_ReplayedConflictStaysConflict(t *testing.T) {
	t.Parallel()
	e := newEngine(t, 0)
	ctx := context.Background()

	_, err := e.applier.Apply(ctx, "farm-1", []syncengine.ClientAction{
		action("c-1", syncengine.OpCreate, service.EntityPaddock, "p-1", `{"name":"A"}`),
		action("c-2", syncengine.OpUpdate, service.EntityPaddock, "p-1", `{"base":1,"name":"B"}`),
	})
	require.NoError(t, err)

	stale := []syncengine.ClientAction{
		action("c-3", syncengine.OpUpdate, service.EntityPaddock, "p-1", `{"base":1,"name":"C"}`),
	}
	first, err := e.applier.Apply(ctx, "farm-1", stale)
	require.NoError(t, err)
	require.Len(t, first.Conflicts, 1)
	require.Equal(t, syncengine.ReasonStale, first.Conflicts[0].Reason)

	// Even after the entity moves on, the replay reports the receipt's
	// verdict rather than re-running the conflict checks, down to the
	// currentSeq observed the first time.
	replay, err := e.applier.Apply(ctx, "farm-1", stale)
	require.NoError(t, err)
	require.Len(t, replay.Conflicts, 1)
	require.Equal(t, first.Conflicts[0], replay.Conflicts[0])
	require.Equal(t, int64(2), replay.Conflicts[0].CurrentSeq)
}

func TestApplier_StaleUpdateCarriesCurrentSeq(t *testing.T) {
	t.Parallel()
	e := newEngine(t, 0)
	ctx := context.Background()

	_, err := e.applier.Apply(ctx, "farm-1", []syncengine.ClientAction{
		action("c-1", syncengine.OpCreate, service.EntityPaddock, "p-1", `{"name":"A"}`),
	})
	require.NoError(t, err)

	// Base equal to current seq is the expected case and applies.
	ok, err := e.applier.Apply(ctx, "farm-1", []syncengine.ClientAction{
		action("c-2", syncengine.OpUpdate, service.EntityPaddock, "p-1", `{"base":1,"name":"B"}`),
	})
	require.NoError(t, err)
	require.Len(t, ok.Applied, 1)
	require.Equal(t, int64(2), ok.Applied[0].Seq)

	// Base behind current seq is stale and reports where the server is.
	stale, err := e.applier.Apply(ctx, "farm-1", []syncengine.ClientAction{
		action("c-3", syncengine.OpUpdate, service.EntityPaddock, "p-1", `{"base":1,"name":"C"}`),
	})
	require.NoError(t, err)
	require.Len(t, stale.Conflicts, 1)
	require.Equal(t, syncengine.ReasonStale, stale.Conflicts[0].Reason)
	require.Equal(t, int64(2), stale.Conflicts[0].CurrentSeq)
}

func TestApplier_SameBatchSecondWriterLoses(t *testing.T) {
	t.Parallel()
	e := newEngine(t, 0)
	ctx := context.Background()

	_, err := e.applier.Apply(ctx, "farm-1", []syncengine.ClientAction{
		action("c-1", syncengine.OpCreate, service.EntityPaddock, "p-1", `{"name":"A"}`),
	})
	require.NoError(t, err)

	// Two edits against the same base in one batch: the first advances
	// the entity, which makes the second stale.
	result, err := e.applier.Apply(ctx, "farm-1", []syncengine.ClientAction{
		action("c-2", syncengine.OpUpdate, service.EntityPaddock, "p-1", `{"base":1,"name":"B"}`),
		action("c-3", syncengine.OpUpdate, service.EntityPaddock, "p-1", `{"base":1,"name":"C"}`),
	})
	require.NoError(t, err)
	require.Len(t, result.Applied, 1)
	require.Equal(t, "c-2", result.Applied[0].ClientID)
	require.Len(t, result.Conflicts, 1)
	require.Equal(t, "c-3", result.Conflicts[0].ClientID)
	require.Equal(t, syncengine.ReasonStale, result.Conflicts[0].Reason)
	require.Equal(t, int64(2), result.Conflicts[0].CurrentSeq)
}

func TestApplier_DeleteAndTombstonePrecedence(t *testing.T) {
	t.Parallel()
	e := newEngine(t, 0)
	ctx := context.Background()

	result, err := e.applier.Apply(ctx, "farm-1", []syncengine.ClientAction{
		action("c-1", syncengine.OpCreate, service.EntityPaddock, "p-1", `{"name":"A"}`),
		action("c-2", syncengine.OpDelete, service.EntityPaddock, "p-1", ``),
	})
	require.NoError(t, err)
	require.Len(t, result.Applied, 2)

	// UPDATE against a tombstoned entity, even with a current base.
	updated, err := e.applier.Apply(ctx, "farm-1", []syncengine.ClientAction{
		action("c-3", syncengine.OpUpdate, service.EntityPaddock, "p-1", `{"base":2,"name":"B"}`),
	})
	require.NoError(t, err)
	require.Len(t, updated.Conflicts, 1)
	require.Equal(t, syncengine.ReasonDeleted, updated.Conflicts[0].Reason)

	// DELETE of an already-deleted entity.
	deleted, err := e.applier.Apply(ctx, "farm-1", []syncengine.ClientAction{
		action("c-4", syncengine.OpDelete, service.EntityPaddock, "p-1", ``),
	})
	require.NoError(t, err)
	require.Len(t, deleted.Conflicts, 1)
	require.Equal(t, syncengine.ReasonDeleted, deleted.Conflicts[0].Reason)
}

func TestApplier_CreateRevivesTombstonedID(t *testing.T) {
	t.Parallel()
	e := newEngine(t, 0)
	ctx := context.Background()

	_, err := e.applier.Apply(ctx, "farm-1", []syncengine.ClientAction{
		action("c-1", syncengine.OpCreate, service.EntityPaddock, "p-1", `{"name":"Old"}`),
		action("c-2", syncengine.OpDelete, service.EntityPaddock, "p-1", ``),
	})
	require.NoError(t, err)

	revived, err := e.applier.Apply(ctx, "farm-1", []syncengine.ClientAction{
		action("c-3", syncengine.OpCreate, service.EntityPaddock, "p-1", `{"name":"New"}`),
	})
	require.NoError(t, err)
	require.Len(t, revived.Applied, 1)
	require.Equal(t, int64(3), revived.Applied[0].Seq)

	// The CREATE outranks the tombstone, so pull consumers converge on
	// the revived entity.
	delta, err := e.puller.Pull(ctx, "farm-1", 0)
	require.NoError(t, err)
	require.Len(t, delta.Tombstones, 1)
	require.Greater(t, revived.Applied[0].Seq, delta.Tombstones[0].Seq)

	items, err := service.NewPaddockService(e.client).List(ctx, "farm-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "New", items[0].Name)
}

func TestApplier_NotFoundConflicts(t *testing.T) {
	t.Parallel()
	e := newEngine(t, 0)
	ctx := context.Background()

	result, err := e.applier.Apply(ctx, "farm-1", []syncengine.ClientAction{
		action("c-1", syncengine.OpUpdate, service.EntityPaddock, "ghost", `{"base":0,"name":"X"}`),
		action("c-2", syncengine.OpDelete, service.EntityPaddock, "ghost", ``),
	})
	require.NoError(t, err)
	require.Empty(t, result.Applied)
	require.Len(t, result.Conflicts, 2)
	for _, conflict := range result.Conflicts {
		require.Equal(t, syncengine.ReasonNotFound, conflict.Reason)
	}
}

func TestApplier_CreateExistingConflicts(t *testing.T) {
	t.Parallel()
	e := newEngine(t, 0)
	ctx := context.Background()

	_, err := e.applier.Apply(ctx, "farm-1", []syncengine.ClientAction{
		action("c-1", syncengine.OpCreate, service.EntityPaddock, "p-1", `{"name":"A"}`),
	})
	require.NoError(t, err)

	result, err := e.applier.Apply(ctx, "farm-1", []syncengine.ClientAction{
		action("c-2", syncengine.OpCreate, service.EntityPaddock, "p-1", `{"name":"B"}`),
	})
	require.NoError(t, err)
	require.Len(t, result.Conflicts, 1)
	require.Equal(t, syncengine.ReasonAlreadyExists, result.Conflicts[0].Reason)
}

func TestApplier_ValidationRejectionsGetNoReceipt(t *testing.T) {
	t.Parallel()
	e := newEngine(t, 0)
	ctx := context.Background()

	result, err := e.applier.Apply(ctx, "farm-1", []syncengine.ClientAction{
		action("", syncengine.OpCreate, service.EntityPaddock, "p-1", `{"name":"A"}`),
		action("c-2", "UPSERT", service.EntityPaddock, "p-2", `{"name":"B"}`),
		action("c-3", syncengine.OpCreate, "tractor", "t-1", `{"name":"C"}`),
		action("c-4", syncengine.OpCreate, service.EntityPaddock, "p-3", `{not json`),
		action("c-5", syncengine.OpUpdate, service.EntityPaddock, "", `{"base":0}`),
	})
	require.NoError(t, err)
	require.Empty(t, result.Applied)
	require.Len(t, result.Conflicts, 5)
	for _, conflict := range result.Conflicts {
		require.Equal(t, syncengine.ReasonValidation, conflict.Reason)
	}

	// Validation verdicts are deterministic on action content, so no
	// receipt is written for them.
	receipts, err := e.client.SyncReceipt.Query().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, receipts)
}

func TestApplier_BatchSizeLimit(t *testing.T) {
	t.Parallel()
	e := newEngine(t, 2)
	ctx := context.Background()

	batch := make([]syncengine.ClientAction, 3)
	for i := range batch {
		batch[i] = action(fmt.Sprintf("c-%d", i), syncengine.OpCreate,
			service.EntityPaddock, fmt.Sprintf("p-%d", i), `{"name":"X"}`)
	}

	_, err := e.applier.Apply(ctx, "farm-1", batch)
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeBatchTooLarge, appErr.Code)
}

func TestApplier_FarmsAreIsolated(t *testing.T) {
	t.Parallel()
	e := newEngine(t, 0)
	ctx := context.Background()

	_, err := e.applier.Apply(ctx, "farm-1", []syncengine.ClientAction{
		action("c-1", syncengine.OpCreate, service.EntityPaddock, "p-1", `{"name":"A"}`),
	})
	require.NoError(t, err)
	_, err = e.applier.Apply(ctx, "farm-2", []syncengine.ClientAction{
		action("c-2", syncengine.OpCreate, service.EntityPaddock, "p-2", `{"name":"B"}`),
	})
	require.NoError(t, err)

	// Each farm has its own sequence space and its own log.
	delta1, err := e.puller.Pull(ctx, "farm-1", 0)
	require.NoError(t, err)
	delta2, err := e.puller.Pull(ctx, "farm-2", 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), delta1.ServerTime)
	require.Equal(t, int64(1), delta2.ServerTime)
	require.Len(t, delta1.Changes, 1)
	require.Equal(t, "p-1", delta1.Changes[0].EntityID)
	require.Len(t, delta2.Changes, 1)
	require.Equal(t, "p-2", delta2.Changes[0].EntityID)
}

func TestApplier_MutatorRejectionReportsValidation(t *testing.T) {
	t.Parallel()
	e := newEngine(t, 0)
	ctx := context.Background()

	// Well-formed JSON that the entity mutator rejects on content.
	bad := []syncengine.ClientAction{
		action("c-1", syncengine.OpCreate, service.EntityPaddock, "p-1", `{"areaHa":1}`),
	}
	result, err := e.applier.Apply(ctx, "farm-1", bad)
	require.NoError(t, err)
	require.Empty(t, result.Applied)
	require.Len(t, result.Conflicts, 1)
	require.Equal(t, "c-1", result.Conflicts[0].ClientID)
	require.Equal(t, syncengine.ReasonValidation, result.Conflicts[0].Reason)

	// Deterministic on the payload, so no receipt is written: the same
	// clientId must be able to succeed with corrected data.
	receipts, err := e.client.SyncReceipt.Query().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, receipts)

	fixed, err := e.applier.Apply(ctx, "farm-1", []syncengine.ClientAction{
		action("c-1", syncengine.OpCreate, service.EntityPaddock, "p-1", `{"name":"Fixed","areaHa":1}`),
	})
	require.NoError(t, err)
	require.Len(t, fixed.Applied, 1)
	require.Equal(t, int64(1), fixed.Applied[0].Seq)
}

func TestApplier_CreateRevivesTombstonedStockRecord(t *testing.T) {
	t.Parallel()
	e := newEngine(t, 0)
	ctx := context.Background()

	_, err := e.applier.Apply(ctx, "farm-1", []syncengine.ClientAction{
		action("c-1", syncengine.OpCreate, service.EntityStockRecord, "r-1",
			`{"mobId":"m-1","kind":"WORMING","product":"First"}`),
		action("c-2", syncengine.OpDelete, service.EntityStockRecord, "r-1", ``),
	})
	require.NoError(t, err)

	revived, err := e.applier.Apply(ctx, "farm-1", []syncengine.ClientAction{
		action("c-3", syncengine.OpCreate, service.EntityStockRecord, "r-1",
			`{"mobId":"m-1","kind":"FOOTBATH","product":"Second"}`),
	})
	require.NoError(t, err)
	require.Empty(t, revived.Conflicts)
	require.Len(t, revived.Applied, 1)
	require.Equal(t, int64(3), revived.Applied[0].Seq)

	// One row, revived in place under the old primary key.
	count, err := e.client.StockRecord.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	items, err := service.NewStockRecordService(e.client).ListByMob(ctx, "farm-1", "m-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "FOOTBATH", items[0].Kind)
	require.Equal(t, "Second", items[0].Product)
}

package sync_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"farmdeck.io/farmdeck/ent"
	"farmdeck.io/farmdeck/ent/syncreceipt"
	syncengine "farmdeck.io/farmdeck/internal/sync"
	"farmdeck.io/farmdeck/internal/testutil"
)

func TestLedger_RecordIsWriteOnce(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, t.Name())
	ctx := context.Background()
	ledger := syncengine.Ledger{}
	ref := syncengine.EntityRef{Type: "paddock", ID: "p-1"}

	seq := int64(7)
	require.NoError(t, syncengine.WithTx(ctx, client, func(tx *ent.Tx) error {
		if err := ledger.Record(ctx, tx, "c-1", "farm-1", syncreceipt.StatusAPPLIED, ref, &seq); err != nil {
			return err
		}
		// Second write for the same clientId is a no-op, not an overwrite.
		return ledger.Record(ctx, tx, "c-1", "farm-1", syncreceipt.StatusSTALE, ref, nil)
	}))

	receipt, err := client.SyncReceipt.Query().Where(syncreceipt.ClientIDEQ("c-1")).Only(ctx)
	require.NoError(t, err)
	require.Equal(t, syncreceipt.StatusAPPLIED, receipt.Status)
	require.NotNil(t, receipt.Seq)
	require.Equal(t, int64(7), *receipt.Seq)
}

func TestLedger_LookupMissingIsNil(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, t.Name())
	ctx := context.Background()
	ledger := syncengine.Ledger{}

	require.NoError(t, syncengine.WithTx(ctx, client, func(tx *ent.Tx) error {
		receipt, err := ledger.Lookup(ctx, tx, "never-seen")
		if err != nil {
			return err
		}
		require.Nil(t, receipt)
		return nil
	}))

	receipt, err := ledger.LookupCommitted(ctx, client, "never-seen")
	require.NoError(t, err)
	require.Nil(t, receipt)
}

func TestLedger_ConflictReceiptKeepsObservedSeq(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, t.Name())
	ctx := context.Background()
	ledger := syncengine.Ledger{}
	ref := syncengine.EntityRef{Type: "mob", ID: "m-1"}

	// Conflict receipts carry the current seq observed at verdict time,
	// so replays reproduce the first response.
	observed := int64(4)
	require.NoError(t, syncengine.WithTx(ctx, client, func(tx *ent.Tx) error {
		return ledger.Record(ctx, tx, "c-stale", "farm-1", syncreceipt.StatusSTALE, ref, &observed)
	}))

	receipt, err := ledger.LookupCommitted(ctx, client, "c-stale")
	require.NoError(t, err)
	require.NotNil(t, receipt)
	require.Equal(t, syncreceipt.StatusSTALE, receipt.Status)
	require.NotNil(t, receipt.Seq)
	require.Equal(t, observed, *receipt.Seq)

	// A verdict against a never-written entity has nothing to observe.
	require.NoError(t, syncengine.WithTx(ctx, client, func(tx *ent.Tx) error {
		return ledger.Record(ctx, tx, "c-missing", "farm-1", syncreceipt.StatusNOT_FOUND,
			syncengine.EntityRef{Type: "mob", ID: "m-2"}, nil)
	}))
	receipt, err = ledger.LookupCommitted(ctx, client, "c-missing")
	require.NoError(t, err)
	require.NotNil(t, receipt)
	require.Nil(t, receipt.Seq)
}

package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"farmdeck.io/farmdeck/ent"
	"farmdeck.io/farmdeck/internal/service"
	"farmdeck.io/farmdeck/internal/testutil"
)

func TestMovementService_CreateRevivesSoftDeletedRow(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, t.Name())
	svc := service.NewMovementService(client)
	ctx := context.Background()

	require.NoError(t, inTx(t, client, func(tx *ent.Tx) error {
		_, err := svc.Create(ctx, tx, "farm-1", "mv-1", json.RawMessage(`{"mobId":"m-1","toPaddockId":"p-1"}`))
		return err
	}))
	require.NoError(t, inTx(t, client, func(tx *ent.Tx) error {
		return svc.SoftDelete(ctx, tx, "farm-1", "mv-1")
	}))

	// Same id again: the dead row comes back under the new payload.
	var snapshot json.RawMessage
	require.NoError(t, inTx(t, client, func(tx *ent.Tx) error {
		var err error
		snapshot, err = svc.Create(ctx, tx, "farm-1", "mv-1", json.RawMessage(`{"mobId":"m-1","toPaddockId":"p-2"}`))
		return err
	}))

	var dto service.MovementDTO
	require.NoError(t, json.Unmarshal(snapshot, &dto))
	require.Equal(t, "p-2", dto.ToPaddockID)

	items, err := svc.List(ctx, "farm-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "p-2", items[0].ToPaddockID)

	// Still exactly one row for the id.
	count, err := client.Movement.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"farmdeck.io/farmdeck/ent"
	apperrors "farmdeck.io/farmdeck/internal/pkg/errors"
	"farmdeck.io/farmdeck/internal/service"
	syncengine "farmdeck.io/farmdeck/internal/sync"
	"farmdeck.io/farmdeck/internal/testutil"
)

// inTx runs a mutator call inside a committed transaction, the way the
// sync engine and the commit use case drive the services.
func inTx(t *testing.T, client *ent.Client, fn func(tx *ent.Tx) error) error {
	t.Helper()
	return syncengine.WithTx(context.Background(), client, fn)
}

func TestPaddockService_CreateUpdateDelete(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, t.Name())
	svc := service.NewPaddockService(client)
	ctx := context.Background()

	var snapshot json.RawMessage
	require.NoError(t, inTx(t, client, func(tx *ent.Tx) error {
		var err error
		snapshot, err = svc.Create(ctx, tx, "farm-1", "p-1", json.RawMessage(`{"name":"River Flat","areaHa":12.5,"cropType":"lucerne"}`))
		return err
	}))

	var dto service.PaddockDTO
	require.NoError(t, json.Unmarshal(snapshot, &dto))
	require.Equal(t, "p-1", dto.ID)
	require.Equal(t, "River Flat", dto.Name)
	require.Equal(t, 12.5, dto.AreaHa)

	// Partial update touches only the supplied members.
	require.NoError(t, inTx(t, client, func(tx *ent.Tx) error {
		var err error
		snapshot, err = svc.Update(ctx, tx, "farm-1", "p-1", json.RawMessage(`{"areaHa":13.0}`))
		return err
	}))
	require.NoError(t, json.Unmarshal(snapshot, &dto))
	require.Equal(t, "River Flat", dto.Name)
	require.Equal(t, 13.0, dto.AreaHa)

	require.NoError(t, inTx(t, client, func(tx *ent.Tx) error {
		return svc.SoftDelete(ctx, tx, "farm-1", "p-1")
	}))

	items, err := svc.List(ctx, "farm-1")
	require.NoError(t, err)
	require.Empty(t, items)

	_, err = svc.Get(ctx, "farm-1", "p-1")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodePaddockNotFound, appErr.Code)
}

func TestPaddockService_CreateValidation(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, t.Name())
	svc := service.NewPaddockService(client)
	ctx := context.Background()

	err := inTx(t, client, func(tx *ent.Tx) error {
		_, err := svc.Create(ctx, tx, "farm-1", "p-1", json.RawMessage(`{"areaHa":1}`))
		return err
	})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestPaddockService_CreateRevivesSoftDeletedRow(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, t.Name())
	svc := service.NewPaddockService(client)
	ctx := context.Background()

	require.NoError(t, inTx(t, client, func(tx *ent.Tx) error {
		_, err := svc.Create(ctx, tx, "farm-1", "p-1", json.RawMessage(`{"name":"Old","cropType":"oats"}`))
		return err
	}))
	require.NoError(t, inTx(t, client, func(tx *ent.Tx) error {
		return svc.SoftDelete(ctx, tx, "farm-1", "p-1")
	}))

	// Same id again: the dead row comes back under the new payload.
	require.NoError(t, inTx(t, client, func(tx *ent.Tx) error {
		_, err := svc.Create(ctx, tx, "farm-1", "p-1", json.RawMessage(`{"name":"New"}`))
		return err
	}))

	got, err := svc.Get(ctx, "farm-1", "p-1")
	require.NoError(t, err)
	require.Equal(t, "New", got.Name)

	// Still exactly one row for the id.
	count, err := client.Paddock.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestPaddockService_CreateActiveDuplicateConflicts(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, t.Name())
	svc := service.NewPaddockService(client)
	ctx := context.Background()

	require.NoError(t, inTx(t, client, func(tx *ent.Tx) error {
		_, err := svc.Create(ctx, tx, "farm-1", "p-1", json.RawMessage(`{"name":"A"}`))
		return err
	}))
	err := inTx(t, client, func(tx *ent.Tx) error {
		_, err := svc.Create(ctx, tx, "farm-1", "p-1", json.RawMessage(`{"name":"B"}`))
		return err
	})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeEntityExists, appErr.Code)
}

func TestPaddockService_FarmScoping(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, t.Name())
	svc := service.NewPaddockService(client)
	ctx := context.Background()

	require.NoError(t, inTx(t, client, func(tx *ent.Tx) error {
		_, err := svc.Create(ctx, tx, "farm-1", "p-1", json.RawMessage(`{"name":"A"}`))
		return err
	}))

	_, err := svc.Get(ctx, "farm-2", "p-1")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodePaddockNotFound, appErr.Code)
}

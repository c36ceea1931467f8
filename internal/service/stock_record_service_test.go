package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"farmdeck.io/farmdeck/ent"
	apperrors "farmdeck.io/farmdeck/internal/pkg/errors"
	"farmdeck.io/farmdeck/internal/service"
	"farmdeck.io/farmdeck/internal/testutil"
)

func TestStockRecordService_CreateAndListByMob(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, t.Name())
	svc := service.NewStockRecordService(client)
	ctx := context.Background()

	require.NoError(t, inTx(t, client, func(tx *ent.Tx) error {
		_, err := svc.Create(ctx, tx, "farm-1", "r-1", json.RawMessage(
			`{"mobId":"m-1","kind":"WORMING","date":"2026-08-01T00:00:00Z","product":"Startect","rate":"1ml/5kg"}`))
		return err
	}))
	require.NoError(t, inTx(t, client, func(tx *ent.Tx) error {
		_, err := svc.Create(ctx, tx, "farm-1", "r-2", json.RawMessage(
			`{"mobId":"m-1","kind":"WEANING","date":"2026-08-15T00:00:00Z","count":85}`))
		return err
	}))
	require.NoError(t, inTx(t, client, func(tx *ent.Tx) error {
		_, err := svc.Create(ctx, tx, "farm-1", "r-3", json.RawMessage(
			`{"mobId":"m-2","kind":"FOOTBATH","date":"2026-08-10T00:00:00Z"}`))
		return err
	}))

	records, err := svc.ListByMob(ctx, "farm-1", "m-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Most recent first.
	require.Equal(t, "r-2", records[0].ID)
	require.Equal(t, "WEANING", records[0].Kind)
	require.Equal(t, 85, records[0].Count)
	require.Equal(t, "r-1", records[1].ID)
}

func TestStockRecordService_RejectsUnknownKind(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, t.Name())
	svc := service.NewStockRecordService(client)
	ctx := context.Background()

	err := inTx(t, client, func(tx *ent.Tx) error {
		_, err := svc.Create(ctx, tx, "farm-1", "r-1", json.RawMessage(
			`{"mobId":"m-1","kind":"SHEARING","date":"2026-08-01T00:00:00Z"}`))
		return err
	})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

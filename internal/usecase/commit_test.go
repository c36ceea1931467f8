package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	apperrors "farmdeck.io/farmdeck/internal/pkg/errors"
	"farmdeck.io/farmdeck/internal/pkg/logger"
	"farmdeck.io/farmdeck/internal/service"
	syncengine "farmdeck.io/farmdeck/internal/sync"
	"farmdeck.io/farmdeck/internal/testutil"
	"farmdeck.io/farmdeck/internal/usecase"
)

func init() {
	_ = logger.Init("error", "json")
}

func newCommit(t *testing.T) (*usecase.Commit, *syncengine.Puller) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, t.Name())
	registry := syncengine.NewRegistry()
	registry.Register(service.EntityPaddock, service.NewPaddockService(client))
	registry.Register(service.EntitySensor, service.NewSensorService(client))
	return usecase.NewCommit(client, registry, syncengine.NewRecorder()), syncengine.NewPuller(client)
}

func TestCommit_CreateGeneratesIDAndLogsChange(t *testing.T) {
	t.Parallel()
	commit, puller := newCommit(t)
	ctx := context.Background()

	result, err := commit.Execute(ctx, usecase.CommitInput{
		FarmID:     "farm-1",
		EntityType: service.EntityPaddock,
		Op:         syncengine.OpCreate,
		Data:       json.RawMessage(`{"name":"Back Forty"}`),
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), result.Seq)

	// Server-generated id is a valid UUID.
	_, err = uuid.Parse(result.EntityID)
	require.NoError(t, err)

	// The mutation is visible to syncing clients as an ordinary change.
	delta, err := puller.Pull(ctx, "farm-1", 0)
	require.NoError(t, err)
	require.Len(t, delta.Changes, 1)
	require.Equal(t, result.EntityID, delta.Changes[0].EntityID)
	require.Equal(t, syncengine.OpCreate, delta.Changes[0].Op)
}

func TestCommit_UpdateAndDeleteShareSequence(t *testing.T) {
	t.Parallel()
	commit, puller := newCommit(t)
	ctx := context.Background()

	created, err := commit.Execute(ctx, usecase.CommitInput{
		FarmID:     "farm-1",
		EntityType: service.EntityPaddock,
		EntityID:   "p-1",
		Op:         syncengine.OpCreate,
		Data:       json.RawMessage(`{"name":"A"}`),
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.Seq)

	// Online writers are authoritative: no base version required.
	updated, err := commit.Execute(ctx, usecase.CommitInput{
		FarmID:     "farm-1",
		EntityType: service.EntityPaddock,
		EntityID:   "p-1",
		Op:         syncengine.OpUpdate,
		Data:       json.RawMessage(`{"name":"B"}`),
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), updated.Seq)

	deleted, err := commit.Execute(ctx, usecase.CommitInput{
		FarmID:     "farm-1",
		EntityType: service.EntityPaddock,
		EntityID:   "p-1",
		Op:         syncengine.OpDelete,
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), deleted.Seq)

	delta, err := puller.Pull(ctx, "farm-1", 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), delta.ServerTime)
	require.Len(t, delta.Changes, 2)
	require.Len(t, delta.Tombstones, 1)
}

func TestCommit_RejectsUnknownTypeAndMissingID(t *testing.T) {
	t.Parallel()
	commit, _ := newCommit(t)
	ctx := context.Background()

	_, err := commit.Execute(ctx, usecase.CommitInput{
		FarmID:     "farm-1",
		EntityType: "tractor",
		Op:         syncengine.OpCreate,
	})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeUnknownEntityType, appErr.Code)
	// The message names the registered types for the caller.
	require.Contains(t, appErr.Message, service.EntityPaddock)

	_, err = commit.Execute(ctx, usecase.CommitInput{
		FarmID:     "farm-1",
		EntityType: service.EntityPaddock,
		Op:         syncengine.OpUpdate,
		Data:       json.RawMessage(`{"name":"B"}`),
	})
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestCommit_MutatorFailureRollsBackSequence(t *testing.T) {
	t.Parallel()
	commit, puller := newCommit(t)
	ctx := context.Background()

	// Missing required name aborts the whole transaction.
	_, err := commit.Execute(ctx, usecase.CommitInput{
		FarmID:     "farm-1",
		EntityType: service.EntityPaddock,
		EntityID:   "p-1",
		Op:         syncengine.OpCreate,
		Data:       json.RawMessage(`{"areaHa":2}`),
	})
	require.Error(t, err)

	delta, err := puller.Pull(ctx, "farm-1", 0)
	require.NoError(t, err)
	require.Zero(t, delta.ServerTime)
	require.Empty(t, delta.Changes)
}

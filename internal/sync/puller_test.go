package sync_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"farmdeck.io/farmdeck/internal/service"
	syncengine "farmdeck.io/farmdeck/internal/sync"
)

func TestPuller_SinceCursorAndOrdering(t *testing.T) {
	t.Parallel()
	e := newEngine(t, 0)
	ctx := context.Background()

	batch := make([]syncengine.ClientAction, 4)
	for i := range batch {
		batch[i] = action(fmt.Sprintf("c-%d", i), syncengine.OpCreate,
			service.EntityPaddock, fmt.Sprintf("p-%d", i), `{"name":"P"}`)
	}
	_, err := e.applier.Apply(ctx, "farm-1", batch)
	require.NoError(t, err)

	delta, err := e.puller.Pull(ctx, "farm-1", 2)
	require.NoError(t, err)
	require.Equal(t, int64(4), delta.ServerTime)
	require.Len(t, delta.Changes, 2)
	require.Equal(t, int64(3), delta.Changes[0].Seq)
	require.Equal(t, int64(4), delta.Changes[1].Seq)

	// Resuming from the reported watermark yields nothing new.
	next, err := e.puller.Pull(ctx, "farm-1", delta.ServerTime)
	require.NoError(t, err)
	require.Empty(t, next.Changes)
	require.Empty(t, next.Tombstones)
	require.Equal(t, delta.ServerTime, next.ServerTime)
}

func TestPuller_TombstonesKeptSeparate(t *testing.T) {
	t.Parallel()
	e := newEngine(t, 0)
	ctx := context.Background()

	_, err := e.applier.Apply(ctx, "farm-1", []syncengine.ClientAction{
		action("c-1", syncengine.OpCreate, service.EntityMob, "m-1", `{"name":"Ewes","count":120}`),
		action("c-2", syncengine.OpUpdate, service.EntityMob, "m-1", `{"base":1,"count":118}`),
		action("c-3", syncengine.OpDelete, service.EntityMob, "m-1", ``),
	})
	require.NoError(t, err)

	delta, err := e.puller.Pull(ctx, "farm-1", 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), delta.ServerTime)
	require.Len(t, delta.Changes, 2)
	require.Len(t, delta.Tombstones, 1)
	require.Equal(t, int64(3), delta.Tombstones[0].Seq)
	require.Equal(t, "m-1", delta.Tombstones[0].EntityID)
}

func TestPuller_EmptyFarm(t *testing.T) {
	t.Parallel()
	e := newEngine(t, 0)

	delta, err := e.puller.Pull(context.Background(), "farm-empty", 0)
	require.NoError(t, err)
	require.Zero(t, delta.ServerTime)
	require.Empty(t, delta.Changes)
	require.Empty(t, delta.Tombstones)
}

package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/riverqueue/river"

	"farmdeck.io/farmdeck/ent/syncreceipt"
	"farmdeck.io/farmdeck/internal/pkg/logger"
	"farmdeck.io/farmdeck/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestReceiptCleanupArgsKind(t *testing.T) {
	t.Parallel()

	if got := (ReceiptCleanupArgs{}).Kind(); got != "receipt_cleanup" {
		t.Fatalf("Kind() = %q, want %q", got, "receipt_cleanup")
	}
}

func TestReceiptCleanupArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (ReceiptCleanupArgs{}).InsertOpts()
	if opts.Queue != river.QueueDefault {
		t.Fatalf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != 24*time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, 24*time.Hour)
	}
	if !opts.UniqueOpts.ByQueue {
		t.Fatal("UniqueOpts.ByQueue = false, want true")
	}
	if !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts.ByArgs = false, want true")
	}
}

func TestNewReceiptCleanupWorkerRetention(t *testing.T) {
	t.Parallel()

	t.Run("defaults to thirty days when non-positive", func(t *testing.T) {
		w := NewReceiptCleanupWorker(nil, 0)
		if w.retention != DefaultReceiptRetention {
			t.Fatalf("retention = %s, want %s", w.retention, DefaultReceiptRetention)
		}
	})

	t.Run("uses explicit retention when provided", func(t *testing.T) {
		want := 7 * 24 * time.Hour
		w := NewReceiptCleanupWorker(nil, want)
		if w.retention != want {
			t.Fatalf("retention = %s, want %s", w.retention, want)
		}
	})
}

func TestReceiptCleanupWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	t.Run("nil receiver", func(t *testing.T) {
		var w *ReceiptCleanupWorker
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})

	t.Run("nil ent client", func(t *testing.T) {
		w := &ReceiptCleanupWorker{}
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})
}

func TestReceiptCleanupWorkerWork_DeletesOnlyExpired(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "receiptcleanup")
	ctx := context.Background()

	old := time.Now().UTC().Add(-48 * time.Hour)
	if _, err := client.SyncReceipt.Create().
		SetFarmID("farm-1").
		SetClientID("stale").
		SetStatus(syncreceipt.StatusAPPLIED).
		SetSeq(1).
		SetEntityType("paddock").
		SetEntityID("p-1").
		SetCreatedAt(old).
		Save(ctx); err != nil {
		t.Fatalf("seed stale receipt: %v", err)
	}
	if _, err := client.SyncReceipt.Create().
		SetFarmID("farm-1").
		SetClientID("fresh").
		SetStatus(syncreceipt.StatusAPPLIED).
		SetSeq(2).
		SetEntityType("paddock").
		SetEntityID("p-2").
		Save(ctx); err != nil {
		t.Fatalf("seed fresh receipt: %v", err)
	}

	w := NewReceiptCleanupWorker(client, 24*time.Hour)
	if err := w.Work(ctx, nil); err != nil {
		t.Fatalf("Work() error = %v", err)
	}

	remaining, err := client.SyncReceipt.Query().All(ctx)
	if err != nil {
		t.Fatalf("query receipts: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("remaining receipts = %d, want 1", len(remaining))
	}
	if remaining[0].ClientID != "fresh" {
		t.Fatalf("surviving receipt = %q, want %q", remaining[0].ClientID, "fresh")
	}
}

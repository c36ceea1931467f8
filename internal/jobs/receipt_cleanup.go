// Package jobs defines River Queue job types for async processing.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"farmdeck.io/farmdeck/ent"
	"farmdeck.io/farmdeck/ent/syncreceipt"
	"farmdeck.io/farmdeck/internal/pkg/logger"
)

// DefaultReceiptRetention is how long applied-action receipts are kept.
// A receipt only matters while its client might still retry the action,
// so 30 days comfortably covers any realistic offline stretch.
const DefaultReceiptRetention = 30 * 24 * time.Hour

// ReceiptCleanupArgs is a periodic maintenance job that removes expired
// sync receipts.
type ReceiptCleanupArgs struct{}

// Kind returns the job kind identifier for periodic receipt cleanup.
func (ReceiptCleanupArgs) Kind() string { return "receipt_cleanup" }

// InsertOpts ensures at most one cleanup job is enqueued within the same day.
func (ReceiptCleanupArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// ReceiptCleanupWorker deletes sync receipts older than the configured
// retention duration. Change log entries and tombstones are never
// cleaned up here: they are the sync history itself.
type ReceiptCleanupWorker struct {
	river.WorkerDefaults[ReceiptCleanupArgs]
	entClient *ent.Client
	retention time.Duration
}

// NewReceiptCleanupWorker creates a cleanup worker. Non-positive retention
// falls back to the 30-day default.
func NewReceiptCleanupWorker(entClient *ent.Client, retention time.Duration) *ReceiptCleanupWorker {
	if retention <= 0 {
		retention = DefaultReceiptRetention
	}
	return &ReceiptCleanupWorker{
		entClient: entClient,
		retention: retention,
	}
}

// Work removes expired receipt rows.
func (w *ReceiptCleanupWorker) Work(ctx context.Context, _ *river.Job[ReceiptCleanupArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("receipt cleanup worker is not initialized")
	}

	cutoff := time.Now().UTC().Add(-w.retention)
	deleted, err := w.entClient.SyncReceipt.Delete().
		Where(syncreceipt.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete expired sync receipts before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	logger.Info("sync receipt cleanup completed",
		zap.Int("deleted_rows", deleted),
		zap.String("cutoff", cutoff.Format(time.RFC3339)),
		zap.Duration("retention", w.retention),
	)
	return nil
}

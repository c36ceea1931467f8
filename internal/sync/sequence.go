package sync

import (
	"context"
	"fmt"

	"farmdeck.io/farmdeck/ent"
	"farmdeck.io/farmdeck/ent/farmsequence"
)

// EnsureSequence creates the farm's sequence counter row if it does not
// exist yet. It runs in its own transaction so a concurrent create that
// loses the unique-constraint race does not poison the caller's
// transaction. Call before entering any unit of work that allocates.
func EnsureSequence(ctx context.Context, client *ent.Client, farmID string) error {
	exists, err := client.FarmSequence.Query().
		Where(farmsequence.FarmIDEQ(farmID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check farm sequence: %w", err)
	}
	if exists {
		return nil
	}
	err = client.FarmSequence.Create().
		SetFarmID(farmID).
		SetValue(0).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("create farm sequence: %w", err)
	}
	return nil
}

// NextSeq allocates the next sequence value for the farm inside tx.
// The counter row is locked FOR UPDATE, so allocation is linearizable
// per farm: concurrent transactions serialize on the row, and a
// transaction that commits later always holds a higher value than any
// transaction that committed before it started. An aborted transaction
// releases its value with the rollback; the unique (farm_id, seq) index
// on the log tables guarantees no committed duplicate either way.
func NextSeq(ctx context.Context, tx *ent.Tx, farmID string) (int64, error) {
	row, err := tx.FarmSequence.Query().
		Where(farmsequence.FarmIDEQ(farmID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return 0, fmt.Errorf("lock farm sequence for %s: %w", farmID, err)
	}
	next := row.Value + 1
	if err := tx.FarmSequence.UpdateOne(row).SetValue(next).Exec(ctx); err != nil {
		return 0, fmt.Errorf("advance farm sequence for %s: %w", farmID, err)
	}
	return next, nil
}

// Watermark returns the highest committed sequence value visible to the
// caller's snapshot. Farms with no counter row yet are at watermark 0.
func Watermark(ctx context.Context, tx *ent.Tx, farmID string) (int64, error) {
	row, err := tx.FarmSequence.Query().
		Where(farmsequence.FarmIDEQ(farmID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read farm sequence for %s: %w", farmID, err)
	}
	return row.Value, nil
}

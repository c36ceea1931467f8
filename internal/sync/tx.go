package sync

import (
	"context"
	"fmt"

	"farmdeck.io/farmdeck/ent"
)

// WithTx executes fn within a transaction, committing on success and
// rolling back on error or panic. Every unit of work in the sync engine
// (entity mutation + log append + receipt write) goes through here.
func WithTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	return tx.Commit()
}

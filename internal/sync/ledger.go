package sync

import (
	"context"
	"fmt"

	"farmdeck.io/farmdeck/ent"
	"farmdeck.io/farmdeck/ent/syncreceipt"
)

// Ledger is the idempotency ledger: one write-once receipt per processed
// client action. A retried clientId replays the stored outcome instead
// of re-evaluating against newer state.
type Ledger struct{}

// Lookup returns the receipt for clientID, or nil when the action has
// not been processed.
func (Ledger) Lookup(ctx context.Context, tx *ent.Tx, clientID string) (*ent.SyncReceipt, error) {
	receipt, err := tx.SyncReceipt.Query().
		Where(syncreceipt.ClientIDEQ(clientID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup receipt %s: %w", clientID, err)
	}
	return receipt, nil
}

// Record writes the receipt for clientID. Write-once: if a receipt
// already exists in this transaction's view, the call is a no-op.
// Cross-transaction races are resolved by the unique client_id index:
// the losing insert fails its transaction and the caller re-reads the
// winner's outcome. seq is the assigned sequence for APPLIED receipts
// and the observed current sequence for conflict receipts, so replays
// reproduce the original response.
func (Ledger) Record(ctx context.Context, tx *ent.Tx, clientID, farmID string, status syncreceipt.Status, ref EntityRef, seq *int64) error {
	existing, err := tx.SyncReceipt.Query().
		Where(syncreceipt.ClientIDEQ(clientID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check receipt %s: %w", clientID, err)
	}
	if existing {
		return nil
	}
	create := tx.SyncReceipt.Create().
		SetClientID(clientID).
		SetFarmID(farmID).
		SetStatus(status).
		SetEntityType(ref.Type).
		SetEntityID(ref.ID)
	if seq != nil {
		create.SetSeq(*seq)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("record receipt %s: %w", clientID, err)
	}
	return nil
}

// LookupCommitted reads a receipt outside any transaction. Used after a
// unique-constraint failure to fetch the outcome a concurrent submission
// committed for the same clientId.
func (Ledger) LookupCommitted(ctx context.Context, client *ent.Client, clientID string) (*ent.SyncReceipt, error) {
	receipt, err := client.SyncReceipt.Query().
		Where(syncreceipt.ClientIDEQ(clientID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup committed receipt %s: %w", clientID, err)
	}
	return receipt, nil
}

package sync

import (
	"context"
	"encoding/json"
	"fmt"

	"farmdeck.io/farmdeck/ent"
	"farmdeck.io/farmdeck/ent/changelogentry"
	"farmdeck.io/farmdeck/ent/tombstone"
)

// EntityState is the derived current state of one entity key, computed
// from the two logs. A tombstone wins over every change entry with an
// equal-or-earlier seq.
type EntityState struct {
	Exists  bool
	Deleted bool
	// Seq is the entity's last change seq while active, or the
	// tombstone seq once deleted. Zero when the key was never written.
	Seq     int64
	Payload json.RawMessage
}

// CurrentState loads the entity's state within the caller's transaction.
// One abstraction instead of per-entity deleted_at filters: the conflict
// engine never touches entity tables for its existence and staleness
// checks.
func CurrentState(ctx context.Context, tx *ent.Tx, farmID string, ref EntityRef) (EntityState, error) {
	var state EntityState

	change, err := tx.ChangeLogEntry.Query().
		Where(
			changelogentry.FarmIDEQ(farmID),
			changelogentry.EntityTypeEQ(ref.Type),
			changelogentry.EntityIDEQ(ref.ID),
		).
		Order(ent.Desc(changelogentry.FieldSeq)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return state, fmt.Errorf("load latest change: %w", err)
	}

	grave, err := tx.Tombstone.Query().
		Where(
			tombstone.FarmIDEQ(farmID),
			tombstone.EntityTypeEQ(ref.Type),
			tombstone.EntityIDEQ(ref.ID),
		).
		Order(ent.Desc(tombstone.FieldSeq)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return state, fmt.Errorf("load latest tombstone: %w", err)
	}

	if change == nil && grave == nil {
		return state, nil
	}

	state.Exists = true
	if grave != nil && (change == nil || grave.Seq >= change.Seq) {
		state.Deleted = true
		state.Seq = grave.Seq
		return state, nil
	}

	state.Seq = change.Seq
	state.Payload = change.Payload
	return state, nil
}

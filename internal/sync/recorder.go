package sync

import (
	"context"
	"encoding/json"
	"fmt"

	"farmdeck.io/farmdeck/ent"
	"farmdeck.io/farmdeck/ent/changelogentry"
)

// Recorder appends committed mutations to the change and tombstone logs.
// Every write path (batch application, online CRUD, device ingestion)
// calls it inside the same transaction as the entity mutation it
// describes, so the log entry is visible exactly when the mutation is.
type Recorder struct{}

// NewRecorder creates a Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// RecordChange allocates the farm's next sequence and appends a change
// log entry for a CREATE or UPDATE. payload is the full entity snapshot
// after the mutation.
func (r *Recorder) RecordChange(ctx context.Context, tx *ent.Tx, farmID string, ref EntityRef, op Op, payload json.RawMessage) (int64, error) {
	if op != OpCreate && op != OpUpdate {
		return 0, fmt.Errorf("change log records CREATE or UPDATE, got %q", op)
	}
	seq, err := NextSeq(ctx, tx, farmID)
	if err != nil {
		return 0, err
	}
	err = tx.ChangeLogEntry.Create().
		SetFarmID(farmID).
		SetEntityType(ref.Type).
		SetEntityID(ref.ID).
		SetOp(changelogentry.Op(op)).
		SetPayload(payload).
		SetSeq(seq).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("append change log entry: %w", err)
	}
	return seq, nil
}

// RecordTombstone allocates the farm's next sequence and appends a
// tombstone marking the entity deleted. Called exactly once per logical
// deletion. The tombstone's seq is by construction greater than every
// change entry the deletion supersedes.
func (r *Recorder) RecordTombstone(ctx context.Context, tx *ent.Tx, farmID string, ref EntityRef) (int64, error) {
	seq, err := NextSeq(ctx, tx, farmID)
	if err != nil {
		return 0, err
	}
	err = tx.Tombstone.Create().
		SetFarmID(farmID).
		SetEntityType(ref.Type).
		SetEntityID(ref.ID).
		SetSeq(seq).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("append tombstone: %w", err)
	}
	return seq, nil
}

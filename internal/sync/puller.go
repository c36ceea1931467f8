package sync

import (
	"context"
	"database/sql"
	"fmt"

	"farmdeck.io/farmdeck/ent"
	"farmdeck.io/farmdeck/ent/changelogentry"
	"farmdeck.io/farmdeck/ent/tombstone"
)

// Puller serves since→now slices of the change and tombstone logs.
type Puller struct {
	client *ent.Client
}

// NewPuller creates a Puller.
func NewPuller(client *ent.Client) *Puller {
	return &Puller{client: client}
}

// Pull returns every committed record with seq > since visible at one
// snapshot. It reads under a repeatable-read transaction and reports the
// snapshot's sequence watermark as ServerTime: any record missing from
// this delta has seq > ServerTime, so a client advancing its cursor to
// ServerTime can never skip a record that commits mid-read. Changes and
// tombstones are each sorted by ascending seq and kept separate, because
// consumers must apply tombstones with priority over same-or-earlier
// changes for the same key.
func (p *Puller) Pull(ctx context.Context, farmID string, since int64) (*Delta, error) {
	tx, err := p.client.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("begin pull tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Watermark first. In-flight transactions hold sequences above the
	// committed counter value, so everything invisible to this snapshot
	// is strictly after ServerTime.
	watermark, err := Watermark(ctx, tx, farmID)
	if err != nil {
		return nil, err
	}

	changeRows, err := tx.ChangeLogEntry.Query().
		Where(
			changelogentry.FarmIDEQ(farmID),
			changelogentry.SeqGT(since),
		).
		Order(ent.Asc(changelogentry.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list changes since %d: %w", since, err)
	}

	graveRows, err := tx.Tombstone.Query().
		Where(
			tombstone.FarmIDEQ(farmID),
			tombstone.SeqGT(since),
		).
		Order(ent.Asc(tombstone.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tombstones since %d: %w", since, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit pull tx: %w", err)
	}

	delta := &Delta{
		ServerTime: watermark,
		Changes:    make([]ChangeRecord, 0, len(changeRows)),
		Tombstones: make([]TombstoneRecord, 0, len(graveRows)),
	}
	for _, row := range changeRows {
		delta.Changes = append(delta.Changes, ChangeRecord{
			EntityType: row.EntityType,
			EntityID:   row.EntityID,
			Op:         Op(row.Op),
			Payload:    row.Payload,
			Seq:        row.Seq,
			RecordedAt: row.RecordedAt,
		})
	}
	for _, row := range graveRows {
		delta.Tombstones = append(delta.Tombstones, TombstoneRecord{
			EntityType: row.EntityType,
			EntityID:   row.EntityID,
			Seq:        row.Seq,
			RecordedAt: row.RecordedAt,
		})
	}
	return delta, nil
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SyncReceipt holds the schema definition for the idempotency ledger.
// One row per processed client action, keyed by the client-generated
// idempotency key. Write-once: a retried action replays the stored
// outcome instead of re-executing. Rows are reaped by the retention job
// after the configured window (which must outlive client retry windows).
type SyncReceipt struct {
	ent.Schema
}

// Fields of the SyncReceipt.
func (SyncReceipt) Fields() []ent.Field {
	return []ent.Field{
		field.String("client_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("farm_id").
			NotEmpty().
			Immutable(),
		field.Enum("status").
			Values("APPLIED", "STALE", "DELETED", "NOT_FOUND", "ALREADY_EXISTS").
			Immutable(),
		field.Int64("seq").
			Optional().
			Nillable().
			Immutable(), // assigned seq (APPLIED) or observed current seq (conflicts)
		field.String("entity_type").
			Immutable(),
		field.String("entity_id").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SyncReceipt.
func (SyncReceipt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("farm_id"),
		index.Fields("created_at"),
	}
}

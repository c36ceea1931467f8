package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChangeLogEntry holds the schema definition for the change log, the
// append-only record of every committed entity mutation. Rows are
// IMMUTABLE once written; the (farm_id, seq) pair is the total order
// delta pulls are served from.
type ChangeLogEntry struct {
	ent.Schema
}

// Fields of the ChangeLogEntry.
func (ChangeLogEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("farm_id").
			NotEmpty().
			Immutable(),
		field.String("entity_type").
			NotEmpty().
			Immutable(),
		field.String("entity_id").
			NotEmpty().
			Immutable(),
		field.Enum("op").
			Values("CREATE", "UPDATE").
			Immutable(),
		field.Bytes("payload").
			Immutable(), // full entity snapshot, JSON
		field.Int64("seq").
			Positive().
			Immutable(),
		field.Time("recorded_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ChangeLogEntry.
func (ChangeLogEntry) Indexes() []ent.Index {
	return []ent.Index{
		// Storage-enforced uniqueness backs the allocator's linearizability.
		index.Fields("farm_id", "seq").Unique(),
		index.Fields("farm_id", "entity_type", "entity_id", "seq"),
	}
}

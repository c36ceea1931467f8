package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Tombstone holds the schema definition for deletion markers. A tombstone
// supersedes every change log entry for the same (entity_type, entity_id)
// with an equal-or-earlier seq. Append-only, immutable.
type Tombstone struct {
	ent.Schema
}

// Fields of the Tombstone.
func (Tombstone) Fields() []ent.Field {
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
		field.Int64("seq").
			Positive().
			Immutable(),
		field.Time("recorded_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Tombstone.
func (Tombstone) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("farm_id", "seq").Unique(),
		index.Fields("farm_id", "entity_type", "entity_id", "seq"),
	}
}

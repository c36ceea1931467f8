package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// FarmSequence holds the per-farm sequence counter. The allocator locks
// this row (SELECT ... FOR UPDATE) inside the mutating transaction, so
// allocation is linearizable per farm: a transaction that commits later
// never holds an earlier seq than one that committed before it started.
type FarmSequence struct {
	ent.Schema
}

// Fields of the FarmSequence.
func (FarmSequence) Fields() []ent.Field {
	return []ent.Field{
		field.String("farm_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.Int64("value").
			Default(0).
			NonNegative(),
	}
}

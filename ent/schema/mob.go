package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Mob holds the schema definition for the Mob entity (a managed group of
// stock, e.g. a flock grazing one paddock).
type Mob struct {
	ent.Schema
}

// Mixin of the Mob.
func (Mob) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		FarmMixin{},
	}
}

// Fields of the Mob.
func (Mob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Int("count").
			Default(0).
			NonNegative(),
		field.Float("avg_weight").
			Default(0),
		field.String("paddock_id").
			Optional(),
	}
}

// Indexes of the Mob.
func (Mob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("farm_id", "name"),
		index.Fields("paddock_id"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Movement holds the schema definition for the Movement entity: a mob
// moving from one paddock to another.
type Movement struct {
	ent.Schema
}

// Mixin of the Movement.
func (Movement) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		FarmMixin{},
	}
}

// Fields of the Movement.
func (Movement) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("mob_id").
			NotEmpty(),
		field.String("from_paddock_id").
			Optional(),
		field.String("to_paddock_id").
			NotEmpty(),
		field.Time("occurred_at").
			Default(time.Now),
	}
}

// Indexes of the Movement.
func (Movement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("farm_id", "mob_id"),
	}
}

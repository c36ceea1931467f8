package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Farm holds the schema definition for the Farm entity. Every syncable
// entity, log entry, and receipt is scoped to one farm.
type Farm struct {
	ent.Schema
}

// Mixin of the Farm.
func (Farm) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Farm.
func (Farm) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
	}
}

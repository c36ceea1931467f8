// Package schema contains Ent schema definitions for Farmdeck.
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

// TimeMixin adds created_at and updated_at fields to schemas.
type TimeMixin struct {
	mixin.Schema
}

// Fields of the TimeMixin.
func (TimeMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// FarmMixin scopes an entity to a farm and carries the soft-delete marker.
// Every syncable entity uses it: farm_id partitions the change log, and
// deleted_at mirrors the tombstone written when the entity is removed.
type FarmMixin struct {
	mixin.Schema
}

// Fields of the FarmMixin.
func (FarmMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("farm_id").
			NotEmpty().
			Immutable(),
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Sensor holds the schema definition for the Sensor entity (water tanks,
// gates, weather stations). Device intake updates last_value/last_seen
// through the same change-recorded path as every other write.
type Sensor struct {
	ent.Schema
}

// Mixin of the Sensor.
func (Sensor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		FarmMixin{},
	}
}

// Fields of the Sensor.
func (Sensor) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("type").
			NotEmpty(), // normalized upstream by the ingestion pipeline
		field.String("paddock_id").
			Optional(),
		field.JSON("last_value", map[string]interface{}{}).
			Optional(),
		field.Time("last_seen").
			Optional().
			Nillable(),
	}
}

// Indexes of the Sensor.
func (Sensor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("farm_id", "name"),
	}
}

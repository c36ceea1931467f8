package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Paddock holds the schema definition for the Paddock entity.
type Paddock struct {
	ent.Schema
}

// Mixin of the Paddock.
func (Paddock) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		FarmMixin{},
	}
}

// Fields of the Paddock.
func (Paddock) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Float("area_ha").
			Default(0),
		field.Text("polygon_geojson").
			Default(""), // boundary polygon, GeoJSON text
		field.String("crop_type").
			Optional(),
		field.String("crop_color").
			Optional().
			MaxLen(16),
	}
}

// Indexes of the Paddock.
func (Paddock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("farm_id", "name"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PaddockRecord holds the schema definition for per-paddock field
// operations: spraying, sowing, fertilising, cutting, harvest and
// observations. Single table with a kind discriminator.
type PaddockRecord struct {
	ent.Schema
}

// Mixin of the PaddockRecord.
func (PaddockRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		FarmMixin{},
	}
}

// Fields of the PaddockRecord.
func (PaddockRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("paddock_id").
			NotEmpty(),
		field.Enum("kind").
			Values("SPRAY", "SOWING", "FERTILISER", "CUT", "HARVEST", "OBSERVATION"),
		field.Time("date").
			Default(time.Now),
		field.String("product").
			Optional(), // chemical / seed / fertiliser product
		field.String("rate").
			Optional(),
		field.String("amount").
			Optional(), // e.g. "120 bales", "3.2 t"
		field.Text("notes").
			Optional(),
	}
}

// Indexes of the PaddockRecord.
func (PaddockRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("farm_id", "paddock_id", "kind"),
	}
}

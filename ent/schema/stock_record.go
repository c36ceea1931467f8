package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StockRecord holds the schema definition for per-mob husbandry records:
// worming, footbaths, joining, marking, weaning, fly treatment and foot
// paring. One table with a kind discriminator instead of a table per
// record type; the optional columns cover the union of their fields.
type StockRecord struct {
	ent.Schema
}

// Mixin of the StockRecord.
func (StockRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		FarmMixin{},
	}
}

// Fields of the StockRecord.
func (StockRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("mob_id").
			NotEmpty(),
		field.Enum("kind").
			Values("WORMING", "FOOTBATH", "JOINING", "MARKING", "WEANING", "FLY_TREATMENT", "FOOT_PARING"),
		field.Time("date").
			Default(time.Now),
		field.String("product").
			Optional(), // drug / solution / chemical, per kind
		field.String("rate").
			Optional(),
		field.Int("count").
			Optional(), // worm count, weaned count
		field.Text("notes").
			Optional(),
	}
}

// Indexes of the StockRecord.
func (StockRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("farm_id", "mob_id", "kind"),
	}
}

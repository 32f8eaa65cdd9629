package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Mastery holds the schema definition for the Mastery entity: one row per
// (student, subcategory, type) tracking EWMA accuracy per difficulty band.
// A row with an empty type_of_question aggregates at subcategory level.
type Mastery struct {
	ent.Schema
}

// Fields of the Mastery.
func (Mastery) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("mastery_id").
			Unique().
			Immutable(),
		field.String("student_id").
			Immutable(),
		field.String("subcategory").
			Immutable(),
		field.String("type_of_question").
			Default("").
			Immutable().
			Comment("Empty string marks the subcategory-level row"),
		field.Float("acc_easy").
			Default(0),
		field.Float("acc_medium").
			Default(0),
		field.Float("acc_hard").
			Default(0),
		field.Float("efficiency_score").
			Default(0),
		field.Int("exposure_count").
			Default(0),
		field.Float("mastery_pct").
			Default(0).
			Comment("Overall mastery in [0,1], exposure-scaled"),
		field.Time("last_activity_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Mastery.
func (Mastery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "subcategory", "type_of_question").
			Unique(),
		index.Fields("student_id"),
		index.Fields("last_activity_at"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudentCoverage holds the schema definition for the StudentCoverage
// entity: which (subcategory, type) pairs a student has been served, and
// when. Rows are upserted when a session is marked served.
type StudentCoverage struct {
	ent.Schema
}

// Fields of the StudentCoverage.
func (StudentCoverage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("coverage_id").
			Unique().
			Immutable(),
		field.String("student_id").
			Immutable(),
		field.String("subcategory").
			Immutable(),
		field.String("type_of_question").
			Immutable(),
		field.Int("sessions_seen").
			Default(0).
			Comment("Distinct sessions that served this pair"),
		field.Int("first_seen_session").
			Comment("sess_seq of the first session that served this pair, never updated"),
		field.Int("last_seen_session"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the StudentCoverage.
func (StudentCoverage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "subcategory", "type_of_question").
			Unique(),
		index.Fields("student_id"),
	}
}

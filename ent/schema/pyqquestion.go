package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PYQQuestion holds the schema definition for historical past-year paper
// questions. The enrichment pipeline reads them as frequency-scoring
// reference material; planning never serves them directly.
type PYQQuestion struct {
	ent.Schema
}

// Fields of the PYQQuestion.
func (PYQQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("pyq_id").
			Unique().
			Immutable(),
		field.Text("stem"),
		field.String("category"),
		field.String("subcategory"),
		field.String("type_of_question"),
		field.Enum("difficulty_band").
			Values("Easy", "Medium", "Hard").
			Optional(),
		field.String("problem_structure").
			Optional(),
		field.JSON("concept_keywords", []string{}).
			Optional(),
		field.Int("year").
			Optional().
			Comment("Exam year the question appeared in"),
		field.String("slot").
			Optional().
			Nillable().
			Comment("Paper slot within the year, when known"),
		field.Bool("is_active").
			Default(true),
		field.Bool("quality_verified").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the PYQQuestion.
func (PYQQuestion) Indexes() []ent.Index {
	return []ent.Index{
		// Qualifying-pool lookups are always per (subcategory, type)
		index.Fields("subcategory", "type_of_question"),
		index.Fields("category"),
	}
}

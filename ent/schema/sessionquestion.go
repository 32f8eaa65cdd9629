package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionQuestion holds the schema definition for one pack slot: a question
// planned at a fixed position inside a study session.
type SessionQuestion struct {
	ent.Schema
}

// Fields of the SessionQuestion.
func (SessionQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entry_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("question_id").
			Immutable(),
		field.Int("position").
			Immutable().
			Comment("1-based presentation order within the pack"),
		field.Enum("planned_band").
			Values("Easy", "Medium", "Hard").
			Immutable(),
		field.String("subcategory").
			Immutable().
			Comment("Snapshot at planning time, used for coverage upserts"),
		field.String("type_of_question").
			Immutable(),
		field.Bool("coverage_new").
			Default(false).
			Immutable().
			Comment("True if the (subcategory, type) pair was unseen when planned"),
	}
}

// Edges of the SessionQuestion.
func (SessionQuestion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", StudySession.Type).
			Ref("pack_entries").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.From("question", Question.Type).
			Ref("pack_entries").
			Field("question_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SessionQuestion.
func (SessionQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "position").
			Unique(),
		// A question appears at most once per pack
		index.Fields("session_id", "question_id").
			Unique(),
		index.Fields("question_id"),
	}
}

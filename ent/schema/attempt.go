package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt holds the schema definition for the Attempt entity.
// Attempts are append-only: one row per answered question, never updated.
type Attempt struct {
	ent.Schema
}

// Fields of the Attempt.
func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("attempt_id").
			Unique().
			Immutable(),
		field.String("student_id").
			Immutable(),
		field.String("question_id").
			Immutable(),
		field.String("session_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Null for practice outside a planned session"),
		field.Bool("correct").
			Immutable(),
		field.Float("time_taken_seconds").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Attempt.
func (Attempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("question", Question.Type).
			Ref("attempts").
			Field("question_id").
			Unique().
			Required().
			Immutable(),
		edge.From("session", StudySession.Type).
			Ref("attempts").
			Field("session_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the Attempt.
func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "created_at"),
		index.Fields("student_id", "question_id"),
		index.Fields("question_id"),
	}
}

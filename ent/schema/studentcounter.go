package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// StudentCounter holds the schema definition for the StudentCounter entity:
// the per-student sequence counter row locked during planning so concurrent
// plan requests cannot mint duplicate or gapped sess_seq values.
type StudentCounter struct {
	ent.Schema
}

// Fields of the StudentCounter.
func (StudentCounter) Fields() []ent.Field {
	return []ent.Field{
		// The student id is the row id: exactly one counter per student.
		field.String("id").
			StorageKey("student_id").
			Unique().
			Immutable(),
		field.Int("next_seq").
			Default(1).
			Comment("Sequence the next planned session will receive"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/prepforge/quanta/pkg/models"
)

// StudySession holds the schema definition for the StudySession entity:
// one planned 12-question pack and its lifecycle.
type StudySession struct {
	ent.Schema
}

// Fields of the StudySession.
func (StudySession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("student_id").
			Immutable(),
		field.Int("sess_seq").
			Immutable().
			Comment("Dense per-student sequence assigned at planning time"),
		field.Enum("status").
			Values("planned", "served", "completed").
			Default("planned"),
		field.Enum("phase").
			Values("A", "B", "C").
			Comment("Learning phase the plan was computed under"),
		field.Enum("session_type").
			Values("adaptive", "cold_start", "simple_random").
			Default("adaptive").
			Comment("simple_random marks fallback packs"),
		field.String("plan_key").
			Unique().
			Immutable().
			Comment("Idempotency key: student:last_session:next_session"),
		field.JSON("constraint_report", &models.ConstraintReport{}).
			Optional().
			Comment("Planner telemetry for this pack"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("served_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the StudySession.
func (StudySession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("pack_entries", SessionQuestion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("attempts", Attempt.Type),
	}
}

// Indexes of the StudySession.
func (StudySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "sess_seq").
			Unique(),
		index.Fields("student_id", "status"),
		index.Fields("status", "created_at"),
	}
}

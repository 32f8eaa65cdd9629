package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EnrichmentAudit holds the schema definition for the EnrichmentAudit
// entity: one row per LLM round-trip made while enriching a question.
// This is the admin-facing record of what each stage asked and got back.
type EnrichmentAudit struct {
	ent.Schema
}

// Fields of the EnrichmentAudit.
func (EnrichmentAudit) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("question_id").
			Immutable(),
		field.String("stage").
			Immutable().
			Comment("Pipeline stage that issued the call, e.g. 'analysis', 'answer_match'"),
		field.String("provider").
			Comment("Provider that served the call, primary or fallback"),
		field.String("model_name"),
		field.Int("attempt").
			Default(1).
			Comment("1-based retry attempt within the stage"),
		field.Bool("rate_limited").
			Default(false).
			Comment("True when this call tripped the rate-limit detector"),
		field.Int("input_tokens").
			Optional().
			Nillable(),
		field.Int("output_tokens").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("null = success, not-null = failed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EnrichmentAudit.
func (EnrichmentAudit) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("question", Question.Type).
			Ref("audits").
			Field("question_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EnrichmentAudit.
func (EnrichmentAudit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id", "created_at"),
		index.Fields("stage"),
		index.Fields("rate_limited"),
	}
}

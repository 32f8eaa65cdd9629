package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question holds the schema definition for the Question entity.
// Content fields are owned by admin uploads; classification fields are
// owned by the enrichment pipeline and never touch admin content.
type Question struct {
	ent.Schema
}

// Fields of the Question.
func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("question_id").
			Unique().
			Immutable(),

		// Admin-owned content (never written by the pipeline)
		field.Text("stem").
			Comment("Question text as uploaded"),
		field.Text("admin_answer").
			Comment("Authoritative answer provided at upload"),
		field.Text("admin_solution").
			Optional().
			Comment("Worked solution provided at upload"),
		field.Text("principle_to_remember").
			Optional().
			Nillable(),
		field.String("image_url").
			Optional().
			Nillable(),

		// Pipeline-derived classification
		field.Text("right_answer").
			Optional().
			Comment("Answer as restated by the pipeline, checked against admin_answer"),
		field.String("category").
			Optional(),
		field.String("subcategory").
			Optional(),
		field.String("type_of_question").
			Optional(),
		field.Enum("difficulty_band").
			Values("Easy", "Medium", "Hard").
			Optional(),
		field.Float("difficulty_score").
			Optional().
			Comment("1.0-5.0, kept consistent with difficulty_band"),
		field.Float("pyq_frequency_score").
			Optional().
			Nillable().
			Comment("Null until frequency scoring has run"),
		field.JSON("core_concepts", []string{}).
			Optional(),
		field.String("solution_method").
			Optional(),
		field.JSON("concept_difficulty", map[string][]string{}).
			Optional().
			Comment("Keys: prerequisites, cognitive_barriers, mastery_indicators"),
		field.JSON("operations_required", []string{}).
			Optional(),
		field.String("problem_structure").
			Optional(),
		field.JSON("concept_keywords", []string{}).
			Optional(),

		// Gate outcomes
		field.Bool("is_active").
			Default(false).
			Comment("Only active questions are eligible for planning"),
		field.Bool("quality_verified").
			Default(false),
		field.Enum("concept_extraction_status").
			Values("pending", "completed").
			Default("pending"),
		field.JSON("failed_checks", []string{}).
			Optional().
			Comment("Criteria that failed the quality gate, for reprocessing"),

		// Enrichment work-queue state
		field.Enum("enrichment_status").
			Values("pending", "enriching", "completed", "failed").
			Default("pending"),
		field.String("enrichment_error").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_enrichment_at").
			Optional().
			Nillable().
			Comment("Worker heartbeat, used for orphan detection"),
		field.Time("enriched_at").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Question.
func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("attempts", Attempt.Type),
		edge.To("pack_entries", SessionQuestion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("audits", EnrichmentAudit.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Question.
func (Question) Indexes() []ent.Index {
	return []ent.Index{
		// Claim order for the enrichment worker pool
		index.Fields("enrichment_status", "created_at"),
		index.Fields("enrichment_status", "last_enrichment_at"),

		// Candidate pool scans
		index.Fields("is_active", "difficulty_band"),
		index.Fields("is_active", "subcategory", "type_of_question"),
		index.Fields("category"),
	}
}

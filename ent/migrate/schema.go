// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_taken_seconds", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "question_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attempts_questions_attempts",
				Columns:    []*schema.Column{AttemptsColumns[5]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "attempts_study_sessions_attempts",
				Columns:    []*schema.Column{AttemptsColumns[6]},
				RefColumns: []*schema.Column{StudySessionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_student_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1], AttemptsColumns[4]},
			},
			{
				Name:    "attempt_student_id_question_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1], AttemptsColumns[5]},
			},
			{
				Name:    "attempt_question_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[5]},
			},
		},
	}
	// EnrichmentAuditsColumns holds the columns for the "enrichment_audits" table.
	EnrichmentAuditsColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "stage", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "model_name", Type: field.TypeString},
		{Name: "attempt", Type: field.TypeInt, Default: 1},
		{Name: "rate_limited", Type: field.TypeBool, Default: false},
		{Name: "input_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "output_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "question_id", Type: field.TypeString},
	}
	// EnrichmentAuditsTable holds the schema information for the "enrichment_audits" table.
	EnrichmentAuditsTable = &schema.Table{
		Name:       "enrichment_audits",
		Columns:    EnrichmentAuditsColumns,
		PrimaryKey: []*schema.Column{EnrichmentAuditsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "enrichment_audits_questions_audits",
				Columns:    []*schema.Column{EnrichmentAuditsColumns[11]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "enrichmentaudit_question_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EnrichmentAuditsColumns[11], EnrichmentAuditsColumns[10]},
			},
			{
				Name:    "enrichmentaudit_stage",
				Unique:  false,
				Columns: []*schema.Column{EnrichmentAuditsColumns[1]},
			},
			{
				Name:    "enrichmentaudit_rate_limited",
				Unique:  false,
				Columns: []*schema.Column{EnrichmentAuditsColumns[5]},
			},
		},
	}
	// MasteriesColumns holds the columns for the "masteries" table.
	MasteriesColumns = []*schema.Column{
		{Name: "mastery_id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "subcategory", Type: field.TypeString},
		{Name: "type_of_question", Type: field.TypeString, Default: ""},
		{Name: "acc_easy", Type: field.TypeFloat64, Default: 0},
		{Name: "acc_medium", Type: field.TypeFloat64, Default: 0},
		{Name: "acc_hard", Type: field.TypeFloat64, Default: 0},
		{Name: "efficiency_score", Type: field.TypeFloat64, Default: 0},
		{Name: "exposure_count", Type: field.TypeInt, Default: 0},
		{Name: "mastery_pct", Type: field.TypeFloat64, Default: 0},
		{Name: "last_activity_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MasteriesTable holds the schema information for the "masteries" table.
	MasteriesTable = &schema.Table{
		Name:       "masteries",
		Columns:    MasteriesColumns,
		PrimaryKey: []*schema.Column{MasteriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mastery_student_id_subcategory_type_of_question",
				Unique:  true,
				Columns: []*schema.Column{MasteriesColumns[1], MasteriesColumns[2], MasteriesColumns[3]},
			},
			{
				Name:    "mastery_student_id",
				Unique:  false,
				Columns: []*schema.Column{MasteriesColumns[1]},
			},
			{
				Name:    "mastery_last_activity_at",
				Unique:  false,
				Columns: []*schema.Column{MasteriesColumns[10]},
			},
		},
	}
	// PyqQuestionsColumns holds the columns for the "pyq_questions" table.
	PyqQuestionsColumns = []*schema.Column{
		{Name: "pyq_id", Type: field.TypeString, Unique: true},
		{Name: "stem", Type: field.TypeString, Size: 2147483647},
		{Name: "category", Type: field.TypeString},
		{Name: "subcategory", Type: field.TypeString},
		{Name: "type_of_question", Type: field.TypeString},
		{Name: "difficulty_band", Type: field.TypeEnum, Nullable: true, Enums: []string{"Easy", "Medium", "Hard"}},
		{Name: "problem_structure", Type: field.TypeString, Nullable: true},
		{Name: "concept_keywords", Type: field.TypeJSON, Nullable: true},
		{Name: "year", Type: field.TypeInt, Nullable: true},
		{Name: "slot", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "quality_verified", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PyqQuestionsTable holds the schema information for the "pyq_questions" table.
	PyqQuestionsTable = &schema.Table{
		Name:       "pyq_questions",
		Columns:    PyqQuestionsColumns,
		PrimaryKey: []*schema.Column{PyqQuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pyqquestion_subcategory_type_of_question",
				Unique:  false,
				Columns: []*schema.Column{PyqQuestionsColumns[3], PyqQuestionsColumns[4]},
			},
			{
				Name:    "pyqquestion_category",
				Unique:  false,
				Columns: []*schema.Column{PyqQuestionsColumns[2]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "stem", Type: field.TypeString, Size: 2147483647},
		{Name: "admin_answer", Type: field.TypeString, Size: 2147483647},
		{Name: "admin_solution", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "principle_to_remember", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "image_url", Type: field.TypeString, Nullable: true},
		{Name: "right_answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "subcategory", Type: field.TypeString, Nullable: true},
		{Name: "type_of_question", Type: field.TypeString, Nullable: true},
		{Name: "difficulty_band", Type: field.TypeEnum, Nullable: true, Enums: []string{"Easy", "Medium", "Hard"}},
		{Name: "difficulty_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "pyq_frequency_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "core_concepts", Type: field.TypeJSON, Nullable: true},
		{Name: "solution_method", Type: field.TypeString, Nullable: true},
		{Name: "concept_difficulty", Type: field.TypeJSON, Nullable: true},
		{Name: "operations_required", Type: field.TypeJSON, Nullable: true},
		{Name: "problem_structure", Type: field.TypeString, Nullable: true},
		{Name: "concept_keywords", Type: field.TypeJSON, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: false},
		{Name: "quality_verified", Type: field.TypeBool, Default: false},
		{Name: "concept_extraction_status", Type: field.TypeEnum, Enums: []string{"pending", "completed"}, Default: "pending"},
		{Name: "failed_checks", Type: field.TypeJSON, Nullable: true},
		{Name: "enrichment_status", Type: field.TypeEnum, Enums: []string{"pending", "enriching", "completed", "failed"}, Default: "pending"},
		{Name: "enrichment_error", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_enrichment_at", Type: field.TypeTime, Nullable: true},
		{Name: "enriched_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_enrichment_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[23], QuestionsColumns[28]},
			},
			{
				Name:    "question_enrichment_status_last_enrichment_at",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[23], QuestionsColumns[26]},
			},
			{
				Name:    "question_is_active_difficulty_band",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[19], QuestionsColumns[10]},
			},
			{
				Name:    "question_is_active_subcategory_type_of_question",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[19], QuestionsColumns[8], QuestionsColumns[9]},
			},
			{
				Name:    "question_category",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[7]},
			},
		},
	}
	// SessionQuestionsColumns holds the columns for the "session_questions" table.
	SessionQuestionsColumns = []*schema.Column{
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "planned_band", Type: field.TypeEnum, Enums: []string{"Easy", "Medium", "Hard"}},
		{Name: "subcategory", Type: field.TypeString},
		{Name: "type_of_question", Type: field.TypeString},
		{Name: "coverage_new", Type: field.TypeBool, Default: false},
		{Name: "question_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
	}
	// SessionQuestionsTable holds the schema information for the "session_questions" table.
	SessionQuestionsTable = &schema.Table{
		Name:       "session_questions",
		Columns:    SessionQuestionsColumns,
		PrimaryKey: []*schema.Column{SessionQuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_questions_questions_pack_entries",
				Columns:    []*schema.Column{SessionQuestionsColumns[6]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "session_questions_study_sessions_pack_entries",
				Columns:    []*schema.Column{SessionQuestionsColumns[7]},
				RefColumns: []*schema.Column{StudySessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sessionquestion_session_id_position",
				Unique:  true,
				Columns: []*schema.Column{SessionQuestionsColumns[7], SessionQuestionsColumns[1]},
			},
			{
				Name:    "sessionquestion_session_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{SessionQuestionsColumns[7], SessionQuestionsColumns[6]},
			},
			{
				Name:    "sessionquestion_question_id",
				Unique:  false,
				Columns: []*schema.Column{SessionQuestionsColumns[6]},
			},
		},
	}
	// StudentCountersColumns holds the columns for the "student_counters" table.
	StudentCountersColumns = []*schema.Column{
		{Name: "student_id", Type: field.TypeString, Unique: true},
		{Name: "next_seq", Type: field.TypeInt, Default: 1},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StudentCountersTable holds the schema information for the "student_counters" table.
	StudentCountersTable = &schema.Table{
		Name:       "student_counters",
		Columns:    StudentCountersColumns,
		PrimaryKey: []*schema.Column{StudentCountersColumns[0]},
	}
	// StudentCoveragesColumns holds the columns for the "student_coverages" table.
	StudentCoveragesColumns = []*schema.Column{
		{Name: "coverage_id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "subcategory", Type: field.TypeString},
		{Name: "type_of_question", Type: field.TypeString},
		{Name: "sessions_seen", Type: field.TypeInt, Default: 0},
		{Name: "first_seen_session", Type: field.TypeInt},
		{Name: "last_seen_session", Type: field.TypeInt},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StudentCoveragesTable holds the schema information for the "student_coverages" table.
	StudentCoveragesTable = &schema.Table{
		Name:       "student_coverages",
		Columns:    StudentCoveragesColumns,
		PrimaryKey: []*schema.Column{StudentCoveragesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studentcoverage_student_id_subcategory_type_of_question",
				Unique:  true,
				Columns: []*schema.Column{StudentCoveragesColumns[1], StudentCoveragesColumns[2], StudentCoveragesColumns[3]},
			},
			{
				Name:    "studentcoverage_student_id",
				Unique:  false,
				Columns: []*schema.Column{StudentCoveragesColumns[1]},
			},
		},
	}
	// StudySessionsColumns holds the columns for the "study_sessions" table.
	StudySessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "sess_seq", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"planned", "served", "completed"}, Default: "planned"},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"A", "B", "C"}},
		{Name: "session_type", Type: field.TypeEnum, Enums: []string{"adaptive", "cold_start", "simple_random"}, Default: "adaptive"},
		{Name: "plan_key", Type: field.TypeString, Unique: true},
		{Name: "constraint_report", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "served_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// StudySessionsTable holds the schema information for the "study_sessions" table.
	StudySessionsTable = &schema.Table{
		Name:       "study_sessions",
		Columns:    StudySessionsColumns,
		PrimaryKey: []*schema.Column{StudySessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studysession_student_id_sess_seq",
				Unique:  true,
				Columns: []*schema.Column{StudySessionsColumns[1], StudySessionsColumns[2]},
			},
			{
				Name:    "studysession_student_id_status",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[1], StudySessionsColumns[3]},
			},
			{
				Name:    "studysession_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[3], StudySessionsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		EnrichmentAuditsTable,
		MasteriesTable,
		PyqQuestionsTable,
		QuestionsTable,
		SessionQuestionsTable,
		StudentCountersTable,
		StudentCoveragesTable,
		StudySessionsTable,
	}
)

func init() {
	AttemptsTable.ForeignKeys[0].RefTable = QuestionsTable
	AttemptsTable.ForeignKeys[1].RefTable = StudySessionsTable
	EnrichmentAuditsTable.ForeignKeys[0].RefTable = QuestionsTable
	SessionQuestionsTable.ForeignKeys[0].RefTable = QuestionsTable
	SessionQuestionsTable.ForeignKeys[1].RefTable = StudySessionsTable
}

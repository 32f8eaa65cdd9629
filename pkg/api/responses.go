package api

import (
	"time"

	"github.com/prepforge/quanta/ent"
	"github.com/prepforge/quanta/pkg/database"
	"github.com/prepforge/quanta/pkg/llm"
	"github.com/prepforge/quanta/pkg/models"
	"github.com/prepforge/quanta/pkg/queue"
)

// SessionResponse is returned by GET /api/v1/sessions/:id and the
// lifecycle transition endpoints.
type SessionResponse struct {
	SessionID        string                   `json:"session_id"`
	StudentID        string                   `json:"student_id"`
	SessSeq          int                      `json:"sess_seq"`
	Status           string                   `json:"status"`
	Phase            string                   `json:"phase"`
	SessionType      string                   `json:"session_type"`
	ConstraintReport *models.ConstraintReport `json:"constraint_report,omitempty"`
	CreatedAt        time.Time                `json:"created_at"`
	ServedAt         *time.Time               `json:"served_at,omitempty"`
	CompletedAt      *time.Time               `json:"completed_at,omitempty"`
}

func sessionResponse(s *ent.StudySession) *SessionResponse {
	return &SessionResponse{
		SessionID:        s.ID,
		StudentID:        s.StudentID,
		SessSeq:          s.SessSeq,
		Status:           string(s.Status),
		Phase:            string(s.Phase),
		SessionType:      string(s.SessionType),
		ConstraintReport: s.ConstraintReport,
		CreatedAt:        s.CreatedAt,
		ServedAt:         s.ServedAt,
		CompletedAt:      s.CompletedAt,
	}
}

// QuestionResponse is the admin view of a question, including the derived
// classification and the enrichment work-queue state.
type QuestionResponse struct {
	QuestionID          string              `json:"question_id"`
	Stem                string              `json:"stem"`
	AdminAnswer         string              `json:"admin_answer"`
	AdminSolution       string              `json:"admin_solution,omitempty"`
	PrincipleToRemember string              `json:"principle_to_remember,omitempty"`
	ImageURL            string              `json:"image_url,omitempty"`
	RightAnswer         string              `json:"right_answer,omitempty"`
	Category            string              `json:"category,omitempty"`
	Subcategory         string              `json:"subcategory,omitempty"`
	TypeOfQuestion      string              `json:"type_of_question,omitempty"`
	DifficultyBand      string              `json:"difficulty_band,omitempty"`
	DifficultyScore     float64             `json:"difficulty_score,omitempty"`
	PYQFrequencyScore   *float64            `json:"pyq_frequency_score,omitempty"`
	CoreConcepts        []string            `json:"core_concepts,omitempty"`
	SolutionMethod      string              `json:"solution_method,omitempty"`
	ConceptDifficulty   map[string][]string `json:"concept_difficulty,omitempty"`
	OperationsRequired  []string            `json:"operations_required,omitempty"`
	ProblemStructure    string              `json:"problem_structure,omitempty"`
	ConceptKeywords     []string            `json:"concept_keywords,omitempty"`
	IsActive            bool                `json:"is_active"`
	QualityVerified     bool                `json:"quality_verified"`
	ConceptExtraction   string              `json:"concept_extraction_status"`
	FailedChecks        []string            `json:"failed_checks,omitempty"`
	EnrichmentStatus    string              `json:"enrichment_status"`
	EnrichmentError     string              `json:"enrichment_error,omitempty"`
	EnrichedAt          *time.Time          `json:"enriched_at,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
}

func questionResponse(q *ent.Question) *QuestionResponse {
	resp := &QuestionResponse{
		QuestionID:         q.ID,
		Stem:               q.Stem,
		AdminAnswer:        q.AdminAnswer,
		AdminSolution:      q.AdminSolution,
		RightAnswer:        q.RightAnswer,
		Category:           q.Category,
		Subcategory:        q.Subcategory,
		TypeOfQuestion:     q.TypeOfQuestion,
		DifficultyBand:     string(q.DifficultyBand),
		DifficultyScore:    q.DifficultyScore,
		PYQFrequencyScore:  q.PyqFrequencyScore,
		CoreConcepts:       q.CoreConcepts,
		SolutionMethod:     q.SolutionMethod,
		ConceptDifficulty:  q.ConceptDifficulty,
		OperationsRequired: q.OperationsRequired,
		ProblemStructure:   q.ProblemStructure,
		ConceptKeywords:    q.ConceptKeywords,
		IsActive:           q.IsActive,
		QualityVerified:    q.QualityVerified,
		ConceptExtraction:  string(q.ConceptExtractionStatus),
		FailedChecks:       q.FailedChecks,
		EnrichmentStatus:   string(q.EnrichmentStatus),
		EnrichedAt:         q.EnrichedAt,
		CreatedAt:          q.CreatedAt,
	}
	if q.PrincipleToRemember != nil {
		resp.PrincipleToRemember = *q.PrincipleToRemember
	}
	if q.ImageURL != nil {
		resp.ImageURL = *q.ImageURL
	}
	if q.EnrichmentError != nil {
		resp.EnrichmentError = *q.EnrichmentError
	}
	return resp
}

// ListQuestionsResponse is returned by GET /api/v1/questions.
type ListQuestionsResponse struct {
	Questions []*QuestionResponse `json:"questions"`
	Total     int                 `json:"total"`
	Limit     int                 `json:"limit"`
	Offset    int                 `json:"offset"`
}

// AttemptResponse is returned by the attempt endpoints.
type AttemptResponse struct {
	AttemptID        string    `json:"attempt_id"`
	StudentID        string    `json:"student_id"`
	QuestionID       string    `json:"question_id"`
	SessionID        string    `json:"session_id,omitempty"`
	Correct          bool      `json:"correct"`
	TimeTakenSeconds float64   `json:"time_taken_seconds"`
	CreatedAt        time.Time `json:"created_at"`
}

func attemptResponse(a *ent.Attempt) *AttemptResponse {
	resp := &AttemptResponse{
		AttemptID:        a.ID,
		StudentID:        a.StudentID,
		QuestionID:       a.QuestionID,
		Correct:          a.Correct,
		TimeTakenSeconds: a.TimeTakenSeconds,
		CreatedAt:        a.CreatedAt,
	}
	if a.SessionID != nil {
		resp.SessionID = *a.SessionID
	}
	return resp
}

// MasteryResponse is returned by GET /api/v1/students/:id/mastery.
type MasteryResponse struct {
	StudentID string                 `json:"student_id"`
	Masteries []MasterySnapshotEntry `json:"masteries"`
}

// MasterySnapshotEntry decorates a snapshot with its reporting label.
type MasterySnapshotEntry struct {
	models.MasterySnapshot
	Label models.MasteryLabel `json:"label"`
}

// AuditResponse is one LLM call record for a question.
type AuditResponse struct {
	Stage        string    `json:"stage"`
	Provider     string    `json:"provider"`
	Model        string    `json:"model"`
	Attempt      int       `json:"attempt"`
	RateLimited  bool      `json:"rate_limited"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	DurationMS   int       `json:"duration_ms"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func auditResponse(a *ent.EnrichmentAudit) *AuditResponse {
	resp := &AuditResponse{
		Stage:       a.Stage,
		Provider:    a.Provider,
		Model:       a.ModelName,
		Attempt:     a.Attempt,
		RateLimited: a.RateLimited,
		CreatedAt:   a.CreatedAt,
	}
	if a.InputTokens != nil {
		resp.InputTokens = *a.InputTokens
	}
	if a.OutputTokens != nil {
		resp.OutputTokens = *a.OutputTokens
	}
	if a.DurationMs != nil {
		resp.DurationMS = *a.DurationMs
	}
	if a.ErrorMessage != nil {
		resp.ErrorMessage = *a.ErrorMessage
	}
	return resp
}

// HealthCheck is the status of one internal component.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
// Only quanta's own components (database, worker pool) gate the status;
// the LLM gateway state is reported but never marks the process unhealthy,
// so a provider outage cannot make the orchestrator restart us.
type HealthResponse struct {
	Status     string                 `json:"status"`
	Version    string                 `json:"version"`
	Checks     map[string]HealthCheck `json:"checks"`
	Database   *database.HealthStatus `json:"database,omitempty"`
	WorkerPool *queue.PoolHealth      `json:"worker_pool,omitempty"`
	LLMGateway *llm.State             `json:"llm_gateway,omitempty"`
}

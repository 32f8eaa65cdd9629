package models

// PlanNextRequest asks the orchestrator to plan the student's next session.
// LastSessionID is empty for the student's first session.
type PlanNextRequest struct {
	StudentID      string `json:"student_id"`
	LastSessionID  string `json:"last_session_id,omitempty"`
	NextSessionID  string `json:"next_session_id,omitempty"`
	IdempotencyKey string `json:"-"`
}

// PlanKey derives the idempotency key for the request. An explicit
// Idempotency-Key header wins; otherwise the key is the student/session
// transition itself, so retries of the same transition return the same plan.
func (r PlanNextRequest) PlanKey() string {
	if r.IdempotencyKey != "" {
		return r.IdempotencyKey
	}
	last := r.LastSessionID
	if last == "" {
		last = "first"
	}
	next := r.NextSessionID
	if next == "" {
		next = "next"
	}
	return r.StudentID + ":" + last + ":" + next
}

// PlanNextResponse reports the planned session. ConstraintReport is always
// present, including on fallback packs.
type PlanNextResponse struct {
	Status           string            `json:"status"`
	SessionID        string            `json:"session_id"`
	SessSeq          int               `json:"sess_seq"`
	Phase            Phase             `json:"phase"`
	SessionType      SessionType       `json:"session_type"`
	ConstraintReport *ConstraintReport `json:"constraint_report"`
}

// PackEntry is one pack slot as served to the client.
type PackEntry struct {
	Position          int     `json:"position"`
	QuestionID        string  `json:"question_id"`
	Stem              string  `json:"stem"`
	ImageURL          string  `json:"image_url,omitempty"`
	Band              Band    `json:"band"`
	Subcategory       string  `json:"subcategory"`
	TypeOfQuestion    string  `json:"type_of_question"`
	PYQFrequencyScore float64 `json:"pyq_frequency_score"`
}

// PackResponse returns the ordered pack for a planned session.
type PackResponse struct {
	SessionID string      `json:"session_id"`
	Status    string      `json:"status"`
	Pack      []PackEntry `json:"pack"`
}

// SessionStatusRequest addresses a session lifecycle transition.
type SessionStatusRequest struct {
	StudentID string `json:"student_id"`
	SessionID string `json:"session_id"`
}

// RecordAttemptRequest records one answered question.
type RecordAttemptRequest struct {
	StudentID        string  `json:"student_id"`
	QuestionID       string  `json:"question_id"`
	SessionID        string  `json:"session_id,omitempty"`
	Correct          bool    `json:"correct"`
	TimeTakenSeconds float64 `json:"time_taken_seconds"`
}

// CreateQuestionRequest is the admin upload payload. Only content fields
// are accepted; classification is produced by the enrichment pipeline.
type CreateQuestionRequest struct {
	QuestionID          string `json:"question_id,omitempty"`
	Stem                string `json:"stem"`
	AdminAnswer         string `json:"admin_answer"`
	AdminSolution       string `json:"admin_solution,omitempty"`
	PrincipleToRemember string `json:"principle_to_remember,omitempty"`
	ImageURL            string `json:"image_url,omitempty"`
}

// CreatePYQRequest uploads one past-year question.
type CreatePYQRequest struct {
	PYQID          string   `json:"pyq_id,omitempty"`
	Stem           string   `json:"stem"`
	Category       string   `json:"category"`
	Subcategory    string   `json:"subcategory"`
	TypeOfQuestion string   `json:"type_of_question"`
	Band           Band     `json:"band,omitempty"`
	Year           int      `json:"year,omitempty"`
	Slot           string   `json:"slot,omitempty"`
	Keywords       []string `json:"concept_keywords,omitempty"`
	Structure      string   `json:"problem_structure,omitempty"`
}

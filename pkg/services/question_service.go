package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/prepforge/quanta/ent"
	"github.com/prepforge/quanta/ent/question"
	"github.com/prepforge/quanta/pkg/models"
)

// QuestionService manages the question bank: admin uploads, the enrichment
// work queue, and the candidate feed for planning.
type QuestionService struct {
	client *ent.Client
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(client *ent.Client) *QuestionService {
	return &QuestionService{client: client}
}

// CreateQuestion stores an admin upload. The question enters the
// enrichment queue in "pending" status and stays inactive until the
// pipeline classifies it and the quality gate passes.
func (s *QuestionService) CreateQuestion(ctx context.Context, req models.CreateQuestionRequest) (*ent.Question, error) {
	if req.Stem == "" {
		return nil, NewValidationError("stem", "required")
	}
	if req.AdminAnswer == "" {
		return nil, NewValidationError("admin_answer", "required")
	}

	questionID := req.QuestionID
	if questionID == "" {
		questionID = uuid.New().String()
	}

	builder := s.client.Question.Create().
		SetID(questionID).
		SetStem(req.Stem).
		SetAdminAnswer(req.AdminAnswer).
		SetEnrichmentStatus(question.EnrichmentStatusPending)

	if req.AdminSolution != "" {
		builder.SetAdminSolution(req.AdminSolution)
	}
	if req.PrincipleToRemember != "" {
		builder.SetPrincipleToRemember(req.PrincipleToRemember)
	}
	if req.ImageURL != "" {
		builder.SetImageURL(req.ImageURL)
	}

	q, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	return q, nil
}

// GetQuestion retrieves a question by ID
func (s *QuestionService) GetQuestion(ctx context.Context, questionID string) (*ent.Question, error) {
	q, err := s.client.Question.Get(ctx, questionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return q, nil
}

// QuestionFilters narrows ListQuestions results.
type QuestionFilters struct {
	EnrichmentStatus string
	ActiveOnly       bool
	Category         string
	Subcategory      string
	DifficultyBand   string
	MinPYQFrequency  *float64
	MaxPYQFrequency  *float64
	Limit            int
	Offset           int
}

// ListQuestions lists questions with filtering and pagination, newest first
func (s *QuestionService) ListQuestions(ctx context.Context, filters QuestionFilters) ([]*ent.Question, int, error) {
	query := s.client.Question.Query()

	if filters.EnrichmentStatus != "" {
		query = query.Where(question.EnrichmentStatusEQ(question.EnrichmentStatus(filters.EnrichmentStatus)))
	}
	if filters.ActiveOnly {
		query = query.Where(question.IsActive(true))
	}
	if filters.Category != "" {
		query = query.Where(question.CategoryEQ(filters.Category))
	}
	if filters.Subcategory != "" {
		query = query.Where(question.SubcategoryEQ(filters.Subcategory))
	}
	if filters.DifficultyBand != "" {
		query = query.Where(question.DifficultyBandEQ(question.DifficultyBand(filters.DifficultyBand)))
	}
	if filters.MinPYQFrequency != nil {
		query = query.Where(question.PyqFrequencyScoreGTE(*filters.MinPYQFrequency))
	}
	if filters.MaxPYQFrequency != nil {
		query = query.Where(question.PyqFrequencyScoreLTE(*filters.MaxPYQFrequency))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count questions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	questions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(question.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list questions: %w", err)
	}

	return questions, totalCount, nil
}

// ActiveCandidates returns the planner's view of every serveable question:
// active, quality verified, with a classified band.
func (s *QuestionService) ActiveCandidates(ctx context.Context) ([]models.Candidate, error) {
	questions, err := s.client.Question.Query().
		Where(
			question.IsActive(true),
			question.QualityVerified(true),
			question.DifficultyBandNotNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query active questions: %w", err)
	}

	candidates := make([]models.Candidate, 0, len(questions))
	for _, q := range questions {
		c := models.Candidate{
			QuestionID:      q.ID,
			Category:        q.Category,
			Subcategory:     q.Subcategory,
			TypeOfQuestion:  q.TypeOfQuestion,
			Band:            models.Band(q.DifficultyBand),
			DifficultyScore: q.DifficultyScore,
		}
		if q.PyqFrequencyScore != nil {
			c.PYQFrequencyScore = *q.PyqFrequencyScore
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// ClaimNextPendingEnrichment atomically claims the oldest pending question
// using FOR UPDATE SKIP LOCKED, so concurrent workers never double-claim.
// Returns nil when nothing is pending.
func (s *QuestionService) ClaimNextPendingEnrichment(ctx context.Context, podID string) (*ent.Question, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	q, err := tx.Question.Query().
		Where(question.EnrichmentStatusEQ(question.EnrichmentStatusPending)).
		Order(ent.Asc(question.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query pending question: %w", err)
	}

	now := time.Now()
	q, err = q.Update().
		SetEnrichmentStatus(question.EnrichmentStatusEnriching).
		SetPodID(podID).
		SetLastEnrichmentAt(now).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim question: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return q, nil
}

// Heartbeat refreshes the claim timestamp for a question being enriched
func (s *QuestionService) Heartbeat(ctx context.Context, questionID string) error {
	err := s.client.Question.UpdateOneID(questionID).
		SetLastEnrichmentAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update heartbeat: %w", err)
	}
	return nil
}

// SaveEnrichment persists the pipeline's derived fields and the gate
// verdict. Admin content is never written here. The question activates
// only when the gate passed.
func (s *QuestionService) SaveEnrichment(ctx context.Context, questionID string, out models.EnrichmentOutcome) (*ent.Question, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	update := s.client.Question.UpdateOneID(questionID).
		SetRightAnswer(out.RightAnswer).
		SetCategory(out.Category).
		SetSubcategory(out.Subcategory).
		SetTypeOfQuestion(out.TypeOfQuestion).
		SetDifficultyBand(question.DifficultyBand(out.Band)).
		SetDifficultyScore(out.Score).
		SetSolutionMethod(out.SolutionMethod).
		SetProblemStructure(out.ProblemStructure).
		SetCoreConcepts(out.CoreConcepts).
		SetConceptDifficulty(out.ConceptDifficulty).
		SetOperationsRequired(out.OperationsRequired).
		SetConceptKeywords(out.ConceptKeywords).
		SetIsActive(out.QualityPassed).
		SetQualityVerified(out.QualityPassed).
		SetFailedChecks(out.FailedChecks).
		SetEnrichmentStatus(question.EnrichmentStatusCompleted).
		SetEnrichedAt(now).
		ClearEnrichmentError().
		ClearPodID()

	if out.PYQFrequencyScore != nil {
		update.SetPyqFrequencyScore(*out.PYQFrequencyScore)
	}
	if out.ExtractionCompleted {
		update.SetConceptExtractionStatus(question.ConceptExtractionStatusCompleted)
	} else {
		update.SetConceptExtractionStatus(question.ConceptExtractionStatusPending)
	}

	q, err := update.Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to save enrichment: %w", err)
	}
	return q, nil
}

// MarkEnrichmentFailed records a terminal pipeline failure. Any derived
// fields already written stay in place for inspection; the question stays
// inactive and out of the planner's reach.
func (s *QuestionService) MarkEnrichmentFailed(ctx context.Context, questionID, errorMessage string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Question.UpdateOneID(questionID).
		SetEnrichmentStatus(question.EnrichmentStatusFailed).
		SetEnrichmentError(errorMessage).
		ClearPodID().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark enrichment failed: %w", err)
	}
	return nil
}

// RequeueEnrichment puts a failed or completed question back in the
// pending queue for reprocessing
func (s *QuestionService) RequeueEnrichment(ctx context.Context, questionID string) error {
	err := s.client.Question.UpdateOneID(questionID).
		SetEnrichmentStatus(question.EnrichmentStatusPending).
		ClearEnrichmentError().
		ClearPodID().
		ClearLastEnrichmentAt().
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to requeue question: %w", err)
	}
	return nil
}

// QueueStats reports the enrichment queue depth and in-flight count
type QueueStats struct {
	Pending   int `json:"pending"`
	Enriching int `json:"enriching"`
	Failed    int `json:"failed"`
}

// EnrichmentQueueStats counts questions per work-queue state
func (s *QuestionService) EnrichmentQueueStats(ctx context.Context) (QueueStats, error) {
	var stats QueueStats
	for _, c := range []struct {
		status question.EnrichmentStatus
		dst    *int
	}{
		{question.EnrichmentStatusPending, &stats.Pending},
		{question.EnrichmentStatusEnriching, &stats.Enriching},
		{question.EnrichmentStatusFailed, &stats.Failed},
	} {
		n, err := s.client.Question.Query().
			Where(question.EnrichmentStatusEQ(c.status)).
			Count(ctx)
		if err != nil {
			return stats, fmt.Errorf("failed to count %s questions: %w", c.status, err)
		}
		*c.dst = n
	}
	return stats, nil
}

// SaveFailedEnrichment persists whatever derived fields a failed pipeline
// run produced, so ingestion is resumable, and records the terminal
// failure. The question stays inactive.
func (s *QuestionService) SaveFailedEnrichment(ctx context.Context, questionID string, out models.EnrichmentOutcome, errorMessage string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.Question.UpdateOneID(questionID).
		SetIsActive(false).
		SetQualityVerified(false).
		SetEnrichmentStatus(question.EnrichmentStatusFailed).
		SetEnrichmentError(errorMessage).
		ClearPodID()

	if out.RightAnswer != "" {
		update.SetRightAnswer(out.RightAnswer)
	}
	if out.Category != "" {
		update.SetCategory(out.Category)
	}
	if out.Subcategory != "" {
		update.SetSubcategory(out.Subcategory)
	}
	if out.TypeOfQuestion != "" {
		update.SetTypeOfQuestion(out.TypeOfQuestion)
	}
	if out.Band.Valid() {
		update.SetDifficultyBand(question.DifficultyBand(out.Band))
	}
	if out.Score > 0 {
		update.SetDifficultyScore(out.Score)
	}
	if out.PYQFrequencyScore != nil {
		update.SetPyqFrequencyScore(*out.PYQFrequencyScore)
	}
	if len(out.CoreConcepts) > 0 {
		update.SetCoreConcepts(out.CoreConcepts)
	}
	if out.SolutionMethod != "" {
		update.SetSolutionMethod(out.SolutionMethod)
	}
	if len(out.ConceptDifficulty) > 0 {
		update.SetConceptDifficulty(out.ConceptDifficulty)
	}
	if len(out.OperationsRequired) > 0 {
		update.SetOperationsRequired(out.OperationsRequired)
	}
	if out.ProblemStructure != "" {
		update.SetProblemStructure(out.ProblemStructure)
	}
	if len(out.ConceptKeywords) > 0 {
		update.SetConceptKeywords(out.ConceptKeywords)
	}
	if out.ExtractionCompleted {
		update.SetConceptExtractionStatus(question.ConceptExtractionStatusCompleted)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save failed enrichment: %w", err)
	}
	return nil
}

// FindOrphanedEnrichments finds questions stuck in "enriching" whose
// heartbeat is older than the threshold
func (s *QuestionService) FindOrphanedEnrichments(ctx context.Context, threshold time.Duration) ([]*ent.Question, error) {
	cutoff := time.Now().Add(-threshold)

	questions, err := s.client.Question.Query().
		Where(
			question.EnrichmentStatusEQ(question.EnrichmentStatusEnriching),
			question.LastEnrichmentAtNotNil(),
			question.LastEnrichmentAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned enrichments: %w", err)
	}
	return questions, nil
}

// RequeueOrphansForPod resets every "enriching" question claimed by the
// given pod back to pending. Called on startup so a crashed replica's
// claims are not lost.
func (s *QuestionService) RequeueOrphansForPod(ctx context.Context, podID string) (int, error) {
	count, err := s.client.Question.Update().
		Where(
			question.EnrichmentStatusEQ(question.EnrichmentStatusEnriching),
			question.PodID(podID),
		).
		SetEnrichmentStatus(question.EnrichmentStatusPending).
		ClearPodID().
		ClearLastEnrichmentAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue orphans for pod: %w", err)
	}
	return count, nil
}

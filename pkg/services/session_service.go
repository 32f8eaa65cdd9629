package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/prepforge/quanta/ent"
	"github.com/prepforge/quanta/ent/sessionquestion"
	"github.com/prepforge/quanta/ent/studentcounter"
	"github.com/prepforge/quanta/ent/studysession"
	"github.com/prepforge/quanta/pkg/models"
	"github.com/prepforge/quanta/pkg/planner"
	"github.com/prepforge/quanta/pkg/pool"
)

// SessionService orchestrates session planning and lifecycle: it mints the
// per-student sequence under a row lock, assembles planner input, persists
// the plan atomically, and serves the resulting packs.
type SessionService struct {
	client      *ent.Client
	planner     *planner.Planner
	pool        *pool.Provider
	mastery     *MasteryService
	coverage    *CoverageService
	planTimeout time.Duration
	logger      *slog.Logger
}

// NewSessionService creates a new SessionService. The candidate pool
// provider is built here because its source reads this service's own
// serving history.
func NewSessionService(client *ent.Client, plnr *planner.Planner, questionService *QuestionService, masteryService *MasteryService, coverageService *CoverageService, poolCfg pool.Config, planTimeout time.Duration, logger *slog.Logger) *SessionService {
	if planTimeout <= 0 {
		planTimeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &SessionService{
		client:      client,
		planner:     plnr,
		mastery:     masteryService,
		coverage:    coverageService,
		planTimeout: planTimeout,
		logger:      logger.With("component", "session_service"),
	}
	s.pool = pool.NewProvider(NewPoolSource(questionService, s), poolCfg, logger)
	return s
}

// PlanNext plans the student's next session. The call is idempotent on the
// plan key: replanning the same transition returns the stored plan instead
// of minting a new session. A planner failure degrades to the seeded
// fallback pack rather than erroring.
func (s *SessionService) PlanNext(ctx context.Context, req models.PlanNextRequest) (*models.PlanNextResponse, error) {
	if req.StudentID == "" {
		return nil, NewValidationError("student_id", "required")
	}
	planKey := req.PlanKey()

	// Fast path: the transition was already planned.
	if existing, err := s.sessionByPlanKey(ctx, planKey); err != nil {
		return nil, err
	} else if existing != nil {
		return planResponse(existing, "already_planned"), nil
	}

	// Use background context with timeout for the critical write
	planCtx, cancel := context.WithTimeout(context.Background(), s.planTimeout)
	defer cancel()

	tx, err := s.client.Tx(planCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sessSeq, err := s.lockNextSeq(planCtx, tx, req.StudentID)
	if err != nil {
		return nil, err
	}

	servedCount, err := tx.StudySession.Query().
		Where(
			studysession.StudentID(req.StudentID),
			studysession.StatusIn(studysession.StatusServed, studysession.StatusCompleted),
		).
		Count(planCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to count served sessions: %w", err)
	}
	coldStart := servedCount == 0

	candidatePool, err := s.pool.Build(planCtx, req.StudentID, sessSeq, coldStart)
	if err != nil {
		return nil, fmt.Errorf("failed to build candidate pool: %w", err)
	}
	snapshots, err := s.mastery.Snapshots(planCtx, req.StudentID)
	if err != nil {
		return nil, err
	}
	seen, err := s.coverage.Seen(planCtx, req.StudentID)
	if err != nil {
		return nil, err
	}

	input := planner.Input{
		StudentID:   req.StudentID,
		SessSeq:     sessSeq,
		ServedCount: servedCount,
		Pool:        candidatePool,
		Mastery:     snapshots,
		Seen:        seen,
	}

	plan, err := s.planner.Plan(input)
	if err != nil {
		s.logger.Warn("planner failed, falling back to seeded random pack",
			"student_id", req.StudentID, "sess_seq", sessSeq, "error", err)
		plan = s.planner.Fallback(input, err.Error())
	}

	sessionID := req.NextSessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	session, err := tx.StudySession.Create().
		SetID(sessionID).
		SetStudentID(req.StudentID).
		SetSessSeq(sessSeq).
		SetStatus(studysession.StatusPlanned).
		SetPhase(studysession.Phase(plan.Phase)).
		SetSessionType(studysession.SessionType(plan.SessionType)).
		SetPlanKey(planKey).
		SetConstraintReport(&plan.Report).
		Save(planCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a plan-key or sess-seq race; the winner's plan is the
			// answer for this transition.
			if existing, lookupErr := s.sessionByPlanKey(ctx, planKey); lookupErr == nil && existing != nil {
				return planResponse(existing, "already_planned"), nil
			}
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	entries := make([]*ent.SessionQuestionCreate, 0, len(plan.Entries))
	for _, e := range plan.Entries {
		entries = append(entries, tx.SessionQuestion.Create().
			SetID(uuid.New().String()).
			SetSessionID(session.ID).
			SetQuestionID(e.Candidate.QuestionID).
			SetPosition(e.Position).
			SetPlannedBand(sessionquestion.PlannedBand(e.SlotBand)).
			SetSubcategory(e.Candidate.Subcategory).
			SetTypeOfQuestion(e.Candidate.TypeOfQuestion).
			SetCoverageNew(e.CoverageNew))
	}
	if err := tx.SessionQuestion.CreateBulk(entries...).Exec(planCtx); err != nil {
		return nil, fmt.Errorf("failed to create pack entries: %w", err)
	}

	err = tx.StudentCounter.UpdateOneID(req.StudentID).
		SetNextSeq(sessSeq + 1).
		Exec(planCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to advance student counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit plan: %w", err)
	}

	s.logger.Info("planned session",
		"student_id", req.StudentID,
		"session_id", session.ID,
		"sess_seq", sessSeq,
		"phase", plan.Phase,
		"session_type", plan.SessionType)

	return planResponse(session, "planned"), nil
}

// lockNextSeq locks the student's counter row FOR UPDATE and returns the
// sequence this plan will use, creating the counter on first contact.
func (s *SessionService) lockNextSeq(ctx context.Context, tx *ent.Tx, studentID string) (int, error) {
	counter, err := tx.StudentCounter.Query().
		Where(studentcounter.ID(studentID)).
		ForUpdate().
		Only(ctx)
	if err == nil {
		return counter.NextSeq, nil
	}
	if !ent.IsNotFound(err) {
		return 0, fmt.Errorf("failed to lock student counter: %w", err)
	}

	counter, err = tx.StudentCounter.Create().
		SetID(studentID).
		SetNextSeq(1).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to create student counter: %w", err)
	}
	return counter.NextSeq, nil
}

func (s *SessionService) sessionByPlanKey(ctx context.Context, planKey string) (*ent.StudySession, error) {
	session, err := s.client.StudySession.Query().
		Where(studysession.PlanKey(planKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query session by plan key: %w", err)
	}
	return session, nil
}

func planResponse(session *ent.StudySession, status string) *models.PlanNextResponse {
	return &models.PlanNextResponse{
		Status:           status,
		SessionID:        session.ID,
		SessSeq:          session.SessSeq,
		Phase:            models.Phase(session.Phase),
		SessionType:      models.SessionType(session.SessionType),
		ConstraintReport: session.ConstraintReport,
	}
}

// GetSession retrieves a session by ID
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.StudySession, error) {
	session, err := s.client.StudySession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// GetPack returns the planned pack in presentation order.
func (s *SessionService) GetPack(ctx context.Context, sessionID string) (*models.PackResponse, error) {
	session, err := s.client.StudySession.Query().
		Where(studysession.IDEQ(sessionID)).
		WithPackEntries(func(q *ent.SessionQuestionQuery) {
			q.WithQuestion().Order(ent.Asc(sessionquestion.FieldPosition))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session pack: %w", err)
	}

	pack := make([]models.PackEntry, 0, len(session.Edges.PackEntries))
	for _, entry := range session.Edges.PackEntries {
		pe := models.PackEntry{
			Position:       entry.Position,
			QuestionID:     entry.QuestionID,
			Band:           models.Band(entry.PlannedBand),
			Subcategory:    entry.Subcategory,
			TypeOfQuestion: entry.TypeOfQuestion,
		}
		if q := entry.Edges.Question; q != nil {
			pe.Stem = q.Stem
			if q.ImageURL != nil {
				pe.ImageURL = *q.ImageURL
			}
			if q.PyqFrequencyScore != nil {
				pe.PYQFrequencyScore = *q.PyqFrequencyScore
			}
		}
		pack = append(pack, pe)
	}

	return &models.PackResponse{
		SessionID: session.ID,
		Status:    string(session.Status),
		Pack:      pack,
	}, nil
}

// MarkServed transitions a planned session to served and upserts coverage
// for every pair in the pack. Serving an already served or completed
// session is a no-op, so retries never double-count coverage.
func (s *SessionService) MarkServed(ctx context.Context, req models.SessionStatusRequest) (*ent.StudySession, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	session, err := tx.StudySession.Query().
		Where(studysession.IDEQ(req.SessionID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock session: %w", err)
	}
	if req.StudentID != "" && session.StudentID != req.StudentID {
		return nil, ErrNotFound
	}

	if session.Status != studysession.StatusPlanned {
		// Already served or completed; nothing to do.
		return session, nil
	}

	entries, err := tx.SessionQuestion.Query().
		Where(sessionquestion.SessionID(session.ID)).
		All(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pack entries: %w", err)
	}
	pairs := make([]planner.Pair, 0, len(entries))
	for _, e := range entries {
		pairs = append(pairs, planner.Pair{
			Subcategory:    e.Subcategory,
			TypeOfQuestion: e.TypeOfQuestion,
		})
	}
	if err := s.coverage.recordServedWithinTx(writeCtx, tx, session.StudentID, session.SessSeq, pairs); err != nil {
		return nil, err
	}

	session, err = tx.StudySession.UpdateOne(session).
		SetStatus(studysession.StatusServed).
		SetServedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark session served: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit serve: %w", err)
	}
	return session, nil
}

// Complete transitions a served session to completed. Completing twice is
// a no-op; completing a session that was never served is rejected.
func (s *SessionService) Complete(ctx context.Context, req models.SessionStatusRequest) (*ent.StudySession, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session, err := s.client.StudySession.Query().
		Where(studysession.IDEQ(req.SessionID)).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if req.StudentID != "" && session.StudentID != req.StudentID {
		return nil, ErrNotFound
	}

	switch session.Status {
	case studysession.StatusCompleted:
		return session, nil
	case studysession.StatusPlanned:
		return nil, ErrInvalidTransition
	}

	session, err = s.client.StudySession.UpdateOne(session).
		Where(studysession.StatusEQ(studysession.StatusServed)).
		SetStatus(studysession.StatusCompleted).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			// Raced with another completion; treat as already done.
			return s.GetSession(ctx, req.SessionID)
		}
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}
	return session, nil
}

// RecentQuestionIDs returns the question ids served in the student's most
// recent sessions. Part of the candidate pool source.
func (s *SessionService) RecentQuestionIDs(ctx context.Context, studentID string, sessions int) (map[string]struct{}, error) {
	if sessions <= 0 {
		return map[string]struct{}{}, nil
	}

	recent, err := s.client.StudySession.Query().
		Where(
			studysession.StudentID(studentID),
			studysession.StatusIn(studysession.StatusServed, studysession.StatusCompleted),
		).
		Order(ent.Desc(studysession.FieldSessSeq)).
		Limit(sessions).
		WithPackEntries().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent sessions: %w", err)
	}

	ids := make(map[string]struct{})
	for _, session := range recent {
		for _, entry := range session.Edges.PackEntries {
			ids[entry.QuestionID] = struct{}{}
		}
	}
	return ids, nil
}

// LastServedAt returns, per question served to the student within the
// window, the most recent serving time. Part of the candidate pool source.
func (s *SessionService) LastServedAt(ctx context.Context, studentID string, within time.Duration) (map[string]time.Time, error) {
	cutoff := time.Now().Add(-within)

	sessions, err := s.client.StudySession.Query().
		Where(
			studysession.StudentID(studentID),
			studysession.ServedAtNotNil(),
			studysession.ServedAtGTE(cutoff),
		).
		WithPackEntries().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query serving history: %w", err)
	}

	servedAt := make(map[string]time.Time)
	for _, session := range sessions {
		if session.ServedAt == nil {
			continue
		}
		at := *session.ServedAt
		for _, entry := range session.Edges.PackEntries {
			if prev, ok := servedAt[entry.QuestionID]; !ok || at.After(prev) {
				servedAt[entry.QuestionID] = at
			}
		}
	}
	return servedAt, nil
}

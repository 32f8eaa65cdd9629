package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prepforge/quanta/ent"
	"github.com/prepforge/quanta/ent/attempt"
	"github.com/prepforge/quanta/pkg/models"
)

// AttemptService records answered questions and folds each attempt into
// the student's mastery state in the same transaction.
type AttemptService struct {
	client  *ent.Client
	mastery *MasteryService
}

// NewAttemptService creates a new AttemptService
func NewAttemptService(client *ent.Client, masteryService *MasteryService) *AttemptService {
	return &AttemptService{
		client:  client,
		mastery: masteryService,
	}
}

// RecordAttempt stores one attempt and updates the two mastery rows for
// the question's (subcategory, type) pair atomically. Attempts against
// unclassified questions are stored but do not move mastery.
func (s *AttemptService) RecordAttempt(ctx context.Context, req models.RecordAttemptRequest) (*ent.Attempt, error) {
	if req.StudentID == "" {
		return nil, NewValidationError("student_id", "required")
	}
	if req.QuestionID == "" {
		return nil, NewValidationError("question_id", "required")
	}
	if req.TimeTakenSeconds < 0 {
		return nil, NewValidationError("time_taken_seconds", "must be non-negative")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	q, err := tx.Question.Get(writeCtx, req.QuestionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	now := time.Now()
	builder := tx.Attempt.Create().
		SetID(uuid.New().String()).
		SetStudentID(req.StudentID).
		SetQuestionID(req.QuestionID).
		SetCorrect(req.Correct).
		SetTimeTakenSeconds(req.TimeTakenSeconds)

	if req.SessionID != "" {
		builder.SetSessionID(req.SessionID)
	}

	att, err := builder.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewValidationError("session_id", "unknown session")
		}
		return nil, fmt.Errorf("failed to create attempt: %w", err)
	}

	if q.Subcategory != "" && string(q.DifficultyBand) != "" {
		err = s.mastery.applyWithinTx(writeCtx, tx,
			req.StudentID, q.Subcategory, q.TypeOfQuestion,
			models.Band(q.DifficultyBand), req.Correct, req.TimeTakenSeconds, now)
		if err != nil {
			return nil, fmt.Errorf("failed to update mastery: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit attempt: %w", err)
	}

	return att, nil
}

// ListAttempts returns a student's attempts, newest first
func (s *AttemptService) ListAttempts(ctx context.Context, studentID string, limit int) ([]*ent.Attempt, error) {
	if limit <= 0 {
		limit = 50
	}
	attempts, err := s.client.Attempt.Query().
		Where(attempt.StudentID(studentID)).
		Order(ent.Desc(attempt.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	return attempts, nil
}

// AttemptCount returns the number of attempts a student has made
func (s *AttemptService) AttemptCount(ctx context.Context, studentID string) (int, error) {
	count, err := s.client.Attempt.Query().
		Where(attempt.StudentID(studentID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count attempts: %w", err)
	}
	return count, nil
}

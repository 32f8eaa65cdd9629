package services

import (
	"context"
	"time"

	"github.com/prepforge/quanta/pkg/models"
)

// PoolSource feeds the candidate pool provider from the question bank and
// the serving history.
type PoolSource struct {
	questions *QuestionService
	sessions  *SessionService
}

// NewPoolSource wires the provider source over the two services.
func NewPoolSource(questions *QuestionService, sessions *SessionService) *PoolSource {
	return &PoolSource{
		questions: questions,
		sessions:  sessions,
	}
}

func (p *PoolSource) ActiveCandidates(ctx context.Context) ([]models.Candidate, error) {
	return p.questions.ActiveCandidates(ctx)
}

func (p *PoolSource) RecentQuestionIDs(ctx context.Context, studentID string, sessions int) (map[string]struct{}, error) {
	return p.sessions.RecentQuestionIDs(ctx, studentID, sessions)
}

func (p *PoolSource) LastServedAt(ctx context.Context, studentID string, within time.Duration) (map[string]time.Time, error) {
	return p.sessions.LastServedAt(ctx, studentID, within)
}

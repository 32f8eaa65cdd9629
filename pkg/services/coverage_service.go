package services

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/prepforge/quanta/ent"
	"github.com/prepforge/quanta/ent/studentcoverage"
	"github.com/prepforge/quanta/pkg/planner"
)

// CoverageService tracks which (subcategory, type) pairs each student has
// been served and in which sessions.
type CoverageService struct {
	client *ent.Client
}

// NewCoverageService creates a new CoverageService
func NewCoverageService(client *ent.Client) *CoverageService {
	return &CoverageService{client: client}
}

// Seen returns the student's coverage map keyed by "subcategory|type".
// Pairs absent from the map have never been served.
func (s *CoverageService) Seen(ctx context.Context, studentID string) (map[string]int, error) {
	rows, err := s.client.StudentCoverage.Query().
		Where(studentcoverage.StudentID(studentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query coverage: %w", err)
	}

	seen := make(map[string]int, len(rows))
	for _, row := range rows {
		seen[planner.PairKey(row.Subcategory, row.TypeOfQuestion)] = row.SessionsSeen
	}
	return seen, nil
}

// recordServedWithinTx upserts one coverage row per distinct pair served
// in a session: sessions_seen increments, last_seen_session advances,
// first_seen_session is set once and never updated.
func (s *CoverageService) recordServedWithinTx(ctx context.Context, tx *ent.Tx, studentID string, sessSeq int, pairs []planner.Pair) error {
	distinct := make(map[string]planner.Pair, len(pairs))
	for _, p := range pairs {
		distinct[planner.PairKey(p.Subcategory, p.TypeOfQuestion)] = p
	}

	for _, p := range distinct {
		err := tx.StudentCoverage.Create().
			SetID(uuid.New().String()).
			SetStudentID(studentID).
			SetSubcategory(p.Subcategory).
			SetTypeOfQuestion(p.TypeOfQuestion).
			SetSessionsSeen(1).
			SetFirstSeenSession(sessSeq).
			SetLastSeenSession(sessSeq).
			OnConflict(
				sql.ConflictColumns(
					studentcoverage.FieldStudentID,
					studentcoverage.FieldSubcategory,
					studentcoverage.FieldTypeOfQuestion,
				),
			).
			Update(func(u *ent.StudentCoverageUpsert) {
				u.AddSessionsSeen(1)
				u.SetLastSeenSession(sessSeq)
			}).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to upsert coverage for %s/%s: %w", p.Subcategory, p.TypeOfQuestion, err)
		}
	}
	return nil
}

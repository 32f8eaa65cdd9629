package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prepforge/quanta/ent"
	entmastery "github.com/prepforge/quanta/ent/mastery"
	"github.com/prepforge/quanta/pkg/mastery"
	"github.com/prepforge/quanta/pkg/models"
)

// MasteryService maintains the per-(student, subcategory, type) skill rows.
// Each attempt updates two rows: the exact pair and the subcategory-level
// aggregate with an empty type.
type MasteryService struct {
	client *ent.Client
	params mastery.Params
}

// NewMasteryService creates a new MasteryService
func NewMasteryService(client *ent.Client, params mastery.Params) *MasteryService {
	return &MasteryService{
		client: client,
		params: params.Normalize(),
	}
}

// Snapshots returns every mastery row for a student as planner-facing
// snapshots, aggregates included.
func (s *MasteryService) Snapshots(ctx context.Context, studentID string) ([]models.MasterySnapshot, error) {
	rows, err := s.client.Mastery.Query().
		Where(entmastery.StudentID(studentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query mastery rows: %w", err)
	}

	snapshots := make([]models.MasterySnapshot, 0, len(rows))
	for _, row := range rows {
		snapshots = append(snapshots, snapshotFromRow(row))
	}
	return snapshots, nil
}

// applyWithinTx folds one attempt into the (subcategory, type) row and the
// subcategory aggregate, both under row locks so concurrent attempts
// serialize per student.
func (s *MasteryService) applyWithinTx(ctx context.Context, tx *ent.Tx, studentID, subcategory, typeOfQuestion string, band models.Band, correct bool, seconds float64, at time.Time) error {
	for _, typ := range []string{typeOfQuestion, ""} {
		if err := s.applyToRow(ctx, tx, studentID, subcategory, typ, band, correct, seconds, at); err != nil {
			return err
		}
	}
	return nil
}

func (s *MasteryService) applyToRow(ctx context.Context, tx *ent.Tx, studentID, subcategory, typeOfQuestion string, band models.Band, correct bool, seconds float64, at time.Time) error {
	row, err := tx.Mastery.Query().
		Where(
			entmastery.StudentID(studentID),
			entmastery.SubcategoryEQ(subcategory),
			entmastery.TypeOfQuestionEQ(typeOfQuestion),
		).
		ForUpdate().
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to lock mastery row: %w", err)
	}

	var snap models.MasterySnapshot
	if row != nil {
		snap = snapshotFromRow(row)
	} else {
		snap = models.MasterySnapshot{
			Subcategory:    subcategory,
			TypeOfQuestion: typeOfQuestion,
		}
	}
	snap = s.params.ApplyAttempt(snap, band, correct, seconds, at)

	if row == nil {
		_, err = tx.Mastery.Create().
			SetID(uuid.New().String()).
			SetStudentID(studentID).
			SetSubcategory(subcategory).
			SetTypeOfQuestion(typeOfQuestion).
			SetAccEasy(snap.AccEasy).
			SetAccMedium(snap.AccMedium).
			SetAccHard(snap.AccHard).
			SetEfficiencyScore(snap.EfficiencyScore).
			SetExposureCount(snap.ExposureCount).
			SetMasteryPct(snap.MasteryPct).
			SetLastActivityAt(at).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create mastery row: %w", err)
		}
		return nil
	}

	err = tx.Mastery.UpdateOne(row).
		SetAccEasy(snap.AccEasy).
		SetAccMedium(snap.AccMedium).
		SetAccHard(snap.AccHard).
		SetEfficiencyScore(snap.EfficiencyScore).
		SetExposureCount(snap.ExposureCount).
		SetMasteryPct(snap.MasteryPct).
		SetLastActivityAt(at).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update mastery row: %w", err)
	}
	return nil
}

// DecayInactive applies the daily time decay to every row whose last
// activity is more than a whole day old. Returns the number of rows
// decayed. Intended to run from the maintenance ticker.
func (s *MasteryService) DecayInactive(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-24 * time.Hour)

	rows, err := s.client.Mastery.Query().
		Where(
			entmastery.LastActivityAtNotNil(),
			entmastery.LastActivityAtLT(cutoff),
			// Skip rows whose decay already ran since the last activity
			entmastery.UpdatedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query inactive mastery rows: %w", err)
	}

	decayed := 0
	for _, row := range rows {
		days := mastery.InactiveDays(row.UpdatedAt, now)
		if row.LastActivityAt != nil && row.LastActivityAt.After(row.UpdatedAt) {
			days = mastery.InactiveDays(*row.LastActivityAt, now)
		}
		if days <= 0 {
			continue
		}

		snap := s.params.Decay(snapshotFromRow(row), days)
		err := s.client.Mastery.UpdateOne(row).
			SetAccEasy(snap.AccEasy).
			SetAccMedium(snap.AccMedium).
			SetAccHard(snap.AccHard).
			SetEfficiencyScore(snap.EfficiencyScore).
			SetMasteryPct(snap.MasteryPct).
			Exec(ctx)
		if err != nil {
			return decayed, fmt.Errorf("failed to decay mastery row %s: %w", row.ID, err)
		}
		decayed++
	}
	return decayed, nil
}

func snapshotFromRow(row *ent.Mastery) models.MasterySnapshot {
	return models.MasterySnapshot{
		Subcategory:     row.Subcategory,
		TypeOfQuestion:  row.TypeOfQuestion,
		AccEasy:         row.AccEasy,
		AccMedium:       row.AccMedium,
		AccHard:         row.AccHard,
		EfficiencyScore: row.EfficiencyScore,
		ExposureCount:   row.ExposureCount,
		MasteryPct:      row.MasteryPct,
		LastActivityAt:  row.LastActivityAt,
	}
}

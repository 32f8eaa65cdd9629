package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entmastery "github.com/prepforge/quanta/ent/mastery"
	"github.com/prepforge/quanta/pkg/models"
)

func TestMasteryService_Snapshots(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()

	snaps, err := svc.mastery.Snapshots(ctx, "stu-none")
	require.NoError(t, err)
	assert.Empty(t, snaps)

	seedEnrichedQuestion(t, ctx, svc.client, seedSpec{
		id: "q-snap", category: "Modern Math", subcategory: "Probability",
		typeOfQuestion: "Single Event", band: models.BandHard, score: 4.2, pyq: 0.8,
	})
	_, err = svc.attempts.RecordAttempt(ctx, models.RecordAttemptRequest{
		StudentID:        "stu-snap",
		QuestionID:       "q-snap",
		Correct:          true,
		TimeTakenSeconds: 180,
	})
	require.NoError(t, err)

	snaps, err = svc.mastery.Snapshots(ctx, "stu-snap")
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	for _, s := range snaps {
		assert.Equal(t, "Probability", s.Subcategory)
		assert.InDelta(t, 0.6, s.AccHard, 0.001)
	}
}

func TestMasteryService_DecayInactive(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()

	seedEnrichedQuestion(t, ctx, svc.client, seedSpec{
		id: "q-decay", category: "Algebra", subcategory: "Linear Equations",
		typeOfQuestion: "Single Variable", band: models.BandMedium, score: 2.8, pyq: 1.0,
	})
	for _, student := range []string{"stu-stale", "stu-fresh"} {
		_, err := svc.attempts.RecordAttempt(ctx, models.RecordAttemptRequest{
			StudentID:        student,
			QuestionID:       "q-decay",
			Correct:          true,
			TimeTakenSeconds: 100,
		})
		require.NoError(t, err)
	}

	// Back-date the stale student's rows three days.
	now := time.Now()
	stale := now.Add(-72 * time.Hour)
	n, err := svc.client.Mastery.Update().
		Where(entmastery.StudentID("stu-stale")).
		SetLastActivityAt(stale).
		SetUpdatedAt(stale).
		Save(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	t.Run("decays only the inactive rows", func(t *testing.T) {
		decayed, err := svc.mastery.DecayInactive(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 2, decayed)

		snaps, err := svc.mastery.Snapshots(ctx, "stu-stale")
		require.NoError(t, err)
		require.Len(t, snaps, 2)
		for _, s := range snaps {
			// 0.6 * 0.95^3
			assert.InDelta(t, 0.514, s.AccMedium, 0.001)
			assert.InDelta(t, 0.514, s.EfficiencyScore, 0.001)
		}

		fresh, err := svc.mastery.Snapshots(ctx, "stu-fresh")
		require.NoError(t, err)
		for _, s := range fresh {
			assert.InDelta(t, 0.6, s.AccMedium, 0.001)
		}
	})

	t.Run("a second run does not double-decay", func(t *testing.T) {
		decayed, err := svc.mastery.DecayInactive(ctx, now)
		require.NoError(t, err)
		assert.Zero(t, decayed)
	})
}

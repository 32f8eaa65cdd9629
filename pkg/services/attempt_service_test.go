package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepforge/quanta/pkg/models"
)

func TestAttemptService_RecordAttempt(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()

	seedEnrichedQuestion(t, ctx, svc.client, seedSpec{
		id: "q-med", category: "Algebra", subcategory: "Linear Equations",
		typeOfQuestion: "Single Variable", band: models.BandMedium, score: 2.8, pyq: 1.0,
	})

	t.Run("stores the attempt and moves both mastery rows", func(t *testing.T) {
		att, err := svc.attempts.RecordAttempt(ctx, models.RecordAttemptRequest{
			StudentID:        "stu-1",
			QuestionID:       "q-med",
			Correct:          true,
			TimeTakenSeconds: 100,
		})
		require.NoError(t, err)
		assert.True(t, att.Correct)
		assert.InDelta(t, 100, att.TimeTakenSeconds, 0.001)

		snaps, err := svc.mastery.Snapshots(ctx, "stu-1")
		require.NoError(t, err)
		require.Len(t, snaps, 2)

		byType := map[string]models.MasterySnapshot{}
		for _, s := range snaps {
			require.Equal(t, "Linear Equations", s.Subcategory)
			byType[s.TypeOfQuestion] = s
		}
		pair, ok := byType["Single Variable"]
		require.True(t, ok, "pair row missing")
		agg, ok := byType[""]
		require.True(t, ok, "subcategory aggregate row missing")

		for _, s := range []models.MasterySnapshot{pair, agg} {
			// alpha 0.6 from zero state, solve time under the Medium target
			assert.InDelta(t, 0.6, s.AccMedium, 0.001)
			assert.InDelta(t, 0.6, s.EfficiencyScore, 0.001)
			assert.Equal(t, 1, s.ExposureCount)
			assert.NotNil(t, s.LastActivityAt)
		}
	})

	t.Run("a wrong attempt pulls accuracy back down", func(t *testing.T) {
		_, err := svc.attempts.RecordAttempt(ctx, models.RecordAttemptRequest{
			StudentID:        "stu-1",
			QuestionID:       "q-med",
			Correct:          false,
			TimeTakenSeconds: 200,
		})
		require.NoError(t, err)

		snaps, err := svc.mastery.Snapshots(ctx, "stu-1")
		require.NoError(t, err)
		for _, s := range snaps {
			// 0.6*0 + 0.4*0.6
			assert.InDelta(t, 0.24, s.AccMedium, 0.001)
			assert.Equal(t, 2, s.ExposureCount)
		}
	})

	t.Run("unclassified question stores the attempt without mastery movement", func(t *testing.T) {
		_, err := svc.questions.CreateQuestion(ctx, models.CreateQuestionRequest{
			QuestionID: "q-raw", Stem: "stem", AdminAnswer: "1",
		})
		require.NoError(t, err)

		_, err = svc.attempts.RecordAttempt(ctx, models.RecordAttemptRequest{
			StudentID:        "stu-2",
			QuestionID:       "q-raw",
			Correct:          true,
			TimeTakenSeconds: 30,
		})
		require.NoError(t, err)

		count, err := svc.attempts.AttemptCount(ctx, "stu-2")
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		snaps, err := svc.mastery.Snapshots(ctx, "stu-2")
		require.NoError(t, err)
		assert.Empty(t, snaps)
	})

	t.Run("unknown question", func(t *testing.T) {
		_, err := svc.attempts.RecordAttempt(ctx, models.RecordAttemptRequest{
			StudentID:  "stu-1",
			QuestionID: "no-such-question",
			Correct:    true,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown session id", func(t *testing.T) {
		_, err := svc.attempts.RecordAttempt(ctx, models.RecordAttemptRequest{
			StudentID:  "stu-1",
			QuestionID: "q-med",
			SessionID:  "no-such-session",
			Correct:    true,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "session_id")
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name  string
			req   models.RecordAttemptRequest
			field string
		}{
			{"missing student", models.RecordAttemptRequest{QuestionID: "q-med"}, "student_id"},
			{"missing question", models.RecordAttemptRequest{StudentID: "stu-1"}, "question_id"},
			{"negative time", models.RecordAttemptRequest{StudentID: "stu-1", QuestionID: "q-med", TimeTakenSeconds: -1}, "time_taken_seconds"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.attempts.RecordAttempt(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), tt.field)
			})
		}
	})
}

func TestAttemptService_ListAttempts(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()

	seedEnrichedQuestion(t, ctx, svc.client, seedSpec{
		id: "q-list", category: "Arithmetic", subcategory: "Averages",
		typeOfQuestion: "Simple Averages", band: models.BandEasy, score: 1.2, pyq: 0.5,
	})
	for i := 0; i < 3; i++ {
		_, err := svc.attempts.RecordAttempt(ctx, models.RecordAttemptRequest{
			StudentID:        "stu-list",
			QuestionID:       "q-list",
			Correct:          i%2 == 0,
			TimeTakenSeconds: float64(60 + i),
		})
		require.NoError(t, err)
	}

	t.Run("newest first with a limit", func(t *testing.T) {
		attempts, err := svc.attempts.ListAttempts(ctx, "stu-list", 2)
		require.NoError(t, err)
		require.Len(t, attempts, 2)
		assert.InDelta(t, 62, attempts[0].TimeTakenSeconds, 0.001)
		assert.InDelta(t, 61, attempts[1].TimeTakenSeconds, 0.001)
	})

	t.Run("count includes everything", func(t *testing.T) {
		count, err := svc.attempts.AttemptCount(ctx, "stu-list")
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("other students see nothing", func(t *testing.T) {
		attempts, err := svc.attempts.ListAttempts(ctx, "somebody-else", 0)
		require.NoError(t, err)
		assert.Empty(t, attempts)
	})
}

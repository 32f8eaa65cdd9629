package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepforge/quanta/ent/question"
	"github.com/prepforge/quanta/pkg/models"
)

func TestQuestionService_CreateQuestion(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()

	t.Run("enters the queue pending and inactive", func(t *testing.T) {
		q, err := svc.questions.CreateQuestion(ctx, models.CreateQuestionRequest{
			Stem:        "What is 25% of 80?",
			AdminAnswer: "20",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, q.ID)
		assert.Equal(t, question.EnrichmentStatusPending, q.EnrichmentStatus)
		assert.False(t, q.IsActive)
		assert.False(t, q.QualityVerified)
	})

	t.Run("respects an explicit question id", func(t *testing.T) {
		q, err := svc.questions.CreateQuestion(ctx, models.CreateQuestionRequest{
			QuestionID:  "q-explicit-1",
			Stem:        "A number increased by 20% becomes 60. Find it.",
			AdminAnswer: "50",
		})
		require.NoError(t, err)
		assert.Equal(t, "q-explicit-1", q.ID)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		_, err := svc.questions.CreateQuestion(ctx, models.CreateQuestionRequest{
			QuestionID:  "q-explicit-1",
			Stem:        "duplicate",
			AdminAnswer: "1",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("stores optional content fields", func(t *testing.T) {
		q, err := svc.questions.CreateQuestion(ctx, models.CreateQuestionRequest{
			Stem:                "Find the third proportional to 4 and 6.",
			AdminAnswer:         "9",
			AdminSolution:       "b^2 = a*c, so c = 36/4 = 9",
			PrincipleToRemember: "third proportional of a, b is b^2/a",
			ImageURL:            "https://cdn.example.com/q/123.png",
		})
		require.NoError(t, err)
		assert.Equal(t, "b^2 = a*c, so c = 36/4 = 9", q.AdminSolution)
		require.NotNil(t, q.PrincipleToRemember)
		assert.Equal(t, "third proportional of a, b is b^2/a", *q.PrincipleToRemember)
		require.NotNil(t, q.ImageURL)
		assert.Equal(t, "https://cdn.example.com/q/123.png", *q.ImageURL)
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name  string
			req   models.CreateQuestionRequest
			field string
		}{
			{"missing stem", models.CreateQuestionRequest{AdminAnswer: "1"}, "stem"},
			{"missing answer", models.CreateQuestionRequest{Stem: "x?"}, "admin_answer"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.questions.CreateQuestion(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), tt.field)
			})
		}
	})
}

func TestQuestionService_ListQuestions(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.questions.CreateQuestion(ctx, models.CreateQuestionRequest{
			Stem:        "pending question",
			AdminAnswer: "1",
		})
		require.NoError(t, err)
	}
	seedEnrichedQuestion(t, ctx, svc.client, seedSpec{
		id: "q-active", category: "Arithmetic", subcategory: "Percentages",
		typeOfQuestion: "Percentage Change", band: models.BandEasy, score: 1.5, pyq: 1.0,
	})

	t.Run("filters by enrichment status", func(t *testing.T) {
		list, total, err := svc.questions.ListQuestions(ctx, QuestionFilters{EnrichmentStatus: "pending"})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, list, 3)
	})

	t.Run("filters by active and category", func(t *testing.T) {
		list, total, err := svc.questions.ListQuestions(ctx, QuestionFilters{
			ActiveOnly: true,
			Category:   "Arithmetic",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, list, 1)
		assert.Equal(t, "q-active", list[0].ID)
	})

	t.Run("paginates with a stable total", func(t *testing.T) {
		page, total, err := svc.questions.ListQuestions(ctx, QuestionFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Len(t, page, 2)

		rest, total, err := svc.questions.ListQuestions(ctx, QuestionFilters{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Len(t, rest, 2)
	})
}

func TestQuestionService_ListQuestions_EnrichmentFilters(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()

	seedEnrichedQuestion(t, ctx, svc.client, seedSpec{
		id: "q-pct-easy", category: "Arithmetic", subcategory: "Percentages",
		typeOfQuestion: "Percentage Change", band: models.BandEasy, score: 1.5, pyq: 0.4,
	})
	seedEnrichedQuestion(t, ctx, svc.client, seedSpec{
		id: "q-pct-hard", category: "Arithmetic", subcategory: "Percentages",
		typeOfQuestion: "Percentage Change", band: models.BandHard, score: 4.2, pyq: 1.6,
	})
	seedEnrichedQuestion(t, ctx, svc.client, seedSpec{
		id: "q-avg-medium", category: "Arithmetic", subcategory: "Averages",
		typeOfQuestion: "Simple Averages", band: models.BandMedium, score: 2.8, pyq: 1.0,
	})

	t.Run("filters by subcategory", func(t *testing.T) {
		list, total, err := svc.questions.ListQuestions(ctx, QuestionFilters{Subcategory: "Percentages"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		for _, q := range list {
			assert.Equal(t, "Percentages", q.Subcategory)
		}
	})

	t.Run("filters by difficulty band", func(t *testing.T) {
		list, total, err := svc.questions.ListQuestions(ctx, QuestionFilters{DifficultyBand: "Hard"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, list, 1)
		assert.Equal(t, "q-pct-hard", list[0].ID)
	})

	t.Run("filters by frequency range", func(t *testing.T) {
		min, max := 0.8, 1.2
		list, total, err := svc.questions.ListQuestions(ctx, QuestionFilters{
			MinPYQFrequency: &min,
			MaxPYQFrequency: &max,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, list, 1)
		assert.Equal(t, "q-avg-medium", list[0].ID)
	})

	t.Run("range filters combine with band", func(t *testing.T) {
		min := 1.0
		_, total, err := svc.questions.ListQuestions(ctx, QuestionFilters{
			DifficultyBand:  "Hard",
			MinPYQFrequency: &min,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})
}

func TestQuestionService_ClaimNextPendingEnrichment(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()

	t.Run("returns nil when nothing is pending", func(t *testing.T) {
		q, err := svc.questions.ClaimNextPendingEnrichment(ctx, "pod-1")
		require.NoError(t, err)
		assert.Nil(t, q)
	})

	t.Run("claims the oldest pending question", func(t *testing.T) {
		for _, id := range []string{"q-claim-1", "q-claim-2"} {
			_, err := svc.questions.CreateQuestion(ctx, models.CreateQuestionRequest{
				QuestionID:  id,
				Stem:        "stem " + id,
				AdminAnswer: "1",
			})
			require.NoError(t, err)
		}

		claimed, err := svc.questions.ClaimNextPendingEnrichment(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, "q-claim-1", claimed.ID)
		assert.Equal(t, question.EnrichmentStatusEnriching, claimed.EnrichmentStatus)
		require.NotNil(t, claimed.PodID)
		assert.Equal(t, "pod-1", *claimed.PodID)
		assert.NotNil(t, claimed.LastEnrichmentAt)
	})

	t.Run("a second claim takes the next question", func(t *testing.T) {
		claimed, err := svc.questions.ClaimNextPendingEnrichment(ctx, "pod-2")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, "q-claim-2", claimed.ID)
	})
}

func TestQuestionService_Heartbeat(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()

	_, err := svc.questions.CreateQuestion(ctx, models.CreateQuestionRequest{
		QuestionID: "q-hb", Stem: "stem", AdminAnswer: "1",
	})
	require.NoError(t, err)
	claimed, err := svc.questions.ClaimNextPendingEnrichment(ctx, "pod-1")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	before := *claimed.LastEnrichmentAt

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, svc.questions.Heartbeat(ctx, "q-hb"))

	q, err := svc.questions.GetQuestion(ctx, "q-hb")
	require.NoError(t, err)
	require.NotNil(t, q.LastEnrichmentAt)
	assert.True(t, q.LastEnrichmentAt.After(before))

	assert.ErrorIs(t, svc.questions.Heartbeat(ctx, "no-such-question"), ErrNotFound)
}

func TestQuestionService_SaveEnrichment(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()

	create := func(id string) {
		_, err := svc.questions.CreateQuestion(ctx, models.CreateQuestionRequest{
			QuestionID: id, Stem: "stem " + id, AdminAnswer: "42",
		})
		require.NoError(t, err)
		claimed, err := svc.questions.ClaimNextPendingEnrichment(ctx, "pod-1")
		require.NoError(t, err)
		require.Equal(t, id, claimed.ID)
	}

	t.Run("gate pass activates the question", func(t *testing.T) {
		create("q-pass")

		q, err := svc.questions.SaveEnrichment(ctx, "q-pass", goodOutcome())
		require.NoError(t, err)

		assert.Equal(t, question.EnrichmentStatusCompleted, q.EnrichmentStatus)
		assert.True(t, q.IsActive)
		assert.True(t, q.QualityVerified)
		assert.Equal(t, "Arithmetic", q.Category)
		assert.Equal(t, "Percentages", q.Subcategory)
		assert.Equal(t, question.DifficultyBandEasy, q.DifficultyBand)
		assert.InDelta(t, 1.5, q.DifficultyScore, 0.001)
		require.NotNil(t, q.PyqFrequencyScore)
		assert.InDelta(t, 1.2, *q.PyqFrequencyScore, 0.001)
		assert.Equal(t, question.ConceptExtractionStatusCompleted, q.ConceptExtractionStatus)
		assert.NotNil(t, q.EnrichedAt)
		assert.Nil(t, q.PodID)
		assert.Empty(t, q.FailedChecks)
	})

	t.Run("gate failure completes but keeps the question inactive", func(t *testing.T) {
		create("q-gated")

		out := goodOutcome()
		out.QualityPassed = false
		out.FailedChecks = []string{"right_answer mismatches admin_answer"}

		q, err := svc.questions.SaveEnrichment(ctx, "q-gated", out)
		require.NoError(t, err)

		assert.Equal(t, question.EnrichmentStatusCompleted, q.EnrichmentStatus)
		assert.False(t, q.IsActive)
		assert.False(t, q.QualityVerified)
		assert.Equal(t, []string{"right_answer mismatches admin_answer"}, q.FailedChecks)
	})

	t.Run("unknown question", func(t *testing.T) {
		_, err := svc.questions.SaveEnrichment(ctx, "no-such-question", goodOutcome())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestQuestionService_SaveFailedEnrichment(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()

	_, err := svc.questions.CreateQuestion(ctx, models.CreateQuestionRequest{
		QuestionID: "q-fail", Stem: "stem", AdminAnswer: "42",
	})
	require.NoError(t, err)
	_, err = svc.questions.ClaimNextPendingEnrichment(ctx, "pod-1")
	require.NoError(t, err)

	// Only the stages that ran before the failure produced fields.
	partial := models.EnrichmentOutcome{
		RightAnswer: "42",
		Category:    "Arithmetic",
		Subcategory: "Percentages",
	}
	require.NoError(t, svc.questions.SaveFailedEnrichment(ctx, "q-fail", partial, "difficulty stage: provider timeout"))

	q, err := svc.questions.GetQuestion(ctx, "q-fail")
	require.NoError(t, err)
	assert.Equal(t, question.EnrichmentStatusFailed, q.EnrichmentStatus)
	assert.False(t, q.IsActive)
	require.NotNil(t, q.EnrichmentError)
	assert.Equal(t, "difficulty stage: provider timeout", *q.EnrichmentError)
	assert.Equal(t, "42", q.RightAnswer)
	assert.Equal(t, "Percentages", q.Subcategory)
	assert.Nil(t, q.PodID)
	// Stages that never ran left their fields untouched.
	assert.Empty(t, string(q.DifficultyBand))
}

func TestQuestionService_RequeueEnrichment(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()

	_, err := svc.questions.CreateQuestion(ctx, models.CreateQuestionRequest{
		QuestionID: "q-requeue", Stem: "stem", AdminAnswer: "1",
	})
	require.NoError(t, err)
	_, err = svc.questions.ClaimNextPendingEnrichment(ctx, "pod-1")
	require.NoError(t, err)
	require.NoError(t, svc.questions.MarkEnrichmentFailed(ctx, "q-requeue", "boom"))

	require.NoError(t, svc.questions.RequeueEnrichment(ctx, "q-requeue"))

	q, err := svc.questions.GetQuestion(ctx, "q-requeue")
	require.NoError(t, err)
	assert.Equal(t, question.EnrichmentStatusPending, q.EnrichmentStatus)
	assert.Nil(t, q.EnrichmentError)
	assert.Nil(t, q.PodID)
	assert.Nil(t, q.LastEnrichmentAt)

	assert.ErrorIs(t, svc.questions.RequeueEnrichment(ctx, "no-such-question"), ErrNotFound)
}

func TestQuestionService_EnrichmentQueueStats(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()

	for _, id := range []string{"q-s1", "q-s2", "q-s3"} {
		_, err := svc.questions.CreateQuestion(ctx, models.CreateQuestionRequest{
			QuestionID: id, Stem: "stem", AdminAnswer: "1",
		})
		require.NoError(t, err)
	}
	_, err := svc.questions.ClaimNextPendingEnrichment(ctx, "pod-1")
	require.NoError(t, err)
	require.NoError(t, svc.questions.MarkEnrichmentFailed(ctx, "q-s1", "boom"))
	_, err = svc.questions.ClaimNextPendingEnrichment(ctx, "pod-1")
	require.NoError(t, err)

	stats, err := svc.questions.EnrichmentQueueStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, QueueStats{Pending: 1, Enriching: 1, Failed: 1}, stats)
}

func TestQuestionService_OrphanRecovery(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()

	for _, id := range []string{"q-orphan", "q-live"} {
		_, err := svc.questions.CreateQuestion(ctx, models.CreateQuestionRequest{
			QuestionID: id, Stem: "stem", AdminAnswer: "1",
		})
		require.NoError(t, err)
		_, err = svc.questions.ClaimNextPendingEnrichment(ctx, "pod-dead")
		require.NoError(t, err)
	}

	// Back-date one claim past the heartbeat threshold.
	err := svc.client.Question.UpdateOneID("q-orphan").
		SetLastEnrichmentAt(time.Now().Add(-30 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	t.Run("finds stale claims only", func(t *testing.T) {
		orphans, err := svc.questions.FindOrphanedEnrichments(ctx, 5*time.Minute)
		require.NoError(t, err)
		require.Len(t, orphans, 1)
		assert.Equal(t, "q-orphan", orphans[0].ID)
	})

	t.Run("startup requeue releases all the pod's claims", func(t *testing.T) {
		count, err := svc.questions.RequeueOrphansForPod(ctx, "pod-dead")
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		stats, err := svc.questions.EnrichmentQueueStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Pending)
		assert.Zero(t, stats.Enriching)
	})
}

func TestQuestionService_ActiveCandidates(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()

	seedEnrichedQuestion(t, ctx, svc.client, seedSpec{
		id: "q-cand", category: "Algebra", subcategory: "Linear Equations",
		typeOfQuestion: "Single Variable", band: models.BandMedium, score: 2.8, pyq: 1.1,
	})
	// Unclassified pending uploads never reach the planner.
	_, err := svc.questions.CreateQuestion(ctx, models.CreateQuestionRequest{
		Stem: "pending", AdminAnswer: "1",
	})
	require.NoError(t, err)

	cands, err := svc.questions.ActiveCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, models.Candidate{
		QuestionID:        "q-cand",
		Category:          "Algebra",
		Subcategory:       "Linear Equations",
		TypeOfQuestion:    "Single Variable",
		Band:              models.BandMedium,
		DifficultyScore:   2.8,
		PYQFrequencyScore: 1.1,
	}, cands[0])
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepforge/quanta/ent/studysession"
	"github.com/prepforge/quanta/pkg/models"
)

func TestSessionService_PlanNext(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	seedQuestionBank(t, ctx, svc.client)

	t.Run("first session plans a cold start pack", func(t *testing.T) {
		resp, err := svc.sessions.PlanNext(ctx, models.PlanNextRequest{StudentID: "stu-1"})
		require.NoError(t, err)

		assert.Equal(t, "planned", resp.Status)
		assert.Equal(t, 1, resp.SessSeq)
		assert.Equal(t, models.PhaseA, resp.Phase)
		assert.Equal(t, models.SessionColdStart, resp.SessionType)
		require.NotNil(t, resp.ConstraintReport)
		assert.Equal(t, "stu-1:1", resp.ConstraintReport.Seed)
	})

	t.Run("replanning the same transition returns the stored plan", func(t *testing.T) {
		first, err := svc.sessions.PlanNext(ctx, models.PlanNextRequest{StudentID: "stu-1"})
		require.NoError(t, err)
		again, err := svc.sessions.PlanNext(ctx, models.PlanNextRequest{StudentID: "stu-1"})
		require.NoError(t, err)

		assert.Equal(t, "already_planned", again.Status)
		assert.Equal(t, first.SessionID, again.SessionID)
		assert.Equal(t, first.SessSeq, again.SessSeq)
	})

	t.Run("an explicit idempotency key pins the transition", func(t *testing.T) {
		first, err := svc.sessions.PlanNext(ctx, models.PlanNextRequest{
			StudentID:      "stu-key",
			IdempotencyKey: "retry-token-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "planned", first.Status)

		again, err := svc.sessions.PlanNext(ctx, models.PlanNextRequest{
			StudentID:      "stu-key",
			IdempotencyKey: "retry-token-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "already_planned", again.Status)
		assert.Equal(t, first.SessionID, again.SessionID)
	})

	t.Run("missing student id", func(t *testing.T) {
		_, err := svc.sessions.PlanNext(ctx, models.PlanNextRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_Lifecycle(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	seedQuestionBank(t, ctx, svc.client)

	resp, err := svc.sessions.PlanNext(ctx, models.PlanNextRequest{StudentID: "stu-flow"})
	require.NoError(t, err)
	sessionID := resp.SessionID

	t.Run("pack serves twelve positioned questions", func(t *testing.T) {
		pack, err := svc.sessions.GetPack(ctx, sessionID)
		require.NoError(t, err)

		assert.Equal(t, "planned", pack.Status)
		require.Len(t, pack.Pack, 12)
		ids := make(map[string]struct{})
		for i, entry := range pack.Pack {
			assert.Equal(t, i+1, entry.Position)
			assert.NotEmpty(t, entry.Stem)
			assert.NotEmpty(t, entry.Subcategory)
			assert.InDelta(t, 1.6, entry.PYQFrequencyScore, 0.001)
			ids[entry.QuestionID] = struct{}{}
		}
		assert.Len(t, ids, 12, "pack must not repeat questions")
	})

	t.Run("completing before serving is rejected", func(t *testing.T) {
		_, err := svc.sessions.Complete(ctx, models.SessionStatusRequest{
			StudentID: "stu-flow", SessionID: sessionID,
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("serving transitions the session and records coverage", func(t *testing.T) {
		session, err := svc.sessions.MarkServed(ctx, models.SessionStatusRequest{
			StudentID: "stu-flow", SessionID: sessionID,
		})
		require.NoError(t, err)
		assert.Equal(t, studysession.StatusServed, session.Status)
		assert.NotNil(t, session.ServedAt)

		seen, err := svc.coverage.Seen(ctx, "stu-flow")
		require.NoError(t, err)
		assert.NotEmpty(t, seen)
		for pair, count := range seen {
			assert.Equal(t, 1, count, "pair %s", pair)
		}
	})

	t.Run("serving again is a no-op and coverage holds", func(t *testing.T) {
		before, err := svc.coverage.Seen(ctx, "stu-flow")
		require.NoError(t, err)

		session, err := svc.sessions.MarkServed(ctx, models.SessionStatusRequest{
			StudentID: "stu-flow", SessionID: sessionID,
		})
		require.NoError(t, err)
		assert.Equal(t, studysession.StatusServed, session.Status)

		after, err := svc.coverage.Seen(ctx, "stu-flow")
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("completing a served session", func(t *testing.T) {
		session, err := svc.sessions.Complete(ctx, models.SessionStatusRequest{
			StudentID: "stu-flow", SessionID: sessionID,
		})
		require.NoError(t, err)
		assert.Equal(t, studysession.StatusCompleted, session.Status)
		assert.NotNil(t, session.CompletedAt)

		again, err := svc.sessions.Complete(ctx, models.SessionStatusRequest{
			StudentID: "stu-flow", SessionID: sessionID,
		})
		require.NoError(t, err)
		assert.Equal(t, studysession.StatusCompleted, again.Status)
	})

	t.Run("the next plan is adaptive", func(t *testing.T) {
		next, err := svc.sessions.PlanNext(ctx, models.PlanNextRequest{
			StudentID:     "stu-flow",
			LastSessionID: sessionID,
		})
		require.NoError(t, err)
		assert.Equal(t, "planned", next.Status)
		assert.Equal(t, 2, next.SessSeq)
		assert.Equal(t, models.SessionAdaptive, next.SessionType)
	})

	t.Run("another student cannot touch the session", func(t *testing.T) {
		_, err := svc.sessions.MarkServed(ctx, models.SessionStatusRequest{
			StudentID: "intruder", SessionID: sessionID,
		})
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = svc.sessions.Complete(ctx, models.SessionStatusRequest{
			StudentID: "intruder", SessionID: sessionID,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := svc.sessions.GetSession(ctx, "no-such-session")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = svc.sessions.GetPack(ctx, "no-such-session")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSessionService_ServingHistory(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	seedQuestionBank(t, ctx, svc.client)

	resp, err := svc.sessions.PlanNext(ctx, models.PlanNextRequest{StudentID: "stu-hist"})
	require.NoError(t, err)
	_, err = svc.sessions.MarkServed(ctx, models.SessionStatusRequest{
		StudentID: "stu-hist", SessionID: resp.SessionID,
	})
	require.NoError(t, err)

	t.Run("recent question ids cover the served pack", func(t *testing.T) {
		ids, err := svc.sessions.RecentQuestionIDs(ctx, "stu-hist", 3)
		require.NoError(t, err)
		assert.Len(t, ids, 12)

		none, err := svc.sessions.RecentQuestionIDs(ctx, "stu-hist", 0)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("last served times are inside the cooldown window", func(t *testing.T) {
		servedAt, err := svc.sessions.LastServedAt(ctx, "stu-hist", 24*time.Hour)
		require.NoError(t, err)
		assert.Len(t, servedAt, 12)
	})
}

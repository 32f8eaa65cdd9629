package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepforge/quanta/pkg/llm"
)

func TestAuditService_RecordLLMCall(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()

	svc.audits.RecordLLMCall(ctx, llm.CallRecord{
		Op:           "classification",
		Subject:      "q-audit",
		Provider:     "openai",
		Model:        "gpt-4o",
		Attempt:      1,
		DurationMS:   820,
		InputTokens:  1200,
		OutputTokens: 150,
	})
	svc.audits.RecordLLMCall(ctx, llm.CallRecord{
		Op:          "difficulty",
		Subject:     "q-audit",
		Provider:    "anthropic",
		Model:       "claude-3-5-haiku-latest",
		Attempt:     2,
		RateLimited: true,
		DurationMS:  15000,
		Err:         errors.New("rate limited after retries"),
	})

	audits, err := svc.audits.ListAudits(ctx, "q-audit")
	require.NoError(t, err)
	require.Len(t, audits, 2)

	// Oldest first.
	assert.Equal(t, "classification", audits[0].Stage)
	assert.Equal(t, "openai", audits[0].Provider)
	require.NotNil(t, audits[0].InputTokens)
	assert.Equal(t, 1200, *audits[0].InputTokens)
	assert.Nil(t, audits[0].ErrorMessage)

	assert.Equal(t, "difficulty", audits[1].Stage)
	assert.True(t, audits[1].RateLimited)
	require.NotNil(t, audits[1].ErrorMessage)
	assert.Equal(t, "rate limited after retries", *audits[1].ErrorMessage)

	other, err := svc.audits.ListAudits(ctx, "some-other-question")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestAuditService_PurgeOldAudits(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()

	// created_at is immutable, so the aged row is inserted directly.
	err := svc.client.EnrichmentAudit.Create().
		SetID(uuid.New().String()).
		SetQuestionID("q-old").
		SetStage("classification").
		SetProvider("openai").
		SetModelName("gpt-4o").
		SetAttempt(1).
		SetDurationMs(900).
		SetCreatedAt(time.Now().Add(-120 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc.audits.RecordLLMCall(ctx, llm.CallRecord{
		Op: "classification", Subject: "q-new", Provider: "openai", Model: "gpt-4o", Attempt: 1,
	})

	t.Run("removes rows past retention only", func(t *testing.T) {
		purged, err := svc.audits.PurgeOldAudits(ctx, 90)
		require.NoError(t, err)
		assert.Equal(t, 1, purged)

		old, err := svc.audits.ListAudits(ctx, "q-old")
		require.NoError(t, err)
		assert.Empty(t, old)

		fresh, err := svc.audits.ListAudits(ctx, "q-new")
		require.NoError(t, err)
		assert.Len(t, fresh, 1)
	})

	t.Run("retention must be positive", func(t *testing.T) {
		_, err := svc.audits.PurgeOldAudits(ctx, 0)
		assert.Error(t, err)
	})
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/prepforge/quanta/ent"
	"github.com/prepforge/quanta/ent/enrichmentaudit"
	"github.com/prepforge/quanta/pkg/llm"
)

// AuditService persists one row per LLM round-trip. It implements the
// gateway's audit sink; persistence failures are logged and swallowed so
// auditing never breaks an enrichment run.
type AuditService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewAuditService creates a new AuditService
func NewAuditService(client *ent.Client, logger *slog.Logger) *AuditService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditService{
		client: client,
		logger: logger.With("component", "audit_service"),
	}
}

// RecordLLMCall stores one gateway call record.
func (s *AuditService) RecordLLMCall(ctx context.Context, rec llm.CallRecord) {
	// The record must survive the caller's context being cancelled.
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.EnrichmentAudit.Create().
		SetID(uuid.New().String()).
		SetQuestionID(rec.Subject).
		SetStage(rec.Op).
		SetProvider(rec.Provider).
		SetModelName(rec.Model).
		SetAttempt(rec.Attempt).
		SetRateLimited(rec.RateLimited).
		SetDurationMs(int(rec.DurationMS)).
		SetInputTokens(rec.InputTokens).
		SetOutputTokens(rec.OutputTokens)

	if rec.Err != nil {
		builder.SetErrorMessage(rec.Err.Error())
	}

	if err := builder.Exec(writeCtx); err != nil {
		s.logger.Warn("failed to persist LLM audit record",
			"question_id", rec.Subject, "stage", rec.Op, "error", err)
	}
}

// ListAudits returns the audit trail for one question, oldest first
func (s *AuditService) ListAudits(ctx context.Context, questionID string) ([]*ent.EnrichmentAudit, error) {
	audits, err := s.client.EnrichmentAudit.Query().
		Where(enrichmentaudit.QuestionID(questionID)).
		Order(ent.Asc(enrichmentaudit.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audits: %w", err)
	}
	return audits, nil
}

// PurgeOldAudits deletes audit rows older than the retention period
func (s *AuditService) PurgeOldAudits(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}
	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.EnrichmentAudit.Delete().
		Where(enrichmentaudit.CreatedAtLT(cutoff)).
		Exec(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge audits: %w", err)
	}
	return count, nil
}

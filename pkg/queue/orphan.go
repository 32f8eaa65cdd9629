package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/prepforge/quanta/pkg/services"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu              sync.Mutex
	lastOrphanScan  time.Time
	orphansRequeued int
}

// runOrphanDetection periodically scans for questions whose claiming
// worker stopped heartbeating. All pods run this independently; the
// requeue operation is idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRequeueOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRequeueOrphans finds "enriching" questions with stale
// heartbeats and puts them back in the pending queue. Enrichment is
// idempotent per question, so a requeued question is simply re-run.
func (p *WorkerPool) detectAndRequeueOrphans(ctx context.Context) error {
	orphans, err := p.questions.FindOrphanedEnrichments(ctx, p.config.OrphanThreshold)
	if err != nil {
		return fmt.Errorf("failed to query orphaned enrichments: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned enrichments", "count", len(orphans))

	requeued := 0
	for _, q := range orphans {
		podID := "unknown"
		if q.PodID != nil {
			podID = *q.PodID
		}
		if err := p.questions.RequeueEnrichment(ctx, q.ID); err != nil {
			slog.Error("Failed to requeue orphaned question",
				"question_id", q.ID,
				"old_pod_id", podID,
				"error", err)
			continue
		}
		slog.Warn("Orphaned question requeued", "question_id", q.ID, "old_pod_id", podID)
		requeued++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRequeued += requeued
	p.orphans.mu.Unlock()

	return nil
}

// CleanupStartupOrphans requeues questions claimed by this pod before a
// previous crash. Called once during startup, before the worker pool
// begins processing.
func CleanupStartupOrphans(ctx context.Context, questions *services.QuestionService, podID string) error {
	count, err := questions.RequeueOrphansForPod(ctx, podID)
	if err != nil {
		return fmt.Errorf("failed to requeue startup orphans: %w", err)
	}
	if count > 0 {
		slog.Warn("Requeued startup orphans from previous run",
			"pod_id", podID,
			"count", count)
	}
	return nil
}

package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/prepforge/quanta/pkg/config"
	"github.com/prepforge/quanta/pkg/services"
)

// WorkerPool manages a pool of enrichment workers.
type WorkerPool struct {
	podID     string
	questions *services.QuestionService
	config    *config.QueueConfig
	executor  QuestionExecutor
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Claim cancel registry: question_id → cancel function
	activeClaims map[string]context.CancelFunc
	mu           sync.RWMutex
	started      bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, questions *services.QuestionService, cfg *config.QueueConfig, executor QuestionExecutor) *WorkerPool {
	return &WorkerPool{
		podID:        podID,
		questions:    questions,
		config:       cfg,
		executor:     executor,
		workers:      make([]*Worker, 0, cfg.WorkerCount),
		stopCh:       make(chan struct{}),
		activeClaims: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the orphan detection background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting enrichment worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.questions, p.config, p.executor, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current questions before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveClaimIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active enrichments to complete",
			"count", len(active),
			"question_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterClaim stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterClaim(questionID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeClaims[questionID] = cancel
}

// UnregisterClaim removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterClaim(questionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeClaims, questionID)
}

// CancelClaim triggers context cancellation for a question on this pod.
// Returns true if the question was found and cancelled on this pod.
func (p *WorkerPool) CancelClaim(questionID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeClaims[questionID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	stats, err := p.questions.EnrichmentQueueStats(ctx)
	if err != nil {
		slog.Error("Failed to query queue stats for health check",
			"pod_id", p.podID,
			"error", err)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		ws := worker.Health()
		workerStats[i] = ws
		if ws.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := err == nil
	isHealthy := len(p.workers) > 0 && stats.Enriching <= p.config.MaxConcurrentEnrichments && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRequeued := p.orphans.orphansRequeued
	p.orphans.mu.Unlock()

	var dbError string
	if err != nil {
		dbError = fmt.Sprintf("queue stats query failed: %v", err)
	}

	return &PoolHealth{
		IsHealthy:       isHealthy,
		DBReachable:     dbHealthy,
		DBError:         dbError,
		PodID:           p.podID,
		ActiveWorkers:   activeWorkers,
		TotalWorkers:    len(p.workers),
		ActiveQuestions: stats.Enriching,
		MaxConcurrent:   p.config.MaxConcurrentEnrichments,
		QueueDepth:      stats.Pending,
		FailedQuestions: stats.Failed,
		WorkerStats:     workerStats,
		LastOrphanScan:  lastOrphanScan,
		OrphansRequeued: orphansRequeued,
	}
}

// getActiveClaimIDs returns IDs of questions currently being enriched (for logging).
func (p *WorkerPool) getActiveClaimIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeClaims))
	for id := range p.activeClaims {
		ids = append(ids, id)
	}
	return ids
}

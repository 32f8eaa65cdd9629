package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/prepforge/quanta/pkg/config"
	"github.com/prepforge/quanta/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and enriches questions.
type Worker struct {
	id        string
	podID     string
	questions *services.QuestionService
	config    *config.QueueConfig
	executor  QuestionExecutor
	pool      ClaimRegistry
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu                 sync.RWMutex
	status             WorkerStatus
	currentQuestionID  string
	questionsProcessed int
	lastActivity       time.Time
}

// ClaimRegistry is the subset of WorkerPool used by Worker for claim registration.
type ClaimRegistry interface {
	RegisterClaim(questionID string, cancel context.CancelFunc)
	UnregisterClaim(questionID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, questions *services.QuestionService, cfg *config.QueueConfig, executor QuestionExecutor, pool ClaimRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		questions:    questions,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                 w.id,
		Status:             string(w.status),
		CurrentQuestionID:  w.currentQuestionID,
		QuestionsProcessed: w.questionsProcessed,
		LastActivity:       w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoQuestionsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error enriching question", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// pollInterval returns the poll interval with jitter, so workers across
// replicas do not stampede the claim query in lockstep.
func (w *Worker) pollInterval() time.Duration {
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return w.config.PollInterval
	}
	offset := time.Duration(rand.Int64N(int64(2*jitter))) - jitter
	return w.config.PollInterval + offset
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a question, and enriches it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check (best-effort; racy with concurrent workers but
	// bounded by WorkerCount and mitigated by poll jitter).
	stats, err := w.questions.EnrichmentQueueStats(ctx)
	if err != nil {
		return fmt.Errorf("checking queue stats: %w", err)
	}
	if stats.Enriching >= w.config.MaxConcurrentEnrichments {
		return ErrAtCapacity
	}

	q, err := w.questions.ClaimNextPendingEnrichment(ctx, w.podID)
	if err != nil {
		return err
	}
	if q == nil {
		return ErrNoQuestionsAvailable
	}

	log := slog.With("question_id", q.ID, "worker_id", w.id)
	log.Info("Question claimed")

	w.setStatus(WorkerStatusWorking, q.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	enrichCtx, cancelEnrich := context.WithTimeout(ctx, w.config.EnrichmentTimeout)
	defer cancelEnrich()

	w.pool.RegisterClaim(q.ID, cancelEnrich)
	defer w.pool.UnregisterClaim(q.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(enrichCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, q.ID)

	result := w.executor.Execute(enrichCtx, q)
	cancelHeartbeat()

	if result == nil {
		result = &ExecutionResult{Err: fmt.Errorf("executor returned nil result")}
	}
	if result.Err == nil && errors.Is(enrichCtx.Err(), context.DeadlineExceeded) {
		result.Err = fmt.Errorf("enrichment timed out after %v", w.config.EnrichmentTimeout)
	}

	w.mu.Lock()
	w.questionsProcessed++
	w.mu.Unlock()

	if result.Err != nil {
		log.Warn("Enrichment failed", "error", result.Err)
		return nil
	}

	passed := result.Outcome != nil && result.Outcome.QualityPassed
	log.Info("Enrichment complete", "quality_passed", passed)
	return nil
}

// runHeartbeat periodically refreshes the claim timestamp for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, questionID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.questions.Heartbeat(ctx, questionID); err != nil {
				slog.Warn("Heartbeat update failed", "question_id", questionID, "error", err)
			}
		}
	}
}

func (w *Worker) setStatus(status WorkerStatus, questionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentQuestionID = questionID
	w.lastActivity = time.Now()
}

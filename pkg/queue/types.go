// Package queue provides the enrichment work queue: a pool of workers
// that claim pending questions, run the enrichment pipeline, and keep
// claims alive via heartbeats.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/prepforge/quanta/ent"
	"github.com/prepforge/quanta/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrNoQuestionsAvailable indicates no pending questions are in the queue.
	ErrNoQuestionsAvailable = errors.New("no questions available")

	// ErrAtCapacity indicates the global concurrent enrichment limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// QuestionExecutor runs the enrichment pipeline for one claimed question
// and persists the result. The worker only handles claiming, heartbeat,
// and failure bookkeeping around it.
type QuestionExecutor interface {
	Execute(ctx context.Context, q *ent.Question) *ExecutionResult
}

// ExecutionResult is the terminal state of one enrichment run. The
// executor has already persisted the derived fields; this is for worker
// bookkeeping and logging.
type ExecutionResult struct {
	Outcome *models.EnrichmentOutcome
	Err     error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveQuestions  int            `json:"active_questions"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	FailedQuestions  int            `json:"failed_questions"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRequeued  int            `json:"orphans_requeued"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                 string    `json:"id"`
	Status             string    `json:"status"` // "idle" or "working"
	CurrentQuestionID  string    `json:"current_question_id,omitempty"`
	QuestionsProcessed int       `json:"questions_processed"`
	LastActivity       time.Time `json:"last_activity"`
}

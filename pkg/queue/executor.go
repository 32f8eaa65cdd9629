package queue

import (
	"context"
	"log/slog"

	"github.com/prepforge/quanta/ent"
	"github.com/prepforge/quanta/pkg/enrich"
	"github.com/prepforge/quanta/pkg/services"
)

// Executor runs the enrichment pipeline for claimed questions and
// persists outcomes through the question service. Failures persist
// whatever was derived before the failing stage; the question never
// activates on a failure path.
type Executor struct {
	pipeline  *enrich.Pipeline
	questions *services.QuestionService
	logger    *slog.Logger
}

// NewExecutor creates an enrichment executor.
func NewExecutor(pipeline *enrich.Pipeline, questions *services.QuestionService, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		pipeline:  pipeline,
		questions: questions,
		logger:    logger.With("component", "enrichment_executor"),
	}
}

// Execute runs the pipeline for one question and writes the terminal
// state. The returned result is bookkeeping for the worker; persistence
// already happened here, on a background context so a cancelled claim
// still records its failure.
func (e *Executor) Execute(ctx context.Context, q *ent.Question) *ExecutionResult {
	input := enrich.Question{
		ID:          q.ID,
		Stem:        q.Stem,
		AdminAnswer: q.AdminAnswer,
	}
	if q.AdminSolution != "" {
		input.AdminSolution = q.AdminSolution
	}
	if q.PrincipleToRemember != nil {
		input.PrincipleToRemember = *q.PrincipleToRemember
	}

	outcome, err := e.pipeline.Run(ctx, input)
	if err != nil {
		if saveErr := e.questions.SaveFailedEnrichment(context.Background(), q.ID, outcome, err.Error()); saveErr != nil {
			e.logger.Error("Failed to persist enrichment failure",
				"question_id", q.ID, "error", saveErr)
		}
		return &ExecutionResult{Outcome: &outcome, Err: err}
	}

	if _, saveErr := e.questions.SaveEnrichment(ctx, q.ID, outcome); saveErr != nil {
		e.logger.Error("Failed to persist enrichment outcome",
			"question_id", q.ID, "error", saveErr)
		return &ExecutionResult{Outcome: &outcome, Err: saveErr}
	}

	return &ExecutionResult{Outcome: &outcome}
}

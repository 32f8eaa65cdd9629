// Package enrich implements the per-question enrichment pipeline: a
// linear five-stage state machine that turns a raw upload into a
// quality-verified, canonically classified record, or refuses to
// activate it.
package enrich

import (
	"context"
	"fmt"

	"github.com/prepforge/quanta/pkg/llm"
)

// Stage names, recorded in audit rows and failure messages.
const (
	StageAnalysis       = "analysis"
	StageCanonicalMatch = "canonical_match"
	StageReconcile      = "difficulty_reconcile"
	StagePYQFrequency   = "pyq_frequency"
	StageQualityGate    = "quality_gate"
)

// Failure kinds.
const (
	KindTransport  = "transport"
	KindParse      = "parse"
	KindInvalid    = "invalid"
	KindUnresolved = "unresolved"
)

// StageError is a terminal pipeline failure attributed to one stage.
// Derived fields produced before the failure are still persisted by the
// caller; the question simply never activates.
type StageError struct {
	Stage string
	Kind  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("enrichment stage %s failed (%s): %v", e.Stage, e.Kind, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Question is the pipeline's input: the admin-owned content only.
type Question struct {
	ID                  string
	Stem                string
	AdminAnswer         string
	AdminSolution       string
	PrincipleToRemember string
}

// PYQRef is one qualifying-pool member as the frequency prompt sees it.
type PYQRef struct {
	Stem             string
	ProblemStructure string
	ConceptKeywords  []string
}

// PYQSource supplies the qualifying pool for frequency scoring.
type PYQSource interface {
	QualifyingPool(ctx context.Context, category, subcategory string) ([]PYQRef, error)
}

// Completer is the slice of the LLM gateway the pipeline needs.
type Completer interface {
	CompleteJSON(ctx context.Context, req llm.Request, out any) error
}

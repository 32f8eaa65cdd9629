package quality

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prepforge/quanta/pkg/llm"
	"github.com/prepforge/quanta/pkg/taxonomy"
)

// Verdict is the semantic answer-match outcome.
type Verdict string

const (
	VerdictMatch   Verdict = "MATCH"
	VerdictNoMatch Verdict = "NO_MATCH"
)

// Result is the gate outcome for one record.
type Result struct {
	Passed       bool
	FailedChecks []string
	// AnswerMatch is empty when the semantic check was not run (structural
	// failure short-circuits it).
	AnswerMatch Verdict
}

// Completer is the slice of the LLM gateway the verifier needs.
type Completer interface {
	CompleteJSON(ctx context.Context, req llm.Request, out any) error
}

// Verifier runs the activation gate.
type Verifier struct {
	tax         *taxonomy.Taxonomy
	client      Completer
	temperature float32
	logger      *slog.Logger
}

// NewVerifier builds a verifier over the canonical taxonomy and gateway.
func NewVerifier(tax *taxonomy.Taxonomy, client Completer) *Verifier {
	return &Verifier{
		tax:         tax,
		client:      client,
		temperature: 0.1,
		logger:      slog.Default().With("component", "quality_verifier"),
	}
}

const answerMatchSystem = `You judge whether two answers to the same quantitative aptitude question denote the same mathematical value. Tolerate unit labels, formatting, and equivalent fractions or decimals. Return JSON only, no prose, no code fences.`

const answerMatchUserTmpl = `Question:
%s

Answer A (provided by the content team): %q
Answer B (derived during classification): %q

Do A and B denote the same mathematical value? Respond with exactly this JSON object:
{"verdict": "MATCH"} or {"verdict": "NO_MATCH"}`

type answerMatchResponse struct {
	Verdict string `json:"verdict"`
}

// Verify runs the structural checks and, when they pass, the semantic
// answer match. The returned error is non-nil only for LLM transport
// failures; a clean NO_MATCH is a normal gate rejection, not an error.
func (v *Verifier) Verify(ctx context.Context, rec Record) (Result, error) {
	failed := StructuralChecks(v.tax, rec)
	if !rec.ExtractionCompleted {
		failed = append(failed, CheckExtractionCompleted)
	}
	if len(failed) > 0 {
		v.logger.Info("quality gate rejected question on structural checks",
			"question_id", rec.QuestionID, "failed", failed)
		return Result{Passed: false, FailedChecks: failed}, nil
	}

	verdict, err := v.matchAnswers(ctx, rec)
	if err != nil {
		return Result{}, err
	}
	if verdict != VerdictMatch {
		v.logger.Info("quality gate rejected question on answer match",
			"question_id", rec.QuestionID,
			"admin_answer", rec.AdminAnswer, "right_answer", rec.RightAnswer)
		return Result{
			Passed:       false,
			FailedChecks: []string{CheckAnswerMatch},
			AnswerMatch:  verdict,
		}, nil
	}

	return Result{Passed: true, AnswerMatch: VerdictMatch}, nil
}

func (v *Verifier) matchAnswers(ctx context.Context, rec Record) (Verdict, error) {
	var resp answerMatchResponse
	req := llm.Request{
		Op:          "answer_match",
		Subject:     rec.QuestionID,
		System:      answerMatchSystem,
		User:        fmt.Sprintf(answerMatchUserTmpl, rec.Stem, rec.AdminAnswer, rec.RightAnswer),
		Temperature: v.temperature,
	}
	if err := v.client.CompleteJSON(ctx, req, &resp); err != nil {
		return "", fmt.Errorf("answer match call failed: %w", err)
	}
	switch strings.ToUpper(strings.TrimSpace(resp.Verdict)) {
	case string(VerdictMatch):
		return VerdictMatch, nil
	case string(VerdictNoMatch):
		return VerdictNoMatch, nil
	default:
		return "", fmt.Errorf("answer match returned unrecognized verdict %q", resp.Verdict)
	}
}

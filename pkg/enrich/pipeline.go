package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prepforge/quanta/pkg/llm"
	"github.com/prepforge/quanta/pkg/models"
	"github.com/prepforge/quanta/pkg/quality"
	"github.com/prepforge/quanta/pkg/taxonomy"
)

// DefaultFrequencyScore is stored when frequency scoring is skipped:
// either the question is too easy to bother (score at or under the
// threshold) or the qualifying pool is empty.
const DefaultFrequencyScore = 0.5

// FrequencyScoreThreshold gates stage 4: only questions strictly above it
// get a frequency call.
const FrequencyScoreThreshold = 1.5

// Pipeline runs the five enrichment stages for one question.
type Pipeline struct {
	client   Completer
	tax      *taxonomy.Taxonomy
	resolver *taxonomy.Resolver
	verifier *quality.Verifier
	pyq      PYQSource

	maxTokens   int
	temperature float32
	logger      *slog.Logger
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithMaxTokens sets the completion budget for analysis calls.
func WithMaxTokens(n int) Option {
	return func(p *Pipeline) { p.maxTokens = n }
}

// WithTemperature sets the sampling temperature for analysis calls.
func WithTemperature(t float32) Option {
	return func(p *Pipeline) { p.temperature = t }
}

// WithLogger sets the pipeline logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// New builds a pipeline over the gateway, taxonomy and PYQ pool.
func New(client Completer, tax *taxonomy.Taxonomy, pyq PYQSource, opts ...Option) *Pipeline {
	if tax == nil {
		tax = taxonomy.Builtin()
	}
	p := &Pipeline{
		client:      client,
		tax:         tax,
		resolver:    taxonomy.NewResolver(tax, client),
		verifier:    quality.NewVerifier(tax, client),
		pyq:         pyq,
		maxTokens:   2048,
		temperature: 0.1,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With("component", "enrich_pipeline")
	return p
}

type analysisResponse struct {
	RightAnswer        string              `json:"right_answer"`
	Category           string              `json:"category"`
	Subcategory        string              `json:"subcategory"`
	TypeOfQuestion     string              `json:"type_of_question"`
	DifficultyBand     string              `json:"difficulty_band"`
	DifficultyScore    float64             `json:"difficulty_score"`
	CoreConcepts       []string            `json:"core_concepts"`
	SolutionMethod     string              `json:"solution_method"`
	ConceptDifficulty  map[string][]string `json:"concept_difficulty"`
	OperationsRequired []string            `json:"operations_required"`
	ProblemStructure   string              `json:"problem_structure"`
	ConceptKeywords    []string            `json:"concept_keywords"`
}

type frequencyResponse struct {
	PYQFrequencyScore float64 `json:"pyq_frequency_score"`
}

// Run executes all five stages. On a stage failure the returned outcome
// still carries every derived field produced so far, so callers can
// persist partial progress; the outcome never has QualityPassed set on a
// failure path. A gate rejection is a normal outcome, not an error.
func (p *Pipeline) Run(ctx context.Context, q Question) (models.EnrichmentOutcome, error) {
	var out models.EnrichmentOutcome

	// Stage 1: consolidated analysis.
	analysis, err := p.analyze(ctx, q)
	if err != nil {
		return out, err
	}
	out.RightAnswer = analysis.RightAnswer
	out.CoreConcepts = analysis.CoreConcepts
	out.SolutionMethod = analysis.SolutionMethod
	out.ConceptDifficulty = analysis.ConceptDifficulty
	out.OperationsRequired = analysis.OperationsRequired
	out.ProblemStructure = analysis.ProblemStructure
	out.ConceptKeywords = analysis.ConceptKeywords
	out.ExtractionCompleted = len(analysis.CoreConcepts) > 0

	// Stage 2: canonical matching.
	triple, err := p.resolver.Resolve(ctx, q.ID, q.Stem, taxonomy.Triple{
		Category:       analysis.Category,
		Subcategory:    analysis.Subcategory,
		TypeOfQuestion: analysis.TypeOfQuestion,
	})
	if err != nil {
		kind := KindTransport
		if errors.Is(err, taxonomy.ErrUnresolved) {
			kind = KindUnresolved
		}
		return out, &StageError{Stage: StageCanonicalMatch, Kind: kind, Err: err}
	}
	out.Category = triple.Category
	out.Subcategory = triple.Subcategory
	out.TypeOfQuestion = triple.TypeOfQuestion

	// Stage 3: band-score reconciliation.
	band, score, err := reconcile(analysis.DifficultyBand, analysis.DifficultyScore)
	if err != nil {
		return out, &StageError{Stage: StageReconcile, Kind: KindInvalid, Err: err}
	}
	out.Band = band
	out.Score = score

	// Stage 4: PYQ frequency scoring.
	freq, err := p.scoreFrequency(ctx, q, out)
	if err != nil {
		return out, err
	}
	out.PYQFrequencyScore = &freq

	// Stage 5: quality gate.
	result, err := p.verifier.Verify(ctx, quality.Record{
		QuestionID:          q.ID,
		Stem:                q.Stem,
		AdminAnswer:         q.AdminAnswer,
		AdminSolution:       q.AdminSolution,
		PrincipleToRemember: q.PrincipleToRemember,
		RightAnswer:         out.RightAnswer,
		Category:            out.Category,
		Subcategory:         out.Subcategory,
		TypeOfQuestion:      out.TypeOfQuestion,
		Band:                out.Band,
		Score:               out.Score,
		PYQFrequencyScore:   out.PYQFrequencyScore,
		CoreConcepts:        out.CoreConcepts,
		SolutionMethod:      out.SolutionMethod,
		ConceptDifficulty:   out.ConceptDifficulty,
		OperationsRequired:  out.OperationsRequired,
		ProblemStructure:    out.ProblemStructure,
		ConceptKeywords:     out.ConceptKeywords,
		ExtractionCompleted: out.ExtractionCompleted,
	})
	if err != nil {
		return out, &StageError{Stage: StageQualityGate, Kind: KindTransport, Err: err}
	}
	out.QualityPassed = result.Passed
	out.FailedChecks = result.FailedChecks

	p.logger.Info("enrichment pipeline finished",
		"question_id", q.ID,
		"category", out.Category,
		"band", out.Band,
		"quality_passed", out.QualityPassed,
		"failed_checks", len(out.FailedChecks))
	return out, nil
}

func (p *Pipeline) analyze(ctx context.Context, q Question) (analysisResponse, error) {
	var resp analysisResponse
	err := p.client.CompleteJSON(ctx, llm.Request{
		Op:          StageAnalysis,
		Subject:     q.ID,
		System:      analysisSystem,
		User:        analysisUser(p.tax.PromptBlock(), q),
		MaxTokens:   p.maxTokens,
		Temperature: p.temperature,
	}, &resp)
	if err != nil {
		kind := KindTransport
		var pe *llm.ParseError
		if errors.As(err, &pe) {
			kind = KindParse
		}
		return resp, &StageError{Stage: StageAnalysis, Kind: kind, Err: err}
	}

	if resp.RightAnswer == "" {
		return resp, &StageError{Stage: StageAnalysis, Kind: KindInvalid,
			Err: errors.New("analysis returned empty right_answer")}
	}
	if resp.DifficultyScore < 1.0 || resp.DifficultyScore > 5.0 {
		return resp, &StageError{Stage: StageAnalysis, Kind: KindInvalid,
			Err: fmt.Errorf("difficulty_score %.2f outside [1.0, 5.0]", resp.DifficultyScore)}
	}
	return resp, nil
}

// reconcile enforces the band/score alignment invariant. The band wins:
// a score outside the band's range is replaced by the band midpoint. An
// invalid band fails the stage.
func reconcile(rawBand string, score float64) (models.Band, float64, error) {
	band := models.Band(rawBand)
	if !band.Valid() {
		return "", 0, fmt.Errorf("invalid difficulty_band %q", rawBand)
	}
	if !band.ContainsScore(score) {
		return band, band.MidpointScore(), nil
	}
	return band, score, nil
}

// scoreFrequency implements stage 4. Questions at or under the score
// threshold default without a call; so does an empty qualifying pool.
// Otherwise the full pool goes into one comparison prompt and the raw
// returned score is stored as-is.
func (p *Pipeline) scoreFrequency(ctx context.Context, q Question, out models.EnrichmentOutcome) (float64, error) {
	if out.Score <= FrequencyScoreThreshold {
		return DefaultFrequencyScore, nil
	}

	pool, err := p.pyq.QualifyingPool(ctx, out.Category, out.Subcategory)
	if err != nil {
		return 0, &StageError{Stage: StagePYQFrequency, Kind: KindTransport, Err: err}
	}
	if len(pool) == 0 {
		p.logger.Info("empty qualifying pool, defaulting frequency score",
			"question_id", q.ID, "category", out.Category, "subcategory", out.Subcategory)
		return DefaultFrequencyScore, nil
	}

	var resp frequencyResponse
	err = p.client.CompleteJSON(ctx, llm.Request{
		Op:          StagePYQFrequency,
		Subject:     q.ID,
		System:      frequencySystem,
		User:        frequencyUser(q.Stem, out.ProblemStructure, out.ConceptKeywords, pool),
		MaxTokens:   256,
		Temperature: p.temperature,
	}, &resp)
	if err != nil {
		kind := KindTransport
		var pe *llm.ParseError
		if errors.As(err, &pe) {
			kind = KindParse
		}
		return 0, &StageError{Stage: StagePYQFrequency, Kind: kind, Err: err}
	}
	if resp.PYQFrequencyScore < 0 {
		return 0, &StageError{Stage: StagePYQFrequency, Kind: KindInvalid,
			Err: fmt.Errorf("negative frequency score %.2f", resp.PYQFrequencyScore)}
	}
	return resp.PYQFrequencyScore, nil
}

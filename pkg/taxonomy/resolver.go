package taxonomy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prepforge/quanta/pkg/llm"
)

// ErrUnresolved is returned when neither semantic matching nor independent
// field matching can place a triple in the canonical tree.
var ErrUnresolved = errors.New("taxonomy: no canonical match")

// Completer is the slice of the LLM gateway the resolver needs.
type Completer interface {
	CompleteJSON(ctx context.Context, req llm.Request, out any) error
}

// Resolver maps free-text classification labels onto canonical taxonomy
// paths using the three-step policy: direct normalization, context-aware
// semantic match, then independent subcategory/type match with the
// deterministic category lookup.
type Resolver struct {
	tax         *Taxonomy
	client      Completer
	temperature float32
	logger      *slog.Logger
}

// NewResolver builds a resolver over the given tree and gateway.
func NewResolver(tax *Taxonomy, client Completer) *Resolver {
	return &Resolver{
		tax:         tax,
		client:      client,
		temperature: 0.1,
		logger:      slog.Default().With("component", "taxonomy_resolver"),
	}
}

const semanticMatchSystem = `You map classification labels for CAT quantitative aptitude questions onto a fixed canonical taxonomy. You never invent labels that are not in the taxonomy. Return JSON only, no prose, no code fences.`

const semanticMatchUserTmpl = `Canonical taxonomy (category, then "subcategory: types"):
%s
A classifier produced these labels for the question below:
  category: %q
  subcategory: %q
  type_of_question: %q

Question:
%s

Choose the canonical (category, subcategory, type_of_question) path that best matches the question and the produced labels. Use the question text to disambiguate. If no canonical value fits a field, use "" for that field. Respond with exactly this JSON object:
{"category": "...", "subcategory": "...", "type_of_question": "..."}`

type semanticMatchResponse struct {
	Category       string `json:"category"`
	Subcategory    string `json:"subcategory"`
	TypeOfQuestion string `json:"type_of_question"`
}

// Resolve canonicalizes the free triple for the given question stem.
// questionID is carried only for audit records.
func (r *Resolver) Resolve(ctx context.Context, questionID, stem string, free Triple) (Triple, error) {
	// Step 0: the labels may already be canonical up to spelling.
	if triple, ok := r.tax.Normalize(free.Category, free.Subcategory, free.TypeOfQuestion); ok {
		return triple, nil
	}
	if triple, ok := r.tax.CategoryFor(free.Subcategory, free.TypeOfQuestion); ok {
		return triple, nil
	}

	// Step a/b: context-aware semantic match with the question in view.
	var matched semanticMatchResponse
	req := llm.Request{
		Op:          "canonical_match",
		Subject:     questionID,
		System:      semanticMatchSystem,
		User:        fmt.Sprintf(semanticMatchUserTmpl, r.tax.PromptBlock(), free.Category, free.Subcategory, free.TypeOfQuestion, stem),
		Temperature: r.temperature,
	}
	if err := r.client.CompleteJSON(ctx, req, &matched); err != nil {
		return Triple{}, fmt.Errorf("semantic match failed: %w", err)
	}

	if triple, ok := r.tax.Normalize(matched.Category, matched.Subcategory, matched.TypeOfQuestion); ok {
		return triple, nil
	}

	// Step c: match subcategory and type independently and derive the
	// category from the pair. Try the semantic answer first, then the
	// original free labels.
	if triple, ok := r.tax.CategoryFor(matched.Subcategory, matched.TypeOfQuestion); ok {
		return triple, nil
	}
	if triple, ok := r.tax.CategoryFor(matched.Subcategory, free.TypeOfQuestion); ok {
		return triple, nil
	}
	if triple, ok := r.tax.CategoryFor(free.Subcategory, matched.TypeOfQuestion); ok {
		return triple, nil
	}

	r.logger.Warn("classification did not resolve to a canonical path",
		"question_id", questionID,
		"free_category", free.Category,
		"free_subcategory", free.Subcategory,
		"free_type", free.TypeOfQuestion,
		"matched_subcategory", matched.Subcategory,
		"matched_type", matched.TypeOfQuestion)

	return Triple{}, fmt.Errorf("%w: %s / %s / %s", ErrUnresolved,
		strings.TrimSpace(free.Category), strings.TrimSpace(free.Subcategory), strings.TrimSpace(free.TypeOfQuestion))
}

package taxonomy

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepforge/quanta/pkg/llm"
)

// scriptedCompleter returns canned JSON responses and records requests.
type scriptedCompleter struct {
	responses []string
	requests  []llm.Request
	err       error
}

func (s *scriptedCompleter) CompleteJSON(_ context.Context, req llm.Request, out any) error {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return s.err
	}
	if len(s.responses) == 0 {
		return errors.New("scripted completer exhausted")
	}
	resp := s.responses[0]
	s.responses = s.responses[1:]
	return json.Unmarshal([]byte(resp), out)
}

func TestResolve_DirectNormalization_SkipsLLM(t *testing.T) {
	tax, err := New(testSpec())
	require.NoError(t, err)
	client := &scriptedCompleter{}
	r := NewResolver(tax, client)

	triple, err := r.Resolve(context.Background(), "q1", "stem", Triple{
		Category:       "arithmetic",
		Subcategory:    "percentages",
		TypeOfQuestion: "percentage change",
	})
	require.NoError(t, err)
	assert.Equal(t, "Arithmetic", triple.Category)
	assert.Equal(t, "Percentage Change", triple.TypeOfQuestion)
	assert.Empty(t, client.requests, "canonical labels must not cost an LLM call")
}

func TestResolve_DerivesCategoryFromPair_SkipsLLM(t *testing.T) {
	tax, err := New(testSpec())
	require.NoError(t, err)
	client := &scriptedCompleter{}
	r := NewResolver(tax, client)

	// Wrong category, but the (subcategory, type) pair is unambiguous.
	triple, err := r.Resolve(context.Background(), "q1", "stem", Triple{
		Category:       "Number Theory",
		Subcategory:    "Quadratic Equations",
		TypeOfQuestion: "Roots and Coefficients",
	})
	require.NoError(t, err)
	assert.Equal(t, "Algebra", triple.Category)
	assert.Empty(t, client.requests)
}

func TestResolve_SemanticMatch(t *testing.T) {
	tax, err := New(testSpec())
	require.NoError(t, err)
	client := &scriptedCompleter{responses: []string{
		`{"category": "Arithmetic", "subcategory": "Time, Speed & Distance", "type_of_question": "Trains"}`,
	}}
	r := NewResolver(tax, client)

	triple, err := r.Resolve(context.Background(), "q1", "Two trains cross each other...", Triple{
		Category:       "Motion",
		Subcategory:    "Speed Problems",
		TypeOfQuestion: "Train Crossing",
	})
	require.NoError(t, err)
	assert.Equal(t, "Time, Speed & Distance", triple.Subcategory)

	require.Len(t, client.requests, 1)
	assert.Equal(t, "canonical_match", client.requests[0].Op)
	assert.Contains(t, client.requests[0].User, "Two trains cross each other")
}

func TestResolve_IndependentFieldFallback(t *testing.T) {
	tax, err := New(testSpec())
	require.NoError(t, err)
	// The semantic answer names a valid subcategory but a bogus type; the
	// free triple carried a usable type.
	client := &scriptedCompleter{responses: []string{
		`{"category": "", "subcategory": "Percentages", "type_of_question": "Growth"}`,
	}}
	r := NewResolver(tax, client)

	triple, err := r.Resolve(context.Background(), "q1", "stem", Triple{
		Category:       "Math",
		Subcategory:    "Percent Problems",
		TypeOfQuestion: "Successive Percentage Change",
	})
	require.NoError(t, err)
	assert.Equal(t, "Arithmetic", triple.Category)
	assert.Equal(t, "Percentages", triple.Subcategory)
	assert.Equal(t, "Successive Percentage Change", triple.TypeOfQuestion)
}

func TestResolve_Unresolved(t *testing.T) {
	tax, err := New(testSpec())
	require.NoError(t, err)
	client := &scriptedCompleter{responses: []string{
		`{"category": "", "subcategory": "", "type_of_question": ""}`,
	}}
	r := NewResolver(tax, client)

	_, err = r.Resolve(context.Background(), "q1", "stem", Triple{
		Category:       "Calculus",
		Subcategory:    "Derivatives",
		TypeOfQuestion: "Chain Rule",
	})
	assert.ErrorIs(t, err, ErrUnresolved)
}

func TestResolve_LLMErrorPropagates(t *testing.T) {
	tax, err := New(testSpec())
	require.NoError(t, err)
	client := &scriptedCompleter{err: errors.New("boom")}
	r := NewResolver(tax, client)

	_, err = r.Resolve(context.Background(), "q1", "stem", Triple{
		Category:       "Calculus",
		Subcategory:    "Derivatives",
		TypeOfQuestion: "Chain Rule",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnresolved)
}

package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepforge/quanta/pkg/llm"
	"github.com/prepforge/quanta/pkg/models"
	"github.com/prepforge/quanta/pkg/quality"
)

// scriptedClient maps Op -> queued JSON responses.
type scriptedClient struct {
	responses map[string][]string
	requests  []llm.Request
	errs      map[string]error
}

func newScriptedClient() *scriptedClient {
	return &scriptedClient{
		responses: make(map[string][]string),
		errs:      make(map[string]error),
	}
}

func (s *scriptedClient) on(op, resp string) *scriptedClient {
	s.responses[op] = append(s.responses[op], resp)
	return s
}

func (s *scriptedClient) failOn(op string, err error) *scriptedClient {
	s.errs[op] = err
	return s
}

func (s *scriptedClient) CompleteJSON(_ context.Context, req llm.Request, out any) error {
	s.requests = append(s.requests, req)
	if err, ok := s.errs[req.Op]; ok {
		return err
	}
	queue := s.responses[req.Op]
	if len(queue) == 0 {
		return errors.New("no scripted response for op " + req.Op)
	}
	resp := queue[0]
	s.responses[req.Op] = queue[1:]
	return json.Unmarshal([]byte(resp), out)
}

func (s *scriptedClient) opsCalled() []string {
	ops := make([]string, 0, len(s.requests))
	for _, r := range s.requests {
		ops = append(ops, r.Op)
	}
	return ops
}

// staticPool returns a fixed qualifying pool.
type staticPool struct {
	refs []PYQRef
	err  error
}

func (p *staticPool) QualifyingPool(_ context.Context, _, _ string) ([]PYQRef, error) {
	return p.refs, p.err
}

func testQuestion() Question {
	return Question{
		ID:                  "q-1",
		Stem:                "A sum doubles in 5 years at simple interest. In how many years does it triple?",
		AdminAnswer:         "10 years",
		AdminSolution:       "Doubling means SI equals P in 5 years, so P more takes another 5.",
		PrincipleToRemember: "Simple interest accrues linearly.",
	}
}

// goodAnalysis returns a canonical, internally consistent analysis response.
func goodAnalysis(band string, score float64) string {
	resp := map[string]any{
		"right_answer":     "10 years",
		"category":         "Arithmetic",
		"subcategory":      "Simple and Compound Interest",
		"type_of_question": "Simple Interest",
		"difficulty_band":  band,
		"difficulty_score": score,
		"core_concepts":    []string{"simple interest", "linear growth", "principal multiples"},
		"solution_method":  "equate interest accrued to multiples of the principal",
		"concept_difficulty": map[string][]string{
			"prerequisites":      {"simple interest formula"},
			"cognitive_barriers": {"confusing doubling time with rate"},
			"mastery_indicators": {"solves without computing the rate"},
		},
		"operations_required": []string{"linear proportion"},
		"problem_structure":   "doubling time given, tripling time asked",
		"concept_keywords":    []string{"simple interest", "doubling"},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestRun_FullPipelinePasses(t *testing.T) {
	client := newScriptedClient().
		on(StageAnalysis, goodAnalysis("Medium", 2.8)).
		on(StagePYQFrequency, `{"pyq_frequency_score": 1.2}`).
		on("answer_match", `{"verdict": "MATCH"}`)
	pool := &staticPool{refs: []PYQRef{{Stem: "old pyq", ProblemStructure: "s", ConceptKeywords: []string{"k"}}}}

	p := New(client, nil, pool)
	out, err := p.Run(context.Background(), testQuestion())
	require.NoError(t, err)

	assert.True(t, out.QualityPassed)
	assert.Empty(t, out.FailedChecks)
	assert.Equal(t, "Arithmetic", out.Category)
	assert.Equal(t, models.BandMedium, out.Band)
	assert.Equal(t, 2.8, out.Score)
	require.NotNil(t, out.PYQFrequencyScore)
	assert.Equal(t, 1.2, *out.PYQFrequencyScore)
	assert.True(t, out.ExtractionCompleted)

	// Canonical labels avoided the matching call entirely.
	assert.Equal(t, []string{StageAnalysis, StagePYQFrequency, "answer_match"}, client.opsCalled())

	// An untuned pipeline samples near-deterministically.
	assert.Equal(t, float32(0.1), client.requests[0].Temperature)
}

func TestRun_FrequencySkippedAtThreshold(t *testing.T) {
	// Score exactly at the threshold: skip is strict, so 1.5 defaults.
	client := newScriptedClient().
		on(StageAnalysis, goodAnalysis("Easy", 1.5)).
		on("answer_match", `{"verdict": "MATCH"}`)
	pool := &staticPool{refs: []PYQRef{{Stem: "never consulted"}}}

	p := New(client, nil, pool)
	out, err := p.Run(context.Background(), testQuestion())
	require.NoError(t, err)

	require.NotNil(t, out.PYQFrequencyScore)
	assert.Equal(t, DefaultFrequencyScore, *out.PYQFrequencyScore)
	assert.NotContains(t, client.opsCalled(), StagePYQFrequency)
}

func TestRun_EmptyPoolDefaultsFrequency(t *testing.T) {
	client := newScriptedClient().
		on(StageAnalysis, goodAnalysis("Hard", 4.2)).
		on("answer_match", `{"verdict": "MATCH"}`)

	p := New(client, nil, &staticPool{})
	out, err := p.Run(context.Background(), testQuestion())
	require.NoError(t, err)

	require.NotNil(t, out.PYQFrequencyScore)
	assert.Equal(t, DefaultFrequencyScore, *out.PYQFrequencyScore)
	assert.NotContains(t, client.opsCalled(), StagePYQFrequency)
}

func TestRun_BandWinsOverOutOfRangeScore(t *testing.T) {
	// Score 4.8 contradicts the Medium band; the band midpoint 2.75 wins.
	// The reconciled score still clears the frequency threshold.
	client := newScriptedClient().
		on(StageAnalysis, goodAnalysis("Medium", 4.8)).
		on(StagePYQFrequency, `{"pyq_frequency_score": 0.8}`).
		on("answer_match", `{"verdict": "MATCH"}`)
	pool := &staticPool{refs: []PYQRef{{Stem: "pyq"}}}

	p := New(client, nil, pool)
	out, err := p.Run(context.Background(), testQuestion())
	require.NoError(t, err)

	assert.Equal(t, models.BandMedium, out.Band)
	assert.Equal(t, models.BandMedium.MidpointScore(), out.Score)
}

func TestRun_GateRejectionIsNormalOutcome(t *testing.T) {
	client := newScriptedClient().
		on(StageAnalysis, goodAnalysis("Medium", 2.8)).
		on(StagePYQFrequency, `{"pyq_frequency_score": 1.0}`).
		on("answer_match", `{"verdict": "NO_MATCH"}`)
	pool := &staticPool{refs: []PYQRef{{Stem: "pyq"}}}

	p := New(client, nil, pool)
	out, err := p.Run(context.Background(), testQuestion())
	require.NoError(t, err)

	assert.False(t, out.QualityPassed)
	assert.Equal(t, []string{quality.CheckAnswerMatch}, out.FailedChecks)
}

func TestRun_AnalysisParseFailure(t *testing.T) {
	client := newScriptedClient().failOn(StageAnalysis, &llm.ParseError{Op: StageAnalysis})

	p := New(client, nil, &staticPool{})
	_, err := p.Run(context.Background(), testQuestion())
	require.Error(t, err)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageAnalysis, stageErr.Stage)
	assert.Equal(t, KindParse, stageErr.Kind)
}

func TestRun_InvalidAnalysisValues(t *testing.T) {
	tests := []struct {
		name string
		resp string
	}{
		{"empty right_answer", `{"right_answer": "", "difficulty_score": 2.0}`},
		{"score below domain", `{"right_answer": "x", "difficulty_score": 0.5}`},
		{"score above domain", `{"right_answer": "x", "difficulty_score": 5.5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newScriptedClient().on(StageAnalysis, tt.resp)
			p := New(client, nil, &staticPool{})

			_, err := p.Run(context.Background(), testQuestion())
			var stageErr *StageError
			require.ErrorAs(t, err, &stageErr)
			assert.Equal(t, StageAnalysis, stageErr.Stage)
			assert.Equal(t, KindInvalid, stageErr.Kind)
		})
	}
}

func TestRun_InvalidBandFailsReconcile_KeepsPartialFields(t *testing.T) {
	client := newScriptedClient().
		on(StageAnalysis, goodAnalysis("Impossible", 2.8))

	p := New(client, nil, &staticPool{})
	out, err := p.Run(context.Background(), testQuestion())

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageReconcile, stageErr.Stage)

	// Partial progress survives for persistence: stage 1 and 2 output is
	// present, nothing downstream is.
	assert.Equal(t, "10 years", out.RightAnswer)
	assert.Equal(t, "Arithmetic", out.Category)
	assert.Empty(t, out.Band)
	assert.Nil(t, out.PYQFrequencyScore)
	assert.False(t, out.QualityPassed)
}

func TestRun_UnresolvedTaxonomy(t *testing.T) {
	resp := goodAnalysis("Medium", 2.8)
	// Mangle the classification into something unresolvable; the semantic
	// match also returns nothing usable.
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp), &m))
	m["category"] = "Philosophy"
	m["subcategory"] = "Ethics"
	m["type_of_question"] = "Trolley Problems"
	mangled, _ := json.Marshal(m)

	client := newScriptedClient().
		on(StageAnalysis, string(mangled)).
		on("canonical_match", `{"category": "", "subcategory": "", "type_of_question": ""}`)

	p := New(client, nil, &staticPool{})
	out, err := p.Run(context.Background(), testQuestion())

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageCanonicalMatch, stageErr.Stage)
	assert.Equal(t, KindUnresolved, stageErr.Kind)
	assert.Equal(t, "10 years", out.RightAnswer)
	assert.Empty(t, out.Category)
}

func TestRun_NegativeFrequencyScoreFails(t *testing.T) {
	client := newScriptedClient().
		on(StageAnalysis, goodAnalysis("Medium", 2.8)).
		on(StagePYQFrequency, `{"pyq_frequency_score": -0.1}`)
	pool := &staticPool{refs: []PYQRef{{Stem: "pyq"}}}

	p := New(client, nil, pool)
	_, err := p.Run(context.Background(), testQuestion())

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StagePYQFrequency, stageErr.Stage)
	assert.Equal(t, KindInvalid, stageErr.Kind)
}

func TestRun_PoolErrorIsTransport(t *testing.T) {
	client := newScriptedClient().
		on(StageAnalysis, goodAnalysis("Medium", 2.8))

	p := New(client, nil, &staticPool{err: errors.New("db down")})
	_, err := p.Run(context.Background(), testQuestion())

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StagePYQFrequency, stageErr.Stage)
	assert.Equal(t, KindTransport, stageErr.Kind)
}

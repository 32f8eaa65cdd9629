package quality

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepforge/quanta/pkg/llm"
	"github.com/prepforge/quanta/pkg/taxonomy"
)

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

func TestVerify_PassesOnMatch(t *testing.T) {
	client := &scriptedCompleter{responses: []string{`{"verdict": "MATCH"}`}}
	v := NewVerifier(taxonomy.Builtin(), client)

	result, err := v.Verify(context.Background(), validRecord())
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Empty(t, result.FailedChecks)
	assert.Equal(t, VerdictMatch, result.AnswerMatch)

	require.Len(t, client.requests, 1)
	assert.Equal(t, "answer_match", client.requests[0].Op)
}

func TestVerify_NoMatchIsRejectionNotError(t *testing.T) {
	client := &scriptedCompleter{responses: []string{`{"verdict": "no_match"}`}}
	v := NewVerifier(taxonomy.Builtin(), client)

	result, err := v.Verify(context.Background(), validRecord())
	require.NoError(t, err)
	assert.False(t, result.Passed)
	assert.Equal(t, []string{CheckAnswerMatch}, result.FailedChecks)
	assert.Equal(t, VerdictNoMatch, result.AnswerMatch)
}

func TestVerify_StructuralFailureSkipsLLM(t *testing.T) {
	client := &scriptedCompleter{}
	v := NewVerifier(taxonomy.Builtin(), client)

	rec := validRecord()
	rec.ProblemStructure = ""
	result, err := v.Verify(context.Background(), rec)
	require.NoError(t, err)
	assert.False(t, result.Passed)
	assert.Contains(t, result.FailedChecks, CheckStructurePresent)
	assert.Empty(t, result.AnswerMatch)
	assert.Empty(t, client.requests, "structural failure must not cost an LLM call")
}

func TestVerify_IncompleteExtractionFails(t *testing.T) {
	client := &scriptedCompleter{}
	v := NewVerifier(taxonomy.Builtin(), client)

	rec := validRecord()
	rec.ExtractionCompleted = false
	result, err := v.Verify(context.Background(), rec)
	require.NoError(t, err)
	assert.False(t, result.Passed)
	assert.Contains(t, result.FailedChecks, CheckExtractionCompleted)
}

func TestVerify_TransportErrorPropagates(t *testing.T) {
	client := &scriptedCompleter{err: errors.New("rate limited")}
	v := NewVerifier(taxonomy.Builtin(), client)

	_, err := v.Verify(context.Background(), validRecord())
	assert.Error(t, err)
}

func TestVerify_UnrecognizedVerdictIsError(t *testing.T) {
	client := &scriptedCompleter{responses: []string{`{"verdict": "MAYBE"}`}}
	v := NewVerifier(taxonomy.Builtin(), client)

	_, err := v.Verify(context.Background(), validRecord())
	assert.Error(t, err)
}

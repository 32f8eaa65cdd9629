package llm

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider returns scripted results, one per call.
type fakeProvider struct {
	name    string
	model   string
	mu      sync.Mutex
	results []error
	calls   int
}

func (p *fakeProvider) Complete(_ context.Context, _ Request) (Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	var err error
	if len(p.results) > 0 {
		err = p.results[0]
		p.results = p.results[1:]
	}
	if err != nil {
		return Response{}, err
	}
	return Response{Text: `{"ok": true}`, Provider: p.name, Model: p.model, InputTokens: 10, OutputTokens: 5}, nil
}

func (p *fakeProvider) Name() string  { return p.name }
func (p *fakeProvider) Model() string { return p.model }

func (p *fakeProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

type recordingSink struct {
	mu      sync.Mutex
	records []CallRecord
}

func (s *recordingSink) RecordLLMCall(_ context.Context, rec CallRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

func fastConfig() GatewayConfig {
	return GatewayConfig{
		RecoveryInterval: time.Hour,
		Timeout:          time.Second,
		RetryDelays:      []time.Duration{time.Millisecond, time.Millisecond},
	}
}

func TestComplete_PrimaryHappyPath(t *testing.T) {
	primary := &fakeProvider{name: "openai", model: "gpt-test"}
	fallback := &fakeProvider{name: "anthropic", model: "claude-test"}
	g := NewGateway(primary, fallback, fastConfig())

	resp, err := g.Complete(context.Background(), Request{Op: "analysis"})
	require.NoError(t, err)
	assert.Equal(t, "openai", resp.Provider)
	assert.Equal(t, 1, primary.callCount())
	assert.Equal(t, 0, fallback.callCount())
}

func TestComplete_RateLimitFailsOverImmediately(t *testing.T) {
	primary := &fakeProvider{name: "openai", model: "gpt-test", results: []error{ErrRateLimited}}
	fallback := &fakeProvider{name: "anthropic", model: "claude-test"}
	sink := &recordingSink{}
	g := NewGateway(primary, fallback, fastConfig(), WithAuditSink(sink))

	resp, err := g.Complete(context.Background(), Request{Op: "analysis", Subject: "q-1"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic", resp.Provider)
	assert.Equal(t, 1, primary.callCount())
	assert.Equal(t, 1, fallback.callCount())

	// One audit record per round-trip, including the failed one.
	require.Len(t, sink.records, 2)
	assert.True(t, sink.records[0].RateLimited)
	assert.Equal(t, "openai", sink.records[0].Provider)
	assert.Equal(t, "anthropic", sink.records[1].Provider)

	// Subsequent calls route to the fallback inside the recovery window.
	_, err = g.Complete(context.Background(), Request{Op: "analysis"})
	require.NoError(t, err)
	assert.Equal(t, 1, primary.callCount())
	assert.Equal(t, 2, fallback.callCount())
}

func TestComplete_RecoveryWindowElapses(t *testing.T) {
	clock := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }

	primary := &fakeProvider{name: "openai", model: "gpt-test", results: []error{ErrRateLimited}}
	fallback := &fakeProvider{name: "anthropic", model: "claude-test"}
	g := NewGateway(primary, fallback, fastConfig(), WithClock(now))

	_, err := g.Complete(context.Background(), Request{Op: "analysis"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic", g.State().ActiveProvider)

	// Advance past the recovery interval: the next call probes the primary,
	// and success clears the rate-limit state.
	clock = clock.Add(2 * time.Hour)
	resp, err := g.Complete(context.Background(), Request{Op: "analysis"})
	require.NoError(t, err)
	assert.Equal(t, "openai", resp.Provider)

	state := g.State()
	assert.Equal(t, "openai", state.ActiveProvider)
	assert.Nil(t, state.LastRateLimit)
}

func TestComplete_TransientErrorsWalkRetryLadder(t *testing.T) {
	primary := &fakeProvider{name: "openai", model: "gpt-test", results: []error{
		errors.New("connection reset"),
		errors.New("connection reset"),
		nil,
	}}
	g := NewGateway(primary, &fakeProvider{name: "anthropic", model: "m"}, fastConfig())

	_, err := g.Complete(context.Background(), Request{Op: "analysis"})
	require.NoError(t, err)
	assert.Equal(t, 3, primary.callCount())
}

func TestComplete_BudgetExhaustion(t *testing.T) {
	primary := &fakeProvider{name: "openai", model: "gpt-test", results: []error{
		errors.New("boom"), errors.New("boom"), errors.New("boom"),
	}}
	g := NewGateway(primary, &fakeProvider{name: "anthropic", model: "m"}, fastConfig())

	_, err := g.Complete(context.Background(), Request{Op: "analysis"})
	require.Error(t, err)

	var retryErr *RetryError
	require.ErrorAs(t, err, &retryErr)
	assert.Equal(t, 3, retryErr.Attempts) // 1 + two ladder steps
	assert.Equal(t, "analysis", retryErr.Op)
}

func TestComplete_ContextCancellation(t *testing.T) {
	primary := &fakeProvider{name: "openai", model: "gpt-test", results: []error{errors.New("boom")}}
	g := NewGateway(primary, &fakeProvider{name: "anthropic", model: "m"}, GatewayConfig{
		RecoveryInterval: time.Hour,
		Timeout:          time.Second,
		RetryDelays:      []time.Duration{time.Minute},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.Complete(ctx, Request{Op: "analysis"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, IsRateLimited(ErrRateLimited))
	assert.True(t, IsRateLimited(errors.New("HTTP 429 Too Many Requests")))
	assert.True(t, IsRateLimited(errors.New("insufficient quota for model")))
	assert.False(t, IsRateLimited(errors.New("connection refused")))
	assert.False(t, IsRateLimited(nil))
}

func TestState_ReportsModels(t *testing.T) {
	g := NewGateway(
		&fakeProvider{name: "openai", model: "gpt-test"},
		&fakeProvider{name: "anthropic", model: "claude-test"},
		fastConfig())

	state := g.State()
	assert.Equal(t, "openai", state.ActiveProvider)
	assert.Equal(t, "gpt-test", state.PrimaryModel)
	assert.Equal(t, "claude-test", state.FallbackModel)
}

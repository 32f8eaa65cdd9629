// Package llm is the single gateway through which every model call in the
// system flows. It normalizes two chat-completion providers behind one
// interface, hides rate-limit failover and recovery, applies the retry
// ladder, and parses fenced JSON responses.
package llm

import "context"

// Request is one chat completion: a system prompt, a user prompt, and
// sampling parameters. Op and Subject identify the call for audit records
// (pipeline stage name and question id, respectively).
type Request struct {
	Op      string
	Subject string

	System      string
	User        string
	MaxTokens   int
	Temperature float32
}

// Response is the provider-normalized completion result.
type Response struct {
	Text         string
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int
}

// Provider is a single chat-completion backend.
type Provider interface {
	// Complete issues one request and returns the full text response.
	Complete(ctx context.Context, req Request) (Response, error)
	// Name identifies the backend, e.g. "openai" or "anthropic".
	Name() string
	// Model is the configured model identifier.
	Model() string
}

// CallRecord describes one provider round-trip, successful or not. The
// gateway emits one per attempt so audit trails capture retries and
// failovers, not just final outcomes.
type CallRecord struct {
	Op           string
	Subject      string
	Provider     string
	Model        string
	Attempt      int
	RateLimited  bool
	DurationMS   int64
	InputTokens  int
	OutputTokens int
	Err          error
}

// AuditSink receives one CallRecord per round-trip. Implementations must
// tolerate being called concurrently and must not block the caller for long.
type AuditSink interface {
	RecordLLMCall(ctx context.Context, rec CallRecord)
}

package llm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRateLimited marks provider errors classified as rate limiting. The
// gateway reacts by recording the event and failing over to the fallback
// provider without consuming the caller's retry budget.
var ErrRateLimited = errors.New("llm: rate limited")

// rateLimitMarkers are the substrings that classify a provider error as a
// rate limit. Matching is case-insensitive on the full error chain text.
var rateLimitMarkers = []string{
	"rate limit",
	"quota",
	"usage limit",
	"too many requests",
	"429",
	"insufficient quota",
}

// IsRateLimited reports whether err is a rate-limit failure, either tagged
// with ErrRateLimited or recognizable from the provider's message text.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range rateLimitMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// RetryError reports retry-budget exhaustion. The pipeline treats it as a
// hard stage failure; nothing downstream substitutes placeholder data.
type RetryError struct {
	Op       string
	Attempts int
	LastErr  error
}

func (e *RetryError) Error() string {
	return fmt.Sprintf("llm %s: %d attempts exhausted: %v", e.Op, e.Attempts, e.LastErr)
}

func (e *RetryError) Unwrap() error {
	return e.LastErr
}

// ParseError reports a response that came back but could not be decoded as
// the JSON document the caller required.
type ParseError struct {
	Op  string
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("llm %s: response is not valid JSON: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

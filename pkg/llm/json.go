package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// StripFences removes a Markdown code fence wrapping, if present. Models
// frequently return ```json ... ``` even when asked for bare JSON.
func StripFences(resp string) string {
	resp = strings.TrimSpace(resp)
	resp = strings.TrimPrefix(resp, "```json")
	resp = strings.TrimPrefix(resp, "```")
	resp = strings.TrimSuffix(resp, "```")
	return strings.TrimSpace(resp)
}

// CompleteJSON issues the request and decodes the (possibly fenced)
// response into out. Schema-level validation of the decoded document is
// the caller's job; a decode failure returns a ParseError so callers can
// apply their own re-ask budget.
func (g *Gateway) CompleteJSON(ctx context.Context, req Request, out any) error {
	resp, err := g.Complete(ctx, req)
	if err != nil {
		return err
	}
	cleaned := StripFences(resp.Text)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return &ParseError{Op: req.Op, Raw: snippet(cleaned), Err: err}
	}
	return nil
}

// snippet truncates raw response text for error messages.
func snippet(s string) string {
	const max = 512
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

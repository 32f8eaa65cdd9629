package e2e

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepforge/quanta/pkg/llm"
)

// TestEnrichmentActivatesUpload drives an admin upload through the worker
// pool and the full pipeline to an active, serveable question.
func TestEnrichmentActivatesUpload(t *testing.T) {
	h := newHarness(t)

	h.Provider.
		on("analysis", analysisJSON("20", "Arithmetic", "Percentages", "Percentage Change", "Easy", 1.4)).
		on("answer_match", `{"verdict": "MATCH"}`)
	h.startWorkers()

	status := h.postJSON("/api/v1/questions", uploadPayload("q-upload"), nil)
	require.Equal(t, http.StatusAccepted, status)

	q := h.waitForEnrichment("q-upload")
	assert.Equal(t, "completed", q.EnrichmentStatus)
	assert.True(t, q.IsActive)
	assert.True(t, q.QualityVerified)
	assert.Equal(t, "Arithmetic", q.Category)
	assert.Equal(t, "Percentage Change", q.TypeOfQuestion)
	assert.Equal(t, "Easy", q.DifficultyBand)
	// Score at or under the frequency threshold defaults without a call.
	require.NotNil(t, q.PYQFrequencyScore)
	assert.InDelta(t, 0.5, *q.PYQFrequencyScore, 0.001)

	t.Run("audit trail records each model call", func(t *testing.T) {
		var audits struct {
			Audits []struct {
				Stage    string `json:"stage"`
				Provider string `json:"provider"`
			} `json:"audits"`
		}
		status := h.getJSON("/api/v1/questions/q-upload/audits", &audits)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, audits.Audits, 2)
		assert.Equal(t, "analysis", audits.Audits[0].Stage)
		assert.Equal(t, "answer_match", audits.Audits[1].Stage)
		assert.Equal(t, "openai", audits.Audits[0].Provider)
	})

	t.Run("queue drains", func(t *testing.T) {
		var stats struct {
			Pending   int `json:"pending"`
			Enriching int `json:"enriching"`
			Failed    int `json:"failed"`
		}
		status := h.getJSON("/api/v1/questions/queue/stats", &stats)
		require.Equal(t, http.StatusOK, status)
		assert.Zero(t, stats.Pending)
		assert.Zero(t, stats.Enriching)
		assert.Zero(t, stats.Failed)
	})
}

// TestEnrichmentGateRejection checks that an answer-match failure
// completes the question without activating it.
func TestEnrichmentGateRejection(t *testing.T) {
	h := newHarness(t)

	h.Provider.
		on("analysis", analysisJSON("18", "Arithmetic", "Percentages", "Percentage Change", "Easy", 1.4)).
		on("answer_match", `{"verdict": "NO_MATCH"}`)
	h.startWorkers()

	status := h.postJSON("/api/v1/questions", uploadPayload("q-gated"), nil)
	require.Equal(t, http.StatusAccepted, status)

	q := h.waitForEnrichment("q-gated")
	assert.Equal(t, "completed", q.EnrichmentStatus)
	assert.False(t, q.IsActive)
	assert.False(t, q.QualityVerified)
	assert.Contains(t, q.FailedChecks, "answer_match")
	// Derived classification is kept for admin inspection.
	assert.Equal(t, "Arithmetic", q.Category)
	assert.Equal(t, "18", q.RightAnswer)
}

// TestEnrichmentFailureAndRequeue exhausts the retry ladder on a provider
// outage, then clears the script and requeues the question to completion.
func TestEnrichmentFailureAndRequeue(t *testing.T) {
	h := newHarness(t)

	h.Provider.failOn("analysis", errors.New("provider unavailable"))
	h.startWorkers()

	status := h.postJSON("/api/v1/questions", uploadPayload("q-retry"), nil)
	require.Equal(t, http.StatusAccepted, status)

	q := h.waitForEnrichment("q-retry")
	assert.Equal(t, "failed", q.EnrichmentStatus)
	assert.False(t, q.IsActive)
	assert.Contains(t, q.EnrichmentError, "analysis")

	// Provider recovers; requeue through the admin endpoint.
	h.Provider.failOn("analysis", nil)
	h.Provider.
		on("analysis", analysisJSON("20", "Arithmetic", "Percentages", "Percentage Change", "Easy", 1.4)).
		on("answer_match", `{"verdict": "MATCH"}`)

	status = h.postJSON("/api/v1/questions/q-retry/requeue", map[string]string{}, nil)
	require.Equal(t, http.StatusOK, status)

	q = h.waitForEnrichment("q-retry")
	assert.Equal(t, "completed", q.EnrichmentStatus)
	assert.True(t, q.IsActive)
}

// TestEnrichmentRateLimitFailsOver verifies the gateway retries a
// rate-limited analysis call on the fallback provider immediately.
func TestEnrichmentRateLimitFailsOver(t *testing.T) {
	h := newHarness(t)

	// Primary is rate limited for the whole test; the fallback answers.
	h.Provider.failOn("analysis", llm.ErrRateLimited)
	h.Provider.failOn("answer_match", llm.ErrRateLimited)
	h.Fallback.
		on("analysis", analysisJSON("20", "Arithmetic", "Percentages", "Percentage Change", "Easy", 1.4)).
		on("answer_match", `{"verdict": "MATCH"}`)
	h.startWorkers()

	status := h.postJSON("/api/v1/questions", uploadPayload("q-failover"), nil)
	require.Equal(t, http.StatusAccepted, status)

	q := h.waitForEnrichment("q-failover")
	assert.Equal(t, "completed", q.EnrichmentStatus)
	assert.True(t, q.IsActive)
}

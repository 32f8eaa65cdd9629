// Package e2e exercises the full service through the HTTP API: real
// Postgres, the real worker pool and enrichment pipeline, with only the
// LLM providers replaced by scripted responders.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/prepforge/quanta/ent"
	"github.com/prepforge/quanta/ent/question"
	"github.com/prepforge/quanta/pkg/api"
	"github.com/prepforge/quanta/pkg/config"
	"github.com/prepforge/quanta/pkg/enrich"
	"github.com/prepforge/quanta/pkg/llm"
	"github.com/prepforge/quanta/pkg/mastery"
	"github.com/prepforge/quanta/pkg/models"
	"github.com/prepforge/quanta/pkg/planner"
	"github.com/prepforge/quanta/pkg/pool"
	"github.com/prepforge/quanta/pkg/queue"
	"github.com/prepforge/quanta/pkg/services"
	testdb "github.com/prepforge/quanta/test/database"
)

// scriptedProvider is an llm.Provider that replays queued responses per
// pipeline op. Workers hit it concurrently, so access is locked.
type scriptedProvider struct {
	name  string
	model string

	mu        sync.Mutex
	responses map[string][]string
	errs      map[string]error
	calls     []llm.Request
}

func newScriptedProvider(name, model string) *scriptedProvider {
	return &scriptedProvider{
		name:      name,
		model:     model,
		responses: make(map[string][]string),
		errs:      make(map[string]error),
	}
}

func (p *scriptedProvider) Name() string  { return p.name }
func (p *scriptedProvider) Model() string { return p.model }

// on queues one response for the given op. Responses drain FIFO; the last
// queued response is replayed once the queue empties, so steady-state ops
// (answer_match, analysis) only need scripting once.
func (p *scriptedProvider) on(op, resp string) *scriptedProvider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.responses[op] = append(p.responses[op], resp)
	return p
}

// failOn makes every call for op fail with err. A nil err clears the
// failure, simulating provider recovery.
func (p *scriptedProvider) failOn(op string, err error) *scriptedProvider {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err == nil {
		delete(p.errs, op)
	} else {
		p.errs[op] = err
	}
	return p
}

func (p *scriptedProvider) Complete(_ context.Context, req llm.Request) (llm.Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, req)

	if err, ok := p.errs[req.Op]; ok {
		return llm.Response{}, err
	}
	queue := p.responses[req.Op]
	if len(queue) == 0 {
		return llm.Response{}, fmt.Errorf("no scripted response for op %q", req.Op)
	}
	text := queue[0]
	if len(queue) > 1 {
		p.responses[req.Op] = queue[1:]
	}
	return llm.Response{
		Text:         text,
		Provider:     p.name,
		Model:        p.model,
		InputTokens:  100,
		OutputTokens: 50,
	}, nil
}

// Harness is one fully wired replica over a fresh test schema.
type Harness struct {
	t        *testing.T
	Client   *ent.Client
	Provider *scriptedProvider
	Fallback *scriptedProvider
	Pool     *queue.WorkerPool
	Sessions *services.SessionService
	baseURL  string
	http     *http.Client
}

func newHarness(t *testing.T) *Harness {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	provider := newScriptedProvider("openai", "gpt-4o")
	fallback := newScriptedProvider("anthropic", "claude-3-5-haiku-latest")

	questions := services.NewQuestionService(dbClient.Client)
	pyqService := services.NewPYQService(dbClient.Client)
	audits := services.NewAuditService(dbClient.Client, nil)
	masteryService := services.NewMasteryService(dbClient.Client, mastery.Params{})
	attempts := services.NewAttemptService(dbClient.Client, masteryService)
	coverage := services.NewCoverageService(dbClient.Client)
	sessions := services.NewSessionService(dbClient.Client,
		planner.New(planner.DefaultConfig(), nil, nil),
		questions, masteryService, coverage, pool.DefaultConfig(), 30*time.Second, nil)

	// A one-millisecond ladder keeps failure tests fast without changing
	// the retry semantics.
	gateway := llm.NewGateway(provider, fallback, llm.GatewayConfig{
		RecoveryInterval: time.Minute,
		Timeout:          5 * time.Second,
		RetryDelays:      []time.Duration{time.Millisecond, time.Millisecond},
	}, llm.WithAuditSink(audits))

	pipeline := enrich.New(gateway, nil, services.NewPYQRefSource(pyqService))
	executor := queue.NewExecutor(pipeline, questions, nil)
	workerPool := queue.NewWorkerPool("e2e-pod", questions, &config.QueueConfig{
		WorkerCount:              2,
		MaxConcurrentEnrichments: 4,
		PollInterval:             20 * time.Millisecond,
		PollIntervalJitter:       5 * time.Millisecond,
		EnrichmentTimeout:        10 * time.Second,
		GracefulShutdownTimeout:  10 * time.Second,
		HeartbeatInterval:        time.Second,
		OrphanDetectionInterval:  time.Minute,
		OrphanThreshold:          time.Minute,
	}, executor)

	server := api.NewServer(api.Deps{
		DB:        dbClient,
		Sessions:  sessions,
		Questions: questions,
		PYQ:       pyqService,
		Attempts:  attempts,
		Mastery:   masteryService,
		Audits:    audits,
		Pool:      workerPool,
		Gateway:   gateway,
	})
	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)

	return &Harness{
		t:        t,
		Client:   dbClient.Client,
		Provider: provider,
		Fallback: fallback,
		Pool:     workerPool,
		Sessions: sessions,
		baseURL:  ts.URL,
		http:     ts.Client(),
	}
}

// startWorkers runs the enrichment pool for the duration of the test.
func (h *Harness) startWorkers() {
	h.t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(h.t, h.Pool.Start(ctx))
	h.t.Cleanup(func() {
		cancel()
		h.Pool.Stop()
	})
}

func (h *Harness) do(method, path string, body any, headers map[string]string) (int, []byte) {
	h.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(h.t, err)
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, h.baseURL+path, reader)
	require.NoError(h.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := h.http.Do(req)
	require.NoError(h.t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(h.t, err)
	return resp.StatusCode, data
}

// postJSON issues a POST and decodes the response body into out when the
// status is in the 2xx range.
func (h *Harness) postJSON(path string, body any, out any) int {
	h.t.Helper()
	status, data := h.do(http.MethodPost, path, body, nil)
	if out != nil && status < 300 {
		require.NoError(h.t, json.Unmarshal(data, out), "body: %s", data)
	}
	return status
}

func (h *Harness) getJSON(path string, out any) int {
	h.t.Helper()
	status, data := h.do(http.MethodGet, path, nil, nil)
	if out != nil && status < 300 {
		require.NoError(h.t, json.Unmarshal(data, out), "body: %s", data)
	}
	return status
}

// waitForEnrichment polls until the question leaves the pending/enriching
// states and returns its terminal snapshot.
func (h *Harness) waitForEnrichment(questionID string) *api.QuestionResponse {
	h.t.Helper()
	var q api.QuestionResponse
	require.Eventually(h.t, func() bool {
		status := h.getJSON("/api/v1/questions/"+questionID, &q)
		if status != http.StatusOK {
			return false
		}
		return q.EnrichmentStatus == "completed" || q.EnrichmentStatus == "failed"
	}, 10*time.Second, 25*time.Millisecond, "question %s never finished enrichment", questionID)
	return &q
}

// analysisJSON builds a stage-1 response whose labels are already
// canonical, so the canonical-match stage resolves without a model call.
func analysisJSON(rightAnswer, category, subcategory, typ, band string, score float64) string {
	payload := map[string]any{
		"right_answer":     rightAnswer,
		"category":         category,
		"subcategory":      subcategory,
		"type_of_question": typ,
		"difficulty_band":  band,
		"difficulty_score": score,
		"core_concepts":    []string{"percentage of a quantity", "base value identification", "fraction-decimal conversion"},
		"solution_method":  "Fraction Multiplication",
		"concept_difficulty": map[string][]string{
			"prerequisites":      {"fractions"},
			"cognitive_barriers": {"picking the right base"},
			"mastery_indicators": {"converts percentage to fraction directly"},
		},
		"operations_required": []string{"multiplication", "division"},
		"problem_structure":   "single percentage applied to one base value",
		"concept_keywords":    []string{"percentage", "fraction of a quantity"},
	}
	data, _ := json.Marshal(payload)
	return string(data)
}

// uploadPayload is a complete admin upload; the quality gate requires the
// optional solution and principle fields to be present.
func uploadPayload(id string) map[string]string {
	return map[string]string{
		"question_id":           id,
		"stem":                  "What is 25% of 80?",
		"admin_answer":          "20",
		"admin_solution":        "25% is a quarter, and a quarter of 80 is 20.",
		"principle_to_remember": "Common percentages map to simple fractions.",
	}
}

// seedBank inserts enough active classified questions, across all five
// categories and three bands, for adaptive planning to fill 12-slot packs.
func seedBank(t *testing.T, client *ent.Client) {
	t.Helper()
	ctx := context.Background()
	subs := []struct {
		cat, sub, typ string
	}{
		{"Arithmetic", "Percentages", "Percentage Change"},
		{"Arithmetic", "Averages", "Simple Averages"},
		{"Arithmetic", "Ratio and Proportion", "Basic Ratios"},
		{"Algebra", "Linear Equations", "Single Variable"},
		{"Algebra", "Quadratic Equations", "Roots and Coefficients"},
		{"Geometry and Mensuration", "Triangles", "Similar Triangles"},
		{"Geometry and Mensuration", "Circles", "Chords and Tangents"},
		{"Number System", "Divisibility", "Divisibility Rules"},
		{"Modern Math", "Probability", "Single Event"},
	}
	bands := []struct {
		band  models.Band
		score float64
	}{
		{models.BandEasy, 1.5},
		{models.BandMedium, 2.8},
		{models.BandHard, 4.0},
	}
	id := 0
	for _, b := range bands {
		for _, s := range subs {
			id++
			_, err := client.Question.Create().
				SetID(fmt.Sprintf("bank-%03d", id)).
				SetStem(fmt.Sprintf("stem for bank question %d", id)).
				SetAdminAnswer("42").
				SetRightAnswer("42").
				SetCategory(s.cat).
				SetSubcategory(s.sub).
				SetTypeOfQuestion(s.typ).
				SetDifficultyBand(question.DifficultyBand(b.band)).
				SetDifficultyScore(b.score).
				SetPyqFrequencyScore(1.6).
				SetIsActive(true).
				SetQualityVerified(true).
				SetEnrichmentStatus(question.EnrichmentStatusCompleted).
				SetConceptExtractionStatus(question.ConceptExtractionStatusCompleted).
				Save(ctx)
			require.NoError(t, err)
		}
	}
}

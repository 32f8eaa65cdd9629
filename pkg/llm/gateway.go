package llm

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// GatewayConfig tunes retry and failover behavior.
type GatewayConfig struct {
	// RecoveryInterval is how long the gateway stays on the fallback
	// provider after a rate limit before probing the primary again.
	RecoveryInterval time.Duration
	// Timeout bounds each individual provider call.
	Timeout time.Duration
	// RetryDelays is the back-off ladder for non-rate-limit errors; its
	// length is the retry budget.
	RetryDelays []time.Duration
}

// DefaultGatewayConfig returns the production defaults: 30 minute recovery,
// 60 second call timeout, and the 3s/7s/15s/30s retry ladder.
func DefaultGatewayConfig() GatewayConfig {
	return GatewayConfig{
		RecoveryInterval: 30 * time.Minute,
		Timeout:          60 * time.Second,
		RetryDelays: []time.Duration{
			3 * time.Second,
			7 * time.Second,
			15 * time.Second,
			30 * time.Second,
		},
	}
}

// Gateway routes completions to a primary provider with automatic failover
// to a fallback after rate limiting. The rate-limit timestamp is advisory
// process-wide state: replicas keep their own and converge independently.
type Gateway struct {
	primary  Provider
	fallback Provider
	cfg      GatewayConfig
	audit    AuditSink
	logger   *slog.Logger

	mu            sync.Mutex
	lastRateLimit time.Time

	now func() time.Time
}

// GatewayOption customizes a Gateway.
type GatewayOption func(*Gateway)

// WithAuditSink wires a sink that receives one CallRecord per round-trip.
func WithAuditSink(sink AuditSink) GatewayOption {
	return func(g *Gateway) { g.audit = sink }
}

// WithLogger overrides the default slog logger.
func WithLogger(logger *slog.Logger) GatewayOption {
	return func(g *Gateway) { g.logger = logger }
}

// WithClock overrides the time source, for recovery-window tests.
func WithClock(now func() time.Time) GatewayOption {
	return func(g *Gateway) { g.now = now }
}

// NewGateway builds a gateway over a primary and fallback provider. Both
// are required: quality requirements are identical across the two, so the
// fallback never relaxes any contract.
func NewGateway(primary, fallback Provider, cfg GatewayConfig, opts ...GatewayOption) *Gateway {
	if cfg.RecoveryInterval <= 0 {
		cfg.RecoveryInterval = 30 * time.Minute
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if len(cfg.RetryDelays) == 0 {
		cfg.RetryDelays = DefaultGatewayConfig().RetryDelays
	}
	g := &Gateway{
		primary:  primary,
		fallback: fallback,
		cfg:      cfg,
		logger:   slog.Default().With("component", "llm_gateway"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Complete issues the request with retry and failover. Non-rate-limit
// errors walk the back-off ladder; a rate limit on the primary records the
// event and retries once on the fallback without consuming the ladder.
func (g *Gateway) Complete(ctx context.Context, req Request) (Response, error) {
	maxAttempts := 1 + len(g.cfg.RetryDelays)
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			delay := g.cfg.RetryDelays[attempt-2]
			g.logger.Warn("retrying llm call",
				"op", req.Op, "attempt", attempt, "delay", delay, "error", lastErr)
			select {
			case <-ctx.Done():
				return Response{}, ctx.Err()
			case <-time.After(delay):
			}
		}

		provider := g.selectProvider()
		resp, err := g.call(ctx, provider, req, attempt)
		if err == nil {
			if provider == g.primary {
				g.markPrimaryHealthy()
			}
			return resp, nil
		}
		lastErr = err

		if IsRateLimited(err) {
			g.markRateLimited()
			if provider == g.primary && g.fallback != nil {
				// Immediate fallback retry; does not consume the ladder.
				resp, err = g.call(ctx, g.fallback, req, attempt)
				if err == nil {
					return resp, nil
				}
				lastErr = err
			}
		}

		if ctx.Err() != nil {
			return Response{}, ctx.Err()
		}
	}

	return Response{}, &RetryError{Op: req.Op, Attempts: maxAttempts, LastErr: lastErr}
}

// call runs one provider round-trip under the per-call timeout and emits
// the audit record.
func (g *Gateway) call(ctx context.Context, p Provider, req Request, attempt int) (Response, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	start := g.now()
	resp, err := p.Complete(callCtx, req)
	duration := g.now().Sub(start)

	if g.audit != nil {
		g.audit.RecordLLMCall(ctx, CallRecord{
			Op:           req.Op,
			Subject:      req.Subject,
			Provider:     p.Name(),
			Model:        p.Model(),
			Attempt:      attempt,
			RateLimited:  err != nil && IsRateLimited(err),
			DurationMS:   duration.Milliseconds(),
			InputTokens:  resp.InputTokens,
			OutputTokens: resp.OutputTokens,
			Err:          err,
		})
	}
	if err != nil {
		g.logger.Warn("llm call failed",
			"op", req.Op, "provider", p.Name(), "model", p.Model(),
			"attempt", attempt, "duration_ms", duration.Milliseconds(), "error", err)
	}
	return resp, err
}

// selectProvider applies the recovery rule: primary while healthy, fallback
// inside the recovery window, then probe primary once the window elapses.
func (g *Gateway) selectProvider() Provider {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.lastRateLimit.IsZero() {
		return g.primary
	}
	if g.now().Sub(g.lastRateLimit) >= g.cfg.RecoveryInterval {
		return g.primary
	}
	if g.fallback != nil {
		return g.fallback
	}
	return g.primary
}

func (g *Gateway) markRateLimited() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastRateLimit = g.now()
	g.logger.Warn("rate limit recorded, routing to fallback",
		"recovery_interval", g.cfg.RecoveryInterval)
}

func (g *Gateway) markPrimaryHealthy() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.lastRateLimit.IsZero() {
		g.logger.Info("primary provider recovered")
		g.lastRateLimit = time.Time{}
	}
}

// State reports the routing state for health endpoints.
type State struct {
	ActiveProvider string     `json:"active_provider"`
	PrimaryModel   string     `json:"primary_model"`
	FallbackModel  string     `json:"fallback_model,omitempty"`
	LastRateLimit  *time.Time `json:"last_rate_limit,omitempty"`
}

// State returns a snapshot of the gateway's routing state.
func (g *Gateway) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := State{
		ActiveProvider: g.primary.Name(),
		PrimaryModel:   g.primary.Model(),
	}
	if g.fallback != nil {
		s.FallbackModel = g.fallback.Model()
	}
	if !g.lastRateLimit.IsZero() {
		t := g.lastRateLimit
		s.LastRateLimit = &t
		if g.now().Sub(t) < g.cfg.RecoveryInterval && g.fallback != nil {
			s.ActiveProvider = g.fallback.Name()
		}
	}
	return s
}

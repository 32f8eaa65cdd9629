package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DefaultsPass(t *testing.T) {
	require.NoError(t, validate(Defaults()))
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "unknown primary provider",
			mutate:  func(c *Config) { c.LLM.PrimaryProvider = "bedrock" },
			wantMsg: "primary_provider",
		},
		{
			name:    "empty fallback model",
			mutate:  func(c *Config) { c.LLM.FallbackModel = "" },
			wantMsg: "fallback_model",
		},
		{
			name:    "no retry delays",
			mutate:  func(c *Config) { c.LLM.RetryDelaysSeconds = nil },
			wantMsg: "retry_delays_seconds",
		},
		{
			name:    "phase cutoffs out of order",
			mutate:  func(c *Config) { c.Planner.PhaseBCutoff = c.Planner.PhaseACutoff },
			wantMsg: "phase_cutoffs",
		},
		{
			name:    "quotas do not sum to pack size",
			mutate:  func(c *Config) { c.Planner.CategoryQuotas["Arithmetic"] = 5 },
			wantMsg: "category_quotas",
		},
		{
			name:    "relaxed cap below strict",
			mutate:  func(c *Config) { c.Planner.MaxPerSubcategoryRelaxed = 2 },
			wantMsg: "max_per_subcategory",
		},
		{
			name:    "non-increasing ladder",
			mutate:  func(c *Config) { c.Pool.Ladder = []int{80, 80, 320} },
			wantMsg: "ladder",
		},
		{
			name:    "cold start pool below pack size",
			mutate:  func(c *Config) { c.Pool.ColdStartSize = 6 },
			wantMsg: "cold_start_size",
		},
		{
			name:    "alpha above one",
			mutate:  func(c *Config) { c.Mastery.EwmaAlpha = 1.5 },
			wantMsg: "ewma_alpha",
		},
		{
			name:    "orphan threshold below heartbeat",
			mutate:  func(c *Config) { c.Queue.OrphanThreshold = c.Queue.HeartbeatInterval },
			wantMsg: "orphan_threshold",
		},
		{
			name:    "capacity below worker count",
			mutate:  func(c *Config) { c.Queue.MaxConcurrentEnrichments = 1 },
			wantMsg: "max_concurrent_enrichments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

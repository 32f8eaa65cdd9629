package config

import "time"

// Defaults returns the built-in configuration. Every value here can be
// overridden by quanta.yaml and then by environment variables.
func Defaults() *Config {
	return &Config{
		LLM: &LLMConfig{
			PrimaryProvider:         "openai",
			PrimaryModel:            "gpt-4o",
			FallbackProvider:        "anthropic",
			FallbackModel:           "claude-3-5-haiku-latest",
			RecoveryIntervalSeconds: 1800,
			TimeoutSeconds:          60,
			RetryDelaysSeconds:      []int{3, 7, 15, 30},
			MaxTokens:               4096,
			Temperature:             0.1,
		},
		Planner: &PlannerConfig{
			PackSize:     12,
			PhaseACutoff: 30,
			PhaseBCutoff: 60,
			CategoryQuotas: map[string]int{
				"Arithmetic":               4,
				"Algebra":                  3,
				"Geometry and Mensuration": 3,
				"Number System":            1,
				"Modern Math":              1,
			},
			MaxPerSubcategoryStrict:  3,
			MaxPerSubcategoryRelaxed: 5,
			MaxPerTypeStrict:         2,
			MaxPerTypeRelaxed:        3,
			MinDistinctSubcategories: 3,
			QuotaShiftMasteryGate:    0.70,
			CooldownEasyDays:         0,
			CooldownMediumDays:       0,
			CooldownHardDays:         0,
			PlanTimeoutSeconds:       30,
		},
		Pool: &PoolConfig{
			KPerBand:       80,
			Ladder:         []int{80, 160, 320},
			RecentSessions: 3,
			ColdStartSize:  100,
			MinEasy:        3,
			MinMedium:      6,
			MinHard:        3,
			MinPYQ10:       2,
			MinPYQ15:       2,
		},
		Mastery: &MasteryConfig{
			EwmaAlpha:            0.6,
			TimeDecayDaily:       0.95,
			TargetEasySeconds:    90,
			TargetMediumSeconds:  150,
			TargetHardSeconds:    210,
			FullExposureAttempts: 10,
		},
		Queue: &QueueConfig{
			WorkerCount:              3,
			MaxConcurrentEnrichments: 6,
			PollInterval:             2 * time.Second,
			PollIntervalJitter:       500 * time.Millisecond,
			EnrichmentTimeout:        10 * time.Minute,
			GracefulShutdownTimeout:  10 * time.Minute,
			HeartbeatInterval:        30 * time.Second,
			OrphanDetectionInterval:  5 * time.Minute,
			OrphanThreshold:          5 * time.Minute,
		},
		Maintenance: &MaintenanceConfig{
			DecayInterval:      24 * time.Hour,
			AuditRetentionDays: 90,
			CleanupInterval:    6 * time.Hour,
		},
		Taxonomy: &TaxonomyConfig{},
	}
}

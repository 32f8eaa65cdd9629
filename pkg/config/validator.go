package config

import (
	"fmt"
)

// knownProviders are the chat-completion backends the gateway can build.
var knownProviders = map[string]struct{}{
	"openai":    {},
	"anthropic": {},
}

// validate performs comprehensive validation, failing fast at the first
// inconsistency so a broken deployment never starts serving.
func validate(cfg *Config) error {
	if err := validateLLM(cfg.LLM); err != nil {
		return fmt.Errorf("llm validation failed: %w", err)
	}
	if err := validatePlanner(cfg.Planner); err != nil {
		return fmt.Errorf("planner validation failed: %w", err)
	}
	if err := validatePool(cfg.Pool, cfg.Planner.PackSize); err != nil {
		return fmt.Errorf("pool validation failed: %w", err)
	}
	if err := validateMastery(cfg.Mastery); err != nil {
		return fmt.Errorf("mastery validation failed: %w", err)
	}
	if err := validateQueue(cfg.Queue); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}
	return nil
}

func validateLLM(c *LLMConfig) error {
	if _, ok := knownProviders[c.PrimaryProvider]; !ok {
		return NewValidationError("llm", "primary_provider",
			fmt.Errorf("%w: %q (must be openai or anthropic)", ErrInvalidValue, c.PrimaryProvider))
	}
	if _, ok := knownProviders[c.FallbackProvider]; !ok {
		return NewValidationError("llm", "fallback_provider",
			fmt.Errorf("%w: %q (must be openai or anthropic)", ErrInvalidValue, c.FallbackProvider))
	}
	if c.PrimaryModel == "" {
		return NewValidationError("llm", "primary_model", ErrMissingRequiredField)
	}
	if c.FallbackModel == "" {
		return NewValidationError("llm", "fallback_model", ErrMissingRequiredField)
	}
	if c.RecoveryIntervalSeconds <= 0 {
		return NewValidationError("llm", "recovery_interval_seconds",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if c.TimeoutSeconds <= 0 {
		return NewValidationError("llm", "timeout_seconds",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if len(c.RetryDelaysSeconds) == 0 {
		return NewValidationError("llm", "retry_delays_seconds",
			fmt.Errorf("%w: at least one delay required", ErrMissingRequiredField))
	}
	for _, d := range c.RetryDelaysSeconds {
		if d <= 0 {
			return NewValidationError("llm", "retry_delays_seconds",
				fmt.Errorf("%w: delays must be positive", ErrInvalidValue))
		}
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return NewValidationError("llm", "temperature",
			fmt.Errorf("%w: must be in [0, 2]", ErrInvalidValue))
	}
	return nil
}

func validatePlanner(c *PlannerConfig) error {
	if c.PackSize <= 0 {
		return NewValidationError("planner", "pack_size",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if c.PhaseACutoff <= 0 || c.PhaseBCutoff <= c.PhaseACutoff {
		return NewValidationError("planner", "phase_cutoffs",
			fmt.Errorf("%w: need 0 < phase_a_cutoff < phase_b_cutoff", ErrInvalidValue))
	}
	sum := 0
	for cat, q := range c.CategoryQuotas {
		if q < 0 {
			return NewValidationError("planner", "category_quotas",
				fmt.Errorf("%w: quota for %q is negative", ErrInvalidValue, cat))
		}
		sum += q
	}
	if sum != c.PackSize {
		return NewValidationError("planner", "category_quotas",
			fmt.Errorf("%w: quotas sum to %d, pack size is %d", ErrInvalidValue, sum, c.PackSize))
	}
	if c.MaxPerSubcategoryStrict <= 0 || c.MaxPerSubcategoryRelaxed < c.MaxPerSubcategoryStrict {
		return NewValidationError("planner", "max_per_subcategory",
			fmt.Errorf("%w: need 0 < strict <= relaxed", ErrInvalidValue))
	}
	if c.MaxPerTypeStrict <= 0 || c.MaxPerTypeRelaxed < c.MaxPerTypeStrict {
		return NewValidationError("planner", "max_per_type",
			fmt.Errorf("%w: need 0 < strict <= relaxed", ErrInvalidValue))
	}
	if c.MinDistinctSubcategories <= 0 || c.MinDistinctSubcategories > c.PackSize {
		return NewValidationError("planner", "min_distinct_subcategories",
			fmt.Errorf("%w: must be in [1, pack_size]", ErrInvalidValue))
	}
	if c.QuotaShiftMasteryGate <= 0 || c.QuotaShiftMasteryGate >= 1 {
		return NewValidationError("planner", "quota_shift_mastery_gate",
			fmt.Errorf("%w: must be in (0, 1)", ErrInvalidValue))
	}
	for _, d := range []int{c.CooldownEasyDays, c.CooldownMediumDays, c.CooldownHardDays} {
		if d < 0 {
			return NewValidationError("planner", "cooldown_days",
				fmt.Errorf("%w: cooldowns cannot be negative", ErrInvalidValue))
		}
	}
	return nil
}

func validatePool(c *PoolConfig, packSize int) error {
	if c.KPerBand <= 0 {
		return NewValidationError("pool", "k_per_band",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	for i, size := range c.Ladder {
		if size <= 0 {
			return NewValidationError("pool", "ladder",
				fmt.Errorf("%w: rung sizes must be positive", ErrInvalidValue))
		}
		if i > 0 && size <= c.Ladder[i-1] {
			return NewValidationError("pool", "ladder",
				fmt.Errorf("%w: rungs must be strictly increasing", ErrInvalidValue))
		}
	}
	if c.RecentSessions < 0 {
		return NewValidationError("pool", "recent_sessions",
			fmt.Errorf("%w: cannot be negative", ErrInvalidValue))
	}
	if c.MinEasy < 0 || c.MinMedium < 0 || c.MinHard < 0 {
		return NewValidationError("pool", "preflight_minima",
			fmt.Errorf("%w: cannot be negative", ErrInvalidValue))
	}
	if c.ColdStartSize < packSize {
		return NewValidationError("pool", "cold_start_size",
			fmt.Errorf("%w: must be at least the pack size %d", ErrInvalidValue, packSize))
	}
	return nil
}

func validateMastery(c *MasteryConfig) error {
	if c.EwmaAlpha <= 0 || c.EwmaAlpha > 1 {
		return NewValidationError("mastery", "ewma_alpha",
			fmt.Errorf("%w: must be in (0, 1]", ErrInvalidValue))
	}
	if c.TimeDecayDaily <= 0 || c.TimeDecayDaily > 1 {
		return NewValidationError("mastery", "time_decay_daily",
			fmt.Errorf("%w: must be in (0, 1]", ErrInvalidValue))
	}
	if c.TargetEasySeconds <= 0 || c.TargetMediumSeconds <= 0 || c.TargetHardSeconds <= 0 {
		return NewValidationError("mastery", "target_seconds",
			fmt.Errorf("%w: targets must be positive", ErrInvalidValue))
	}
	if c.FullExposureAttempts <= 0 {
		return NewValidationError("mastery", "full_exposure_attempts",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func validateQueue(c *QueueConfig) error {
	if c.WorkerCount <= 0 {
		return NewValidationError("queue", "worker_count",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if c.MaxConcurrentEnrichments < c.WorkerCount {
		return NewValidationError("queue", "max_concurrent_enrichments",
			fmt.Errorf("%w: must be at least worker_count", ErrInvalidValue))
	}
	if c.PollInterval <= 0 || c.EnrichmentTimeout <= 0 || c.HeartbeatInterval <= 0 {
		return NewValidationError("queue", "intervals",
			fmt.Errorf("%w: poll_interval, enrichment_timeout, heartbeat_interval must be positive", ErrInvalidValue))
	}
	if c.OrphanThreshold <= c.HeartbeatInterval {
		return NewValidationError("queue", "orphan_threshold",
			fmt.Errorf("%w: must exceed heartbeat_interval", ErrInvalidValue))
	}
	return nil
}

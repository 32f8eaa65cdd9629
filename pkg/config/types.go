package config

import (
	"time"

	"github.com/prepforge/quanta/pkg/models"
)

// LLMConfig selects the two chat-completion providers and tunes the
// gateway's retry and recovery behavior. The fallback serves under the
// exact same quality contract as the primary.
type LLMConfig struct {
	// PrimaryProvider and FallbackProvider name the backend: "openai"
	// or "anthropic".
	PrimaryProvider  string `yaml:"primary_provider"`
	PrimaryModel     string `yaml:"primary_model"`
	FallbackProvider string `yaml:"fallback_provider"`
	FallbackModel    string `yaml:"fallback_model"`

	// RecoveryIntervalSeconds is how long the gateway stays on the
	// fallback after a rate limit before probing the primary again.
	RecoveryIntervalSeconds int `yaml:"recovery_interval_seconds"`
	// TimeoutSeconds bounds each individual provider call.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// RetryDelaysSeconds is the back-off ladder for non-rate-limit
	// errors; its length is the retry budget.
	RetryDelaysSeconds []int `yaml:"retry_delays_seconds"`

	// MaxTokens caps completion length per call.
	MaxTokens int `yaml:"max_tokens"`
	// Temperature is used for every enrichment and matching call.
	Temperature float32 `yaml:"temperature"`
}

// RecoveryInterval returns the recovery window as a duration.
func (c *LLMConfig) RecoveryInterval() time.Duration {
	return time.Duration(c.RecoveryIntervalSeconds) * time.Second
}

// Timeout returns the per-call timeout as a duration.
func (c *LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RetryDelays returns the back-off ladder as durations.
func (c *LLMConfig) RetryDelays() []time.Duration {
	out := make([]time.Duration, len(c.RetryDelaysSeconds))
	for i, s := range c.RetryDelaysSeconds {
		out[i] = time.Duration(s) * time.Second
	}
	return out
}

// PlannerConfig carries the session-planning constraints.
type PlannerConfig struct {
	PackSize     int `yaml:"pack_size"`
	PhaseACutoff int `yaml:"phase_a_cutoff"`
	PhaseBCutoff int `yaml:"phase_b_cutoff"`

	// CategoryQuotas is the baseline per-pack target per canonical
	// category; the values must sum to PackSize.
	CategoryQuotas map[string]int `yaml:"category_quotas"`

	MaxPerSubcategoryStrict  int `yaml:"max_per_subcategory_strict"`
	MaxPerSubcategoryRelaxed int `yaml:"max_per_subcategory_relaxed"`
	MaxPerTypeStrict         int `yaml:"max_per_type_strict"`
	MaxPerTypeRelaxed        int `yaml:"max_per_type_relaxed"`
	MinDistinctSubcategories int `yaml:"min_distinct_subcategories"`

	// QuotaShiftMasteryGate is the average mastery above which the
	// strongest category gives one quota slot to the weakest in Phase C.
	QuotaShiftMasteryGate float64 `yaml:"quota_shift_mastery_gate"`

	// CooldownDays shadows recently served questions per difficulty
	// band. Zero disables the shadow for that band.
	CooldownEasyDays   int `yaml:"cooldown_easy_days"`
	CooldownMediumDays int `yaml:"cooldown_medium_days"`
	CooldownHardDays   int `yaml:"cooldown_hard_days"`

	// PlanTimeoutSeconds is the outer budget for one planning request;
	// expiry returns the seeded fallback pack.
	PlanTimeoutSeconds int `yaml:"plan_timeout_seconds"`
}

// PlanTimeout returns the outer planning budget as a duration.
func (c *PlannerConfig) PlanTimeout() time.Duration {
	return time.Duration(c.PlanTimeoutSeconds) * time.Second
}

// CooldownDays returns the per-band cooldown map.
func (c *PlannerConfig) CooldownDays() map[models.Band]int {
	return map[models.Band]int{
		models.BandEasy:   c.CooldownEasyDays,
		models.BandMedium: c.CooldownMediumDays,
		models.BandHard:   c.CooldownHardDays,
	}
}

// PoolConfig controls candidate pool assembly.
type PoolConfig struct {
	// KPerBand is the base per-band pool size; Ladder overrides the
	// derived [K, 2K, 4K] expansion when set.
	KPerBand int   `yaml:"k_per_band"`
	Ladder   []int `yaml:"ladder"`

	// RecentSessions is how many of the student's latest sessions have
	// their questions excluded from new pools.
	RecentSessions int `yaml:"recent_sessions"`
	// ColdStartSize is the target pool size for first-session students.
	ColdStartSize int `yaml:"cold_start_size"`

	// Preflight minima the pool must satisfy before planning.
	MinEasy   int `yaml:"min_easy"`
	MinMedium int `yaml:"min_medium"`
	MinHard   int `yaml:"min_hard"`
	MinPYQ10  int `yaml:"min_pyq_10"`
	MinPYQ15  int `yaml:"min_pyq_15"`
}

// MasteryConfig tunes the skill model.
type MasteryConfig struct {
	// EwmaAlpha is the weight of the newest attempt.
	EwmaAlpha float64 `yaml:"ewma_alpha"`
	// TimeDecayDaily multiplies accuracy and efficiency per inactive day.
	TimeDecayDaily float64 `yaml:"time_decay_daily"`

	// Target solve times per band, in seconds.
	TargetEasySeconds   float64 `yaml:"target_easy_seconds"`
	TargetMediumSeconds float64 `yaml:"target_medium_seconds"`
	TargetHardSeconds   float64 `yaml:"target_hard_seconds"`

	// FullExposureAttempts is where the exposure factor reaches 1.0.
	FullExposureAttempts int `yaml:"full_exposure_attempts"`
}

// TargetSeconds returns the per-band solve-time targets.
func (c *MasteryConfig) TargetSeconds() map[models.Band]float64 {
	return map[models.Band]float64{
		models.BandEasy:   c.TargetEasySeconds,
		models.BandMedium: c.TargetMediumSeconds,
		models.BandHard:   c.TargetHardSeconds,
	}
}

// QueueConfig contains the enrichment worker pool configuration. These
// values control how pending questions are polled, claimed, and enriched.
type QueueConfig struct {
	// WorkerCount is the number of enrichment workers per replica/pod.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentEnrichments is the global limit of questions being
	// enriched across ALL replicas, enforced by a database count.
	MaxConcurrentEnrichments int `yaml:"max_concurrent_enrichments"`

	// PollInterval is the base interval for checking pending questions;
	// the actual interval is PollInterval ± PollIntervalJitter.
	PollInterval       time.Duration `yaml:"poll_interval"`
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// EnrichmentTimeout bounds one question's full pipeline run.
	EnrichmentTimeout time.Duration `yaml:"enrichment_timeout"`

	// GracefulShutdownTimeout is the max time to wait for in-flight
	// enrichments during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// HeartbeatInterval is how often a worker refreshes the claim
	// timestamp on the question it is enriching.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanDetectionInterval is how often to scan for claims whose
	// worker died; OrphanThreshold is how stale a heartbeat must be.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`
	OrphanThreshold         time.Duration `yaml:"orphan_threshold"`
}

// MaintenanceConfig controls the background maintenance loop.
type MaintenanceConfig struct {
	// DecayInterval is how often the mastery time-decay pass runs.
	DecayInterval time.Duration `yaml:"decay_interval"`
	// AuditRetentionDays is how long enrichment audit rows are kept.
	AuditRetentionDays int `yaml:"audit_retention_days"`
	// CleanupInterval is how often the audit retention pass runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// TaxonomyConfig optionally replaces the builtin canonical tree.
type TaxonomyConfig struct {
	// File is a path (relative to the config dir) to a YAML taxonomy
	// spec. Empty means the builtin tree.
	File string `yaml:"file"`
}

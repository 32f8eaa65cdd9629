package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// applyEnvOverrides layers the documented environment variables over the
// merged configuration. Unparseable values are logged and skipped so a
// typo degrades to the file/default value instead of a silent zero.
func applyEnvOverrides(cfg *Config) {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) {
		v := os.Getenv(key)
		if v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			slog.Warn("Ignoring unparseable environment override", "key", key, "value", v)
			return
		}
		*dst = n
	}
	setFloat := func(key string, dst *float64) {
		v := os.Getenv(key)
		if v == "" {
			return
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			slog.Warn("Ignoring unparseable environment override", "key", key, "value", v)
			return
		}
		*dst = f
	}

	setString("LLM_PRIMARY_MODEL", &cfg.LLM.PrimaryModel)
	setString("LLM_FALLBACK_MODEL", &cfg.LLM.FallbackModel)
	setString("LLM_PRIMARY_PROVIDER", &cfg.LLM.PrimaryProvider)
	setString("LLM_FALLBACK_PROVIDER", &cfg.LLM.FallbackProvider)
	setInt("LLM_RECOVERY_INTERVAL_SECONDS", &cfg.LLM.RecoveryIntervalSeconds)
	setInt("LLM_TIMEOUT_SECONDS", &cfg.LLM.TimeoutSeconds)
	if delays, ok := parseIntList(os.Getenv("LLM_RETRY_DELAYS")); ok {
		cfg.LLM.RetryDelaysSeconds = delays
	}

	setFloat("EWMA_ALPHA", &cfg.Mastery.EwmaAlpha)
	setFloat("TIME_DECAY_DAILY", &cfg.Mastery.TimeDecayDaily)

	setInt("POOL_K_PER_BAND", &cfg.Pool.KPerBand)
	if ladder, ok := parseIntList(os.Getenv("POOL_LADDER")); ok {
		cfg.Pool.Ladder = ladder
	}

	setInt("COOLDOWN_EASY_DAYS", &cfg.Planner.CooldownEasyDays)
	setInt("COOLDOWN_MEDIUM_DAYS", &cfg.Planner.CooldownMediumDays)
	setInt("COOLDOWN_HARD_DAYS", &cfg.Planner.CooldownHardDays)
	setInt("MAX_PER_SUBCATEGORY_STRICT", &cfg.Planner.MaxPerSubcategoryStrict)
	setInt("MAX_PER_SUBCATEGORY_RELAXED", &cfg.Planner.MaxPerSubcategoryRelaxed)
	setInt("MAX_PER_TYPE_STRICT", &cfg.Planner.MaxPerTypeStrict)
	setInt("MAX_PER_TYPE_RELAXED", &cfg.Planner.MaxPerTypeRelaxed)
	setInt("PHASE_A_CUTOFF", &cfg.Planner.PhaseACutoff)
	setInt("PHASE_B_CUTOFF", &cfg.Planner.PhaseBCutoff)
}

// parseIntList parses "3,7,15,30" style values. Returns false for empty
// or malformed input.
func parseIntList(v string) ([]int, bool) {
	if v == "" {
		return nil, false
	}
	parts := strings.Split(v, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			slog.Warn("Ignoring unparseable list override", "value", v)
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

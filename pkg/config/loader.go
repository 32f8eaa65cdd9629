package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/prepforge/quanta/pkg/taxonomy"
)

// QuantaYAMLConfig represents the complete quanta.yaml file structure.
// Every section is optional; absent sections keep the built-in defaults.
type QuantaYAMLConfig struct {
	LLM         *LLMConfig         `yaml:"llm"`
	Planner     *PlannerConfig     `yaml:"planner"`
	Pool        *PoolConfig        `yaml:"pool"`
	Mastery     *MasteryConfig     `yaml:"mastery"`
	Queue       *QueueConfig       `yaml:"queue"`
	Maintenance *MaintenanceConfig `yaml:"maintenance"`
	Taxonomy    *TaxonomyConfig    `yaml:"taxonomy"`
}

// Initialize loads, merges, and validates the configuration.
//
// Steps performed:
//  1. Load quanta.yaml from configDir (missing file keeps defaults)
//  2. Expand {{.VAR}} environment references
//  3. Merge built-in defaults with the user YAML (user overrides)
//  4. Apply the documented environment variable overrides
//  5. Validate everything, fail fast on any inconsistency
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := Defaults()
	cfg.configDir = configDir

	user, err := loadQuantaYAML(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if user != nil {
		if err := mergeUserConfig(cfg, user); err != nil {
			return nil, fmt.Errorf("failed to merge configuration: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"primary_model", cfg.LLM.PrimaryModel,
		"fallback_model", cfg.LLM.FallbackModel,
		"pack_size", cfg.Planner.PackSize,
		"workers", cfg.Queue.WorkerCount)
	return cfg, nil
}

// loadQuantaYAML parses quanta.yaml if present. A missing file is not an
// error: the defaults plus environment variables are a complete config.
func loadQuantaYAML(configDir string) (*QuantaYAMLConfig, error) {
	path := filepath.Join(configDir, "quanta.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No quanta.yaml found, using defaults", "path", path)
			return nil, nil
		}
		return nil, NewLoadError("quanta.yaml", err)
	}

	data = ExpandEnv(data)

	var user QuantaYAMLConfig
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, NewLoadError("quanta.yaml", err)
	}
	return &user, nil
}

// mergeUserConfig overlays the user YAML onto the defaults, section by
// section. User values win; zero values in the user YAML keep defaults.
func mergeUserConfig(cfg *Config, user *QuantaYAMLConfig) error {
	sections := []struct {
		name string
		dst  any
		src  any
	}{
		{"llm", cfg.LLM, user.LLM},
		{"planner", cfg.Planner, user.Planner},
		{"pool", cfg.Pool, user.Pool},
		{"mastery", cfg.Mastery, user.Mastery},
		{"queue", cfg.Queue, user.Queue},
		{"maintenance", cfg.Maintenance, user.Maintenance},
		{"taxonomy", cfg.Taxonomy, user.Taxonomy},
	}
	for _, s := range sections {
		if s.src == nil || isNilPointer(s.src) {
			continue
		}
		if err := mergo.Merge(s.dst, s.src, mergo.WithOverride); err != nil {
			return fmt.Errorf("failed to merge %s section: %w", s.name, err)
		}
	}

	// mergo union-merges map fields even with WithOverride, which would
	// let a partial quota table inherit the remaining default categories
	// and slip past the quota-sum check. A user-supplied quota map
	// replaces the default wholesale so incomplete tables fail loudly.
	if user.Planner != nil && user.Planner.CategoryQuotas != nil {
		cfg.Planner.CategoryQuotas = user.Planner.CategoryQuotas
	}
	return nil
}

func isNilPointer(v any) bool {
	switch p := v.(type) {
	case *LLMConfig:
		return p == nil
	case *PlannerConfig:
		return p == nil
	case *PoolConfig:
		return p == nil
	case *MasteryConfig:
		return p == nil
	case *QueueConfig:
		return p == nil
	case *MaintenanceConfig:
		return p == nil
	case *TaxonomyConfig:
		return p == nil
	}
	return false
}

// LoadTaxonomy returns the canonical tree the deployment runs under: the
// builtin table, or the YAML spec named in the taxonomy section.
func (c *Config) LoadTaxonomy() (*taxonomy.Taxonomy, error) {
	if c.Taxonomy == nil || c.Taxonomy.File == "" {
		return taxonomy.Builtin(), nil
	}

	path := c.Taxonomy.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.configDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewLoadError(c.Taxonomy.File, err)
	}

	var spec taxonomy.Spec
	if err := yaml.Unmarshal(ExpandEnv(data), &spec); err != nil {
		return nil, NewLoadError(c.Taxonomy.File, err)
	}
	tax, err := taxonomy.New(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid taxonomy spec %s: %w", c.Taxonomy.File, err)
	}
	slog.Info("Loaded taxonomy from file", "path", path)
	return tax, nil
}

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DefaultsWithoutYAML(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.LLM.PrimaryProvider)
	assert.Equal(t, 1800, cfg.LLM.RecoveryIntervalSeconds)
	assert.Equal(t, []int{3, 7, 15, 30}, cfg.LLM.RetryDelaysSeconds)
	assert.Equal(t, 12, cfg.Planner.PackSize)
	assert.Equal(t, 30, cfg.Planner.PhaseACutoff)
	assert.Equal(t, 60, cfg.Planner.PhaseBCutoff)
	assert.Equal(t, []int{80, 160, 320}, cfg.Pool.Ladder)
	assert.Equal(t, 0.6, cfg.Mastery.EwmaAlpha)
}

func TestInitialize_YAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	yaml := `
llm:
  primary_model: gpt-4o-mini
  timeout_seconds: 45
planner:
  phase_a_cutoff: 10
  phase_b_cutoff: 20
pool:
  k_per_band: 40
  ladder: [40, 80, 160]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quanta.yaml"), []byte(yaml), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", cfg.LLM.PrimaryModel)
	assert.Equal(t, 45, cfg.LLM.TimeoutSeconds)
	assert.Equal(t, 10, cfg.Planner.PhaseACutoff)
	assert.Equal(t, 20, cfg.Planner.PhaseBCutoff)
	assert.Equal(t, 40, cfg.Pool.KPerBand)
	assert.Equal(t, []int{40, 80, 160}, cfg.Pool.Ladder)

	// Untouched sections keep defaults.
	assert.Equal(t, "openai", cfg.LLM.PrimaryProvider)
	assert.Equal(t, 12, cfg.Planner.PackSize)
	assert.Equal(t, 0.95, cfg.Mastery.TimeDecayDaily)
}

func TestInitialize_EnvOverridesWinOverYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := `
llm:
  primary_model: from-yaml
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quanta.yaml"), []byte(yaml), 0o644))

	t.Setenv("LLM_PRIMARY_MODEL", "from-env")
	t.Setenv("LLM_RETRY_DELAYS", "1,2,4")
	t.Setenv("EWMA_ALPHA", "0.5")
	t.Setenv("PHASE_A_CUTOFF", "5")
	t.Setenv("PHASE_B_CUTOFF", "15")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.LLM.PrimaryModel)
	assert.Equal(t, []int{1, 2, 4}, cfg.LLM.RetryDelaysSeconds)
	assert.Equal(t, 0.5, cfg.Mastery.EwmaAlpha)
	assert.Equal(t, 5, cfg.Planner.PhaseACutoff)
	assert.Equal(t, 15, cfg.Planner.PhaseBCutoff)
}

func TestInitialize_UnparseableEnvOverrideIsIgnored(t *testing.T) {
	t.Setenv("LLM_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.LLM.TimeoutSeconds)
}

func TestInitialize_EnvExpansionInYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := `
llm:
  primary_model: "{{.QUANTA_TEST_MODEL}}"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quanta.yaml"), []byte(yaml), 0o644))
	t.Setenv("QUANTA_TEST_MODEL", "expanded-model")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "expanded-model", cfg.LLM.PrimaryModel)
}

func TestInitialize_InvalidYAMLFailsLoudly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quanta.yaml"), []byte("llm: ["), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quanta.yaml")
}

func TestInitialize_QuotaSumMismatchFailsValidation(t *testing.T) {
	dir := t.TempDir()
	yaml := `
planner:
  category_quotas:
    Arithmetic: 4
    Algebra: 3
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quanta.yaml"), []byte(yaml), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category_quotas")
}

func TestInitialize_UserQuotasReplaceDefaultsWholesale(t *testing.T) {
	dir := t.TempDir()
	yaml := `
planner:
  category_quotas:
    Arithmetic: 6
    Algebra: 6
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quanta.yaml"), []byte(yaml), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Default categories must not leak into a user-supplied quota table.
	assert.Equal(t, map[string]int{"Arithmetic": 6, "Algebra": 6}, cfg.Planner.CategoryQuotas)
}

func TestLoadTaxonomy_BuiltinByDefault(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	tax, err := cfg.LoadTaxonomy()
	require.NoError(t, err)
	assert.True(t, tax.ValidPath("Arithmetic", "Percentages", "Basic Percentage Calculation"))
}

func TestLoadTaxonomy_FromFile(t *testing.T) {
	dir := t.TempDir()
	taxYAML := `
categories:
  - name: Arithmetic
    subcategories:
      - name: Percentages
        types: [Basic Percentage Calculation]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "taxonomy.yaml"), []byte(taxYAML), 0o644))
	cfgYAML := `
taxonomy:
  file: taxonomy.yaml
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quanta.yaml"), []byte(cfgYAML), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	tax, err := cfg.LoadTaxonomy()
	require.NoError(t, err)
	assert.True(t, tax.ValidPath("Arithmetic", "Percentages", "Basic Percentage Calculation"))
	assert.False(t, tax.ValidPath("Algebra", "Linear Equations", "Single Variable"))
}

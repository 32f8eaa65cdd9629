// Package config loads and validates the quanta configuration: built-in
// defaults merged with an optional quanta.yaml, with the documented
// environment variables applied on top.
package config

// Config is the umbrella configuration object returned by Initialize()
// and handed to the components at startup.
type Config struct {
	configDir string

	LLM         *LLMConfig
	Planner     *PlannerConfig
	Pool        *PoolConfig
	Mastery     *MasteryConfig
	Queue       *QueueConfig
	Maintenance *MaintenanceConfig
	Taxonomy    *TaxonomyConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

package models

// BandCounts holds one integer per difficulty band.
type BandCounts struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// Get returns the count for a band.
func (c BandCounts) Get(b Band) int {
	switch b {
	case BandEasy:
		return c.Easy
	case BandMedium:
		return c.Medium
	case BandHard:
		return c.Hard
	}
	return 0
}

// Add increments the count for a band.
func (c *BandCounts) Add(b Band, n int) {
	switch b {
	case BandEasy:
		c.Easy += n
	case BandMedium:
		c.Medium += n
	case BandHard:
		c.Hard += n
	}
}

// Total returns the sum across bands.
func (c BandCounts) Total() int {
	return c.Easy + c.Medium + c.Hard
}

// BackfillNote records one slot that could not be filled from its planned
// band and was substituted from another.
type BackfillNote struct {
	Position int    `json:"position"`
	Planned  Band   `json:"planned_band"`
	Used     Band   `json:"used_band"`
	Reason   string `json:"reason,omitempty"`
}

// QuotaShift records the Phase C quota transfer from the strongest to the
// weakest category.
type QuotaShift struct {
	FromCategory string `json:"from_category"`
	ToCategory   string `json:"to_category"`
}

// RelaxationLevel names how far the diversity caps were widened to fill
// the pack.
type RelaxationLevel string

const (
	RelaxStrict    RelaxationLevel = "strict"
	RelaxRelaxed   RelaxationLevel = "relaxed"
	RelaxUnbounded RelaxationLevel = "unbounded"
)

// ConstraintReport is the planner's telemetry for one pack: what was
// requested, what was achieved, and every concession made along the way.
// Plan responses always carry one; its absence is a contract violation.
type ConstraintReport struct {
	Phase       Phase       `json:"phase"`
	SessionType SessionType `json:"session_type"`
	Seed        string      `json:"seed"`

	PoolRung        int        `json:"pool_rung"`
	PoolSizes       BandCounts `json:"pool_sizes"`
	RecentExcluded  int        `json:"recent_excluded"`
	RecencyRelaxed  bool       `json:"recency_relaxed,omitempty"`
	CooldownRelaxed bool       `json:"cooldown_relaxed,omitempty"`

	PlannedMix  BandCounts `json:"planned_mix"`
	AchievedMix BandCounts `json:"achieved_mix"`

	CategoryQuotas   map[string]int `json:"category_quotas"`
	CategoryAchieved map[string]int `json:"category_achieved"`
	QuotaShift       *QuotaShift    `json:"quota_shift,omitempty"`

	RelaxationLevel       RelaxationLevel `json:"relaxation_level"`
	DistinctSubcategories int             `json:"distinct_subcategories"`

	// CoverageNew and CoverageSeen split the pack by whether the
	// (subcategory, type) pair had been served to the student before.
	CoverageNew  int `json:"coverage_new"`
	CoverageSeen int `json:"coverage_seen"`

	// SubcategoryDistribution counts picks per subcategory;
	// TypeDistribution counts picks per "subcategory|type" pair.
	SubcategoryDistribution map[string]int `json:"subcategory_distribution"`
	TypeDistribution        map[string]int `json:"type_distribution"`

	// LLMAssessmentRespected is true when the planned mix was rewritten to
	// all-Medium because the pool held no Easy and no Hard candidates: the
	// stored difficulty assessment was honored instead of forcing a spread
	// the bank cannot support.
	LLMAssessmentRespected bool `json:"llm_assessment_respected,omitempty"`

	Backfills []BackfillNote `json:"backfills,omitempty"`

	// FallbackReason is set only on simple_random packs.
	FallbackReason string `json:"fallback_reason,omitempty"`

	Notes []string `json:"notes,omitempty"`
}

// Note appends a free-form planner note.
func (r *ConstraintReport) Note(msg string) {
	r.Notes = append(r.Notes, msg)
}

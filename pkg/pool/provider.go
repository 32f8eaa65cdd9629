package pool

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prepforge/quanta/pkg/models"
)

// Source supplies the raw material for pool assembly. Implementations
// query the question bank and the student's serving history.
type Source interface {
	// ActiveCandidates returns every question eligible for serving:
	// is_active and quality_verified with a classified difficulty band.
	ActiveCandidates(ctx context.Context) ([]models.Candidate, error)
	// RecentQuestionIDs returns the ids served to the student in their
	// most recent sessions.
	RecentQuestionIDs(ctx context.Context, studentID string, sessions int) (map[string]struct{}, error)
	// LastServedAt returns, for questions served to the student within
	// the window, the most recent serving time.
	LastServedAt(ctx context.Context, studentID string, within time.Duration) (map[string]time.Time, error)
}

// Preflight holds the minimum pool composition a pack can be planned from.
type Preflight struct {
	MinEasy   int
	MinMedium int
	MinHard   int
	// MinPYQ10 and MinPYQ15 require members at or above frequency scores
	// 1.0 and 1.5. They gate the pool, not every pack.
	MinPYQ10 int
	MinPYQ15 int
}

// Config controls pool assembly. Zero values fall back to defaults.
type Config struct {
	// KPerBand is the base per-band pool size; the ladder doubles it
	// twice when preflight fails.
	KPerBand int
	// Ladder overrides the derived [K, 2K, 4K] sizes when non-empty.
	Ladder []int
	// RecentSessions is how many of the student's latest sessions have
	// their questions excluded from new pools.
	RecentSessions int
	// CooldownDays shadows questions served within the window, per band.
	// A zero entry disables the shadow for that band.
	CooldownDays map[models.Band]int
	// ColdStartSize is the target pool size for first-session students.
	ColdStartSize int

	Preflight Preflight
}

// DefaultConfig returns the standard pool configuration. Cooldown shadows
// are off until configured.
func DefaultConfig() Config {
	return Config{
		KPerBand:       80,
		RecentSessions: 3,
		CooldownDays: map[models.Band]int{
			models.BandEasy:   0,
			models.BandMedium: 0,
			models.BandHard:   0,
		},
		ColdStartSize: 100,
		Preflight: Preflight{
			MinEasy:   3,
			MinMedium: 6,
			MinHard:   3,
			MinPYQ10:  2,
			MinPYQ15:  2,
		},
	}
}

func (c Config) ladder() []int {
	if len(c.Ladder) > 0 {
		return c.Ladder
	}
	k := c.KPerBand
	if k <= 0 {
		k = 80
	}
	return []int{k, 2 * k, 4 * k}
}

func (c Config) maxCooldown() time.Duration {
	days := 0
	for _, d := range c.CooldownDays {
		if d > days {
			days = d
		}
	}
	return time.Duration(days) * 24 * time.Hour
}

// Provider assembles deterministic candidate pools for the planner.
type Provider struct {
	source Source
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// NewProvider creates a candidate provider backed by the given source.
func NewProvider(source Source, cfg Config, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		source: source,
		cfg:    cfg,
		logger: logger.With("component", "pool"),
		now:    time.Now,
	}
}

// Build assembles the candidate pool for one pack. coldStart selects the
// diversity-first path for students with no serving history.
func (p *Provider) Build(ctx context.Context, studentID string, sessSeq int, coldStart bool) (*models.CandidatePool, error) {
	seed := Seed(studentID, sessSeq)

	all, err := p.source.ActiveCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active candidates: %w", err)
	}
	rank(all, seed)

	if coldStart {
		pool := p.buildColdStart(all, seed)
		p.logger.Info("assembled cold-start pool",
			"student_id", studentID,
			"sess_seq", sessSeq,
			"size", pool.Size(),
			"feasible", pool.Feasible)
		return pool, nil
	}

	recent, err := p.source.RecentQuestionIDs(ctx, studentID, p.cfg.RecentSessions)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent question ids: %w", err)
	}
	var servedAt map[string]time.Time
	if window := p.cfg.maxCooldown(); window > 0 {
		servedAt, err = p.source.LastServedAt(ctx, studentID, window)
		if err != nil {
			return nil, fmt.Errorf("failed to load serving history: %w", err)
		}
	}

	pool := p.assemble(all, seed, recent, servedAt)
	p.logger.Info("assembled candidate pool",
		"student_id", studentID,
		"sess_seq", sessSeq,
		"rung", pool.Rung,
		"sizes", []int{len(pool.Easy), len(pool.Medium), len(pool.Hard)},
		"feasible", pool.Feasible,
		"recency_relaxed", pool.RecencyRelaxed,
		"cooldown_relaxed", pool.CooldownRelaxed)
	return pool, nil
}

// assemble walks the size ladder under progressively weaker exclusion
// filters: cooldown shadows lift first, recency exclusion last. The first
// pool to pass preflight wins; if none does, the widest fully relaxed pool
// is returned marked infeasible.
func (p *Provider) assemble(all []models.Candidate, seed string, recent map[string]struct{}, servedAt map[string]time.Time) *models.CandidatePool {
	type relaxation struct {
		cooldown bool
		recency  bool
	}
	levels := []relaxation{
		{cooldown: false, recency: false},
		{cooldown: true, recency: false},
		{cooldown: true, recency: true},
	}

	var last *models.CandidatePool
	for _, lvl := range levels {
		eligible, excluded := p.filter(all, recent, servedAt, lvl.cooldown, lvl.recency)
		for rung, size := range p.cfg.ladder() {
			pool := partition(eligible, size)
			pool.Seed = seed
			pool.Rung = rung
			pool.RecentExcluded = excluded
			pool.RecencyRelaxed = lvl.recency
			pool.CooldownRelaxed = lvl.cooldown
			pool.Feasible = p.preflight(pool)
			if pool.Feasible {
				return pool
			}
			last = pool
		}
		// No point relaxing further when the unfiltered bank itself is
		// too thin to pass preflight.
		if len(eligible) == len(all) {
			break
		}
	}
	last.Rung = -1
	return last
}

// filter drops recently served and cooldown-shadowed candidates. Relaxed
// filters are skipped. Returns the survivors (order preserved) and the
// recency exclusion count.
func (p *Provider) filter(all []models.Candidate, recent map[string]struct{}, servedAt map[string]time.Time, relaxCooldown, relaxRecency bool) ([]models.Candidate, int) {
	eligible := make([]models.Candidate, 0, len(all))
	excluded := 0
	now := p.now()
	for _, c := range all {
		if !relaxRecency {
			if _, ok := recent[c.QuestionID]; ok {
				excluded++
				continue
			}
		}
		if !relaxCooldown && servedAt != nil {
			if days := p.cfg.CooldownDays[c.Band]; days > 0 {
				if at, ok := servedAt[c.QuestionID]; ok && now.Sub(at) < time.Duration(days)*24*time.Hour {
					continue
				}
			}
		}
		eligible = append(eligible, c)
	}
	return eligible, excluded
}

// partition splits rank-ordered candidates into per-band lists capped at
// perBand each, preserving the seeded order within every band.
func partition(eligible []models.Candidate, perBand int) *models.CandidatePool {
	pool := &models.CandidatePool{}
	for _, c := range eligible {
		switch c.Band {
		case models.BandEasy:
			if len(pool.Easy) < perBand {
				pool.Easy = append(pool.Easy, c)
			}
		case models.BandMedium:
			if len(pool.Medium) < perBand {
				pool.Medium = append(pool.Medium, c)
			}
		case models.BandHard:
			if len(pool.Hard) < perBand {
				pool.Hard = append(pool.Hard, c)
			}
		}
		if len(pool.Easy) >= perBand && len(pool.Medium) >= perBand && len(pool.Hard) >= perBand {
			break
		}
	}
	countPYQ(pool)
	return pool
}

func countPYQ(pool *models.CandidatePool) {
	pool.PYQCount10, pool.PYQCount15 = 0, 0
	for _, b := range models.Bands() {
		for _, c := range pool.BandSlice(b) {
			if c.PYQFrequencyScore >= 1.0 {
				pool.PYQCount10++
			}
			if c.PYQFrequencyScore >= 1.5 {
				pool.PYQCount15++
			}
		}
	}
}

func (p *Provider) preflight(pool *models.CandidatePool) bool {
	pf := p.cfg.Preflight
	return len(pool.Easy) >= pf.MinEasy &&
		len(pool.Medium) >= pf.MinMedium &&
		len(pool.Hard) >= pf.MinHard &&
		pool.PYQCount10 >= pf.MinPYQ10 &&
		pool.PYQCount15 >= pf.MinPYQ15
}

// buildColdStart assembles a first-session pool that favors breadth over
// depth: exam-frequency anchors are admitted first, then one question per
// unseen (subcategory, type) pair, then seeded order fills the remainder.
func (p *Provider) buildColdStart(all []models.Candidate, seed string) *models.CandidatePool {
	size := p.cfg.ColdStartSize
	if size <= 0 {
		size = 100
	}
	if size > len(all) {
		size = len(all)
	}

	picked := make([]models.Candidate, 0, size)
	taken := make(map[string]struct{}, size)
	take := func(c models.Candidate) {
		picked = append(picked, c)
		taken[c.QuestionID] = struct{}{}
	}

	// Frequency anchors go in first so thin pools still carry them.
	anchors := []struct {
		min  float64
		want int
	}{
		{1.5, p.cfg.Preflight.MinPYQ15},
		{1.0, p.cfg.Preflight.MinPYQ10},
	}
	for _, a := range anchors {
		min := a.min
		have := 0
		for _, c := range picked {
			if c.PYQFrequencyScore >= min {
				have++
			}
		}
		for _, c := range all {
			if have >= a.want || len(picked) >= size {
				break
			}
			if _, ok := taken[c.QuestionID]; ok {
				continue
			}
			if c.PYQFrequencyScore >= min {
				take(c)
				have++
			}
		}
	}

	pairSeen := make(map[string]struct{})
	for _, c := range picked {
		pairSeen[c.Subcategory+"|"+c.TypeOfQuestion] = struct{}{}
	}
	for _, c := range all {
		if len(picked) >= size {
			break
		}
		if _, ok := taken[c.QuestionID]; ok {
			continue
		}
		pair := c.Subcategory + "|" + c.TypeOfQuestion
		if _, seen := pairSeen[pair]; seen {
			continue
		}
		pairSeen[pair] = struct{}{}
		take(c)
	}
	for _, c := range all {
		if len(picked) >= size {
			break
		}
		if _, ok := taken[c.QuestionID]; ok {
			continue
		}
		take(c)
	}

	// Keep seeded order inside each band.
	rank(picked, seed)
	pool := partition(picked, len(picked))
	pool.Seed = seed
	pool.ColdStart = true
	pool.Feasible = p.preflight(pool)

	// Top up short bands from the rest of the bank before declaring the
	// pool infeasible.
	if !pool.Feasible {
		p.topUp(pool, all, taken)
		countPYQ(pool)
		pool.Feasible = p.preflight(pool)
	}
	if !pool.Feasible {
		pool.Rung = -1
	}
	return pool
}

// topUp appends unpicked candidates to bands below their preflight
// minimum, in seeded order.
func (p *Provider) topUp(pool *models.CandidatePool, all []models.Candidate, taken map[string]struct{}) {
	need := func(b models.Band) int {
		switch b {
		case models.BandEasy:
			return p.cfg.Preflight.MinEasy - len(pool.Easy)
		case models.BandMedium:
			return p.cfg.Preflight.MinMedium - len(pool.Medium)
		case models.BandHard:
			return p.cfg.Preflight.MinHard - len(pool.Hard)
		}
		return 0
	}
	for _, c := range all {
		if need(models.BandEasy) <= 0 && need(models.BandMedium) <= 0 && need(models.BandHard) <= 0 {
			return
		}
		if _, ok := taken[c.QuestionID]; ok {
			continue
		}
		if need(c.Band) <= 0 {
			continue
		}
		taken[c.QuestionID] = struct{}{}
		switch c.Band {
		case models.BandEasy:
			pool.Easy = append(pool.Easy, c)
		case models.BandMedium:
			pool.Medium = append(pool.Medium, c)
		case models.BandHard:
			pool.Hard = append(pool.Hard, c)
		}
	}
}

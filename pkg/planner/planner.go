package planner

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/prepforge/quanta/pkg/models"
	"github.com/prepforge/quanta/pkg/taxonomy"
)

// Config carries the planning constraints. Zero values fall back to the
// defaults, so a partially filled config is safe.
type Config struct {
	// PackSize is the number of questions per session.
	PackSize int
	// PhaseACutoff and PhaseBCutoff are session-count boundaries: below
	// the first is Phase A, below the second Phase B, else Phase C.
	PhaseACutoff int
	PhaseBCutoff int
	// CategoryQuotas is the per-pack target count per canonical category.
	CategoryQuotas map[string]int
	// MaxPerSubcategoryStrict and MaxPerSubcategoryRelaxed bound how many
	// questions may share a subcategory before and after relaxation.
	MaxPerSubcategoryStrict  int
	MaxPerSubcategoryRelaxed int
	// MaxPerTypeStrict and MaxPerTypeRelaxed bound how many questions may
	// share a (subcategory, type) pair; they relax on the same ladder as
	// the subcategory caps.
	MaxPerTypeStrict  int
	MaxPerTypeRelaxed int
	// MinDistinctSubcategories is the diversity floor per pack.
	MinDistinctSubcategories int
	// QuotaShiftMasteryGate is the average mastery above which the
	// strongest category gives one quota slot to the weakest in Phase C.
	QuotaShiftMasteryGate float64
}

// DefaultConfig returns the standard planning constraints.
func DefaultConfig() Config {
	return Config{
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
	}
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.PackSize <= 0 {
		c.PackSize = d.PackSize
	}
	if c.PhaseACutoff <= 0 {
		c.PhaseACutoff = d.PhaseACutoff
	}
	if c.PhaseBCutoff <= 0 {
		c.PhaseBCutoff = d.PhaseBCutoff
	}
	if len(c.CategoryQuotas) == 0 {
		c.CategoryQuotas = d.CategoryQuotas
	}
	if c.MaxPerSubcategoryStrict <= 0 {
		c.MaxPerSubcategoryStrict = d.MaxPerSubcategoryStrict
	}
	if c.MaxPerSubcategoryRelaxed <= 0 {
		c.MaxPerSubcategoryRelaxed = d.MaxPerSubcategoryRelaxed
	}
	if c.MaxPerTypeStrict <= 0 {
		c.MaxPerTypeStrict = d.MaxPerTypeStrict
	}
	if c.MaxPerTypeRelaxed <= 0 {
		c.MaxPerTypeRelaxed = d.MaxPerTypeRelaxed
	}
	if c.MinDistinctSubcategories <= 0 {
		c.MinDistinctSubcategories = d.MinDistinctSubcategories
	}
	if c.QuotaShiftMasteryGate <= 0 {
		c.QuotaShiftMasteryGate = d.QuotaShiftMasteryGate
	}
	return c
}

// Input is everything one planning run consumes. The planner performs no
// I/O; callers assemble the input from storage.
type Input struct {
	StudentID string
	SessSeq   int
	// ServedCount is the number of sessions the student has been served
	// or completed; it determines the phase.
	ServedCount int
	Pool        *models.CandidatePool
	// Mastery holds the student's snapshot rows, both per (subcategory,
	// type) and the subcategory-level aggregates with an empty type.
	Mastery []models.MasterySnapshot
	// Seen maps "subcategory|type" to the number of sessions that served
	// the pair; pairs absent from the map are coverage-new.
	Seen map[string]int
}

// Entry is one planned slot: the chosen candidate plus slot provenance.
// The candidate keeps its stored band; SlotBand records which target the
// pick filled, which differs only for backfilled slots.
type Entry struct {
	Candidate   models.Candidate
	Position    int
	SlotBand    models.Band
	CoverageNew bool
	Backfilled  bool
}

// Plan is a fully resolved pack with its constraint report.
type Plan struct {
	StudentID   string
	SessSeq     int
	Phase       models.Phase
	SessionType models.SessionType
	Seed        string
	Entries     []Entry
	Report      models.ConstraintReport
}

// Planner produces deterministic 12-question packs from candidate pools.
type Planner struct {
	cfg    Config
	tax    *taxonomy.Taxonomy
	logger *slog.Logger
}

// New creates a planner. A nil taxonomy falls back to the builtin tree.
func New(cfg Config, tax *taxonomy.Taxonomy, logger *slog.Logger) *Planner {
	if tax == nil {
		tax = taxonomy.Builtin()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{
		cfg:    cfg.normalized(),
		tax:    tax,
		logger: logger.With("component", "planner"),
	}
}

// Pair is one (subcategory, type) coverage unit.
type Pair struct {
	Subcategory    string
	TypeOfQuestion string
}

// PairKey builds the coverage map key for a (subcategory, type) pair.
func PairKey(subcategory, typeOfQuestion string) string {
	return subcategory + "|" + typeOfQuestion
}

// Plan runs the full selection algorithm. Identical inputs produce
// byte-identical plans. An infeasible but non-empty pool still plans
// adaptively; only a pool too small for a full pack falls back to the
// seeded-random path.
func (p *Planner) Plan(in Input) (*Plan, error) {
	if in.Pool == nil {
		return nil, fmt.Errorf("failed to plan session: candidate pool is nil")
	}

	phase := phaseFor(in.ServedCount, p.cfg.PhaseACutoff, p.cfg.PhaseBCutoff)
	if in.Pool.Size() < p.cfg.PackSize {
		p.logger.Warn("candidate pool below pack size, using seeded fallback",
			"student_id", in.StudentID,
			"sess_seq", in.SessSeq,
			"pool_size", in.Pool.Size())
		return p.Fallback(in, "pool_exhausted"), nil
	}

	mix := mixFor(phase, p.cfg.PackSize)
	report := models.ConstraintReport{
		Phase:           phase,
		SessionType:     models.SessionAdaptive,
		Seed:            in.Pool.Seed,
		PoolRung:        in.Pool.Rung,
		PoolSizes:       poolSizes(in.Pool),
		RecentExcluded:  in.Pool.RecentExcluded,
		RecencyRelaxed:  in.Pool.RecencyRelaxed,
		CooldownRelaxed: in.Pool.CooldownRelaxed,
	}
	if in.Pool.ColdStart {
		report.SessionType = models.SessionColdStart
	}
	if !in.Pool.Feasible {
		report.Note("pool failed preflight, planned best-effort")
	}

	// When the bank holds nothing outside Medium, honor the stored
	// difficulty assessment instead of forcing an unreachable spread.
	if len(in.Pool.Easy) == 0 && len(in.Pool.Hard) == 0 {
		mix = models.BandCounts{Medium: p.cfg.PackSize}
		report.LLMAssessmentRespected = true
		report.Note("pool holds Medium only, mix rewritten to respect stored difficulty")
	}
	report.PlannedMix = mix

	quotas, shift := p.applyQuotaShift(phase, in.Mastery)
	report.CategoryQuotas = quotas
	report.QuotaShift = shift

	sel := newSelector(p.cfg, phase, in, quotas)
	sel.run(mix)
	sel.repairDiversity()

	entries := p.present(phase, sel.picks)
	finishReport(&report, sel, entries)

	plan := &Plan{
		StudentID:   in.StudentID,
		SessSeq:     in.SessSeq,
		Phase:       phase,
		SessionType: report.SessionType,
		Seed:        in.Pool.Seed,
		Entries:     entries,
		Report:      report,
	}
	p.logger.Info("planned session",
		"student_id", in.StudentID,
		"sess_seq", in.SessSeq,
		"phase", phase,
		"session_type", report.SessionType,
		"relaxation", report.RelaxationLevel,
		"backfills", len(report.Backfills))
	return plan, nil
}

// applyQuotaShift computes the per-category quotas for this pack. In
// Phase C one slot moves from the strongest category to the weakest when
// the strongest clears the mastery gate and can spare a slot.
func (p *Planner) applyQuotaShift(phase models.Phase, snapshots []models.MasterySnapshot) (map[string]int, *models.QuotaShift) {
	quotas := make(map[string]int, len(p.cfg.CategoryQuotas))
	for cat, q := range p.cfg.CategoryQuotas {
		quotas[cat] = q
	}
	if phase != models.PhaseC {
		return quotas, nil
	}

	avg := p.categoryAverages(snapshots)
	cats := make([]string, 0, len(quotas))
	for cat := range quotas {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	weakest, strongest := "", ""
	for _, cat := range cats {
		if weakest == "" || avg[cat] < avg[weakest] {
			weakest = cat
		}
		if quotas[cat] >= 2 && (strongest == "" || avg[cat] > avg[strongest]) {
			strongest = cat
		}
	}
	if strongest == "" || weakest == strongest || avg[strongest] <= p.cfg.QuotaShiftMasteryGate {
		return quotas, nil
	}
	quotas[strongest]--
	quotas[weakest]++
	return quotas, &models.QuotaShift{FromCategory: strongest, ToCategory: weakest}
}

// categoryAverages averages the subcategory-level mastery rows per
// category. Categories without rows average to zero.
func (p *Planner) categoryAverages(snapshots []models.MasterySnapshot) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, m := range snapshots {
		if m.TypeOfQuestion != "" {
			continue
		}
		cat, ok := p.tax.Category(m.Subcategory)
		if !ok {
			continue
		}
		sums[cat] += m.MasteryPct
		counts[cat]++
	}
	avg := make(map[string]float64, len(sums))
	for cat, sum := range sums {
		avg[cat] = sum / float64(counts[cat])
	}
	return avg
}

// present orders the picks for serving and assigns positions. Phases A
// and B group by rising band then subcategory; Phase C ramps by raw
// difficulty score so the pack reads as a progression.
func (p *Planner) present(phase models.Phase, picks []pick) []Entry {
	ordered := make([]pick, len(picks))
	copy(ordered, picks)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].cand, ordered[j].cand
		if phase == models.PhaseC {
			if a.DifficultyScore != b.DifficultyScore {
				return a.DifficultyScore < b.DifficultyScore
			}
		} else if bandIndex(a.Band) != bandIndex(b.Band) {
			return bandIndex(a.Band) < bandIndex(b.Band)
		}
		if a.Subcategory != b.Subcategory {
			return a.Subcategory < b.Subcategory
		}
		if a.PYQFrequencyScore != b.PYQFrequencyScore {
			return a.PYQFrequencyScore > b.PYQFrequencyScore
		}
		return a.QuestionID < b.QuestionID
	})

	entries := make([]Entry, len(ordered))
	for i, pk := range ordered {
		entries[i] = Entry{
			Candidate:   pk.cand,
			Position:    i + 1,
			SlotBand:    pk.slotBand,
			CoverageNew: pk.coverageNew,
			Backfilled:  pk.backfilled,
		}
	}
	return entries
}

func finishReport(report *models.ConstraintReport, sel *selector, entries []Entry) {
	achieved := models.BandCounts{}
	cats := make(map[string]int)
	subs := make(map[string]int)
	pairs := make(map[string]int)
	var backfills []models.BackfillNote
	for _, e := range entries {
		achieved.Add(e.Candidate.Band, 1)
		cats[e.Candidate.Category]++
		subs[e.Candidate.Subcategory]++
		pairs[PairKey(e.Candidate.Subcategory, e.Candidate.TypeOfQuestion)]++
		if e.CoverageNew {
			report.CoverageNew++
		} else {
			report.CoverageSeen++
		}
		if n, ok := sel.backfilled[e.Candidate.QuestionID]; ok {
			n.Position = e.Position
			backfills = append(backfills, n)
		}
	}
	report.AchievedMix = achieved
	report.CategoryAchieved = cats
	report.SubcategoryDistribution = subs
	report.TypeDistribution = pairs
	report.DistinctSubcategories = len(subs)
	report.RelaxationLevel = sel.level
	report.Backfills = backfills
	for _, n := range sel.notes {
		report.Note(n)
	}
}

func poolSizes(p *models.CandidatePool) models.BandCounts {
	return models.BandCounts{
		Easy:   len(p.Easy),
		Medium: len(p.Medium),
		Hard:   len(p.Hard),
	}
}

func bandIndex(b models.Band) int {
	switch b {
	case models.BandEasy:
		return 0
	case models.BandMedium:
		return 1
	case models.BandHard:
		return 2
	}
	return 3
}

package planner

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepforge/quanta/pkg/models"
)

func newTestPlanner() *Planner {
	return New(DefaultConfig(), nil, nil)
}

var nextOrderKey uint64

func cand(id, cat, sub, typ string, band models.Band, score, pyq float64) models.Candidate {
	nextOrderKey++
	return models.Candidate{
		QuestionID:        id,
		Category:          cat,
		Subcategory:       sub,
		TypeOfQuestion:    typ,
		Band:              band,
		DifficultyScore:   score,
		PYQFrequencyScore: pyq,
		OrderKey:          nextOrderKey,
	}
}

// balancedPool spreads candidates across all five categories with enough
// members in every band to plan without concessions.
func balancedPool(seed string) *models.CandidatePool {
	nextOrderKey = 0
	p := &models.CandidatePool{Feasible: true, Seed: seed}

	add := func(c models.Candidate) {
		switch c.Band {
		case models.BandEasy:
			p.Easy = append(p.Easy, c)
		case models.BandMedium:
			p.Medium = append(p.Medium, c)
		case models.BandHard:
			p.Hard = append(p.Hard, c)
		}
	}

	type subDef struct {
		cat, sub, typ string
	}
	subs := []subDef{
		{"Arithmetic", "Percentages", "Percentage Change"},
		{"Arithmetic", "Averages", "Simple Averages"},
		{"Arithmetic", "Ratio and Proportion", "Basic Ratios"},
		{"Algebra", "Linear Equations", "Single Variable"},
		{"Algebra", "Quadratic Equations", "Roots and Coefficients"},
		{"Geometry and Mensuration", "Triangles", "Similar Triangles"},
		{"Geometry and Mensuration", "Circles", "Chords and Tangents"},
		{"Number System", "Divisibility", "Divisibility Rules"},
		{"Modern Math", "Probability", "Single Event"},
	}
	scores := map[models.Band]float64{
		models.BandEasy:   1.5,
		models.BandMedium: 2.8,
		models.BandHard:   4.0,
	}
	id := 0
	for _, band := range models.Bands() {
		for _, s := range subs {
			id++
			add(cand(fmt.Sprintf("q-%03d", id), s.cat, s.sub, s.typ, band, scores[band], 0.5))
		}
	}
	return p
}

func planInput(servedCount int, pool *models.CandidatePool) Input {
	return Input{
		StudentID:   "stu-1",
		SessSeq:     servedCount + 1,
		ServedCount: servedCount,
		Pool:        pool,
		Seen:        map[string]int{},
	}
}

func TestPlan_PhaseBoundaries(t *testing.T) {
	p := newTestPlanner()

	tests := []struct {
		servedCount int
		wantPhase   models.Phase
	}{
		{0, models.PhaseA},
		{29, models.PhaseA},
		{30, models.PhaseB},
		{59, models.PhaseB},
		{60, models.PhaseC},
		{200, models.PhaseC},
	}

	for _, tt := range tests {
		plan, err := p.Plan(planInput(tt.servedCount, balancedPool("s")))
		require.NoError(t, err)
		assert.Equal(t, tt.wantPhase, plan.Phase, "served_count %d", tt.servedCount)
	}
}

func TestPlan_MixApportionmentPerPhase(t *testing.T) {
	p := newTestPlanner()

	tests := []struct {
		servedCount int
		want        models.BandCounts
	}{
		// Largest-remainder splits of 12 over the phase percentages.
		{0, models.BandCounts{Easy: 2, Medium: 9, Hard: 1}},
		{30, models.BandCounts{Easy: 2, Medium: 6, Hard: 4}},
		{60, models.BandCounts{Easy: 2, Medium: 7, Hard: 3}},
	}

	for _, tt := range tests {
		plan, err := p.Plan(planInput(tt.servedCount, balancedPool("s")))
		require.NoError(t, err)
		assert.Equal(t, tt.want, plan.Report.PlannedMix, "served_count %d", tt.servedCount)
		assert.Equal(t, 12, plan.Report.PlannedMix.Total())
	}
}

func TestPlan_ProducesFullPack(t *testing.T) {
	p := newTestPlanner()

	plan, err := p.Plan(planInput(10, balancedPool("s")))
	require.NoError(t, err)

	require.Len(t, plan.Entries, 12)
	assert.Equal(t, models.SessionAdaptive, plan.SessionType)
	assert.Equal(t, 12, plan.Report.AchievedMix.Total())
	assert.GreaterOrEqual(t, plan.Report.DistinctSubcategories, 3)

	// Positions are 1-based and contiguous; no candidate repeats.
	ids := make(map[string]struct{})
	for i, e := range plan.Entries {
		assert.Equal(t, i+1, e.Position)
		_, dup := ids[e.Candidate.QuestionID]
		assert.False(t, dup, "duplicate candidate %s", e.Candidate.QuestionID)
		ids[e.Candidate.QuestionID] = struct{}{}
	}
}

func TestPlan_Deterministic(t *testing.T) {
	p := newTestPlanner()

	first, err := p.Plan(planInput(10, balancedPool("s")))
	require.NoError(t, err)
	second, err := p.Plan(planInput(10, balancedPool("s")))
	require.NoError(t, err)

	require.Len(t, second.Entries, len(first.Entries))
	for i := range first.Entries {
		assert.Equal(t, first.Entries[i].Candidate.QuestionID, second.Entries[i].Candidate.QuestionID)
		assert.Equal(t, first.Entries[i].SlotBand, second.Entries[i].SlotBand)
	}
}

func TestPlan_AllMediumPoolRespectsStoredDifficulty(t *testing.T) {
	p := newTestPlanner()

	nextOrderKey = 0
	pool := &models.CandidatePool{Feasible: true, Seed: "s"}
	subs := []struct{ cat, sub, typ string }{
		{"Arithmetic", "Percentages", "Percentage Change"},
		{"Arithmetic", "Averages", "Simple Averages"},
		{"Algebra", "Linear Equations", "Single Variable"},
		{"Geometry and Mensuration", "Triangles", "Similar Triangles"},
		{"Number System", "Divisibility", "Divisibility Rules"},
		{"Modern Math", "Probability", "Single Event"},
	}
	id := 0
	for i := 0; i < 3; i++ {
		for _, s := range subs {
			id++
			pool.Medium = append(pool.Medium,
				cand(fmt.Sprintf("m-%03d", id), s.cat, s.sub, s.typ, models.BandMedium, 2.5, 0.5))
		}
	}

	plan, err := p.Plan(planInput(10, pool))
	require.NoError(t, err)

	assert.True(t, plan.Report.LLMAssessmentRespected)
	assert.Equal(t, models.BandCounts{Medium: 12}, plan.Report.PlannedMix)
	require.Len(t, plan.Entries, 12)
	for _, e := range plan.Entries {
		assert.Equal(t, models.BandMedium, e.Candidate.Band)
	}
}

func TestPlan_UndersizedPoolFallsBack(t *testing.T) {
	p := newTestPlanner()

	nextOrderKey = 0
	pool := &models.CandidatePool{Feasible: false, Seed: "s"}
	for i := 0; i < 5; i++ {
		pool.Medium = append(pool.Medium,
			cand(fmt.Sprintf("m-%d", i), "Arithmetic", "Percentages", "Percentage Change", models.BandMedium, 2.5, 0.5))
	}

	plan, err := p.Plan(planInput(10, pool))
	require.NoError(t, err)

	assert.Equal(t, models.SessionSimpleRandom, plan.SessionType)
	assert.Equal(t, "pool_exhausted", plan.Report.FallbackReason)
	assert.Len(t, plan.Entries, 5)
}

func TestPlan_NilPoolIsError(t *testing.T) {
	p := newTestPlanner()
	_, err := p.Plan(Input{StudentID: "stu-1", SessSeq: 1})
	assert.Error(t, err)
}

func TestPlan_SingleSubcategoryEscalatesRelaxation(t *testing.T) {
	p := newTestPlanner()

	// Fourteen Medium questions, all the same subcategory: the strict cap
	// (3), the relaxed cap (5), and the category quota (4) all have to
	// give way to fill twelve slots.
	nextOrderKey = 0
	pool := &models.CandidatePool{Feasible: true, Seed: "s"}
	for i := 0; i < 14; i++ {
		pool.Medium = append(pool.Medium,
			cand(fmt.Sprintf("m-%02d", i), "Arithmetic", "Percentages", "Percentage Change", models.BandMedium, 2.5, 0.5))
	}

	plan, err := p.Plan(planInput(10, pool))
	require.NoError(t, err)

	require.Len(t, plan.Entries, 12)
	assert.Equal(t, models.RelaxUnbounded, plan.Report.RelaxationLevel)
	assert.Equal(t, 1, plan.Report.DistinctSubcategories)
	assert.Contains(t, plan.Report.Notes, "distinct subcategory floor unattainable from pool")
}

func TestPlan_PhaseBTargetsWeaknessAndStretchesStrengths(t *testing.T) {
	p := newTestPlanner()

	// Four subcategories mastered, five needing focus. Phase B should
	// drill the weak areas at Easy and Medium while its Hard slots
	// stretch the mastered ones.
	strong := map[string]bool{
		"Percentages":      true,
		"Linear Equations": true,
		"Triangles":        true,
		"Probability":      true,
	}
	in := planInput(40, balancedPool("s"))
	for _, def := range []struct {
		sub string
		pct float64
	}{
		{"Percentages", 0.90}, {"Linear Equations", 0.92},
		{"Triangles", 0.88}, {"Probability", 0.91},
		{"Averages", 0.30}, {"Ratio and Proportion", 0.25},
		{"Quadratic Equations", 0.35}, {"Circles", 0.20},
		{"Divisibility", 0.40},
	} {
		in.Mastery = append(in.Mastery,
			models.MasterySnapshot{Subcategory: def.sub, MasteryPct: def.pct})
	}

	plan, err := p.Plan(in)
	require.NoError(t, err)
	require.Len(t, plan.Entries, 12)

	strongHard, weakEasyMedium := 0, 0
	for _, e := range plan.Entries {
		switch e.SlotBand {
		case models.BandHard:
			if strong[e.Candidate.Subcategory] {
				strongHard++
			}
		default:
			if !strong[e.Candidate.Subcategory] {
				weakEasyMedium++
			}
		}
	}
	assert.GreaterOrEqual(t, strongHard, 4, "Hard slots should stretch mastered areas")
	assert.GreaterOrEqual(t, weakEasyMedium, 5, "Easy and Medium slots should drill weak areas")
}

func TestPlan_PerPairCapHoldsUnderStrictSelection(t *testing.T) {
	p := newTestPlanner()

	// Four extra Percentage Change questions at full exam frequency sort
	// ahead of everything else in the Medium band. The (subcategory, type)
	// cap has to stop them at two even though the subcategory cap alone
	// would allow a third.
	pool := balancedPool("s")
	for i := 0; i < 4; i++ {
		pool.Medium = append(pool.Medium,
			cand(fmt.Sprintf("pc-x%d", i), "Arithmetic", "Percentages", "Percentage Change", models.BandMedium, 2.8, 1.0))
	}

	plan, err := p.Plan(planInput(10, pool))
	require.NoError(t, err)

	require.Len(t, plan.Entries, 12)
	assert.Equal(t, models.RelaxStrict, plan.Report.RelaxationLevel)
	assert.Equal(t, 2, plan.Report.TypeDistribution[PairKey("Percentages", "Percentage Change")])
	for pair, n := range plan.Report.TypeDistribution {
		assert.LessOrEqual(t, n, 2, "pair %s over the strict cap", pair)
	}
}

func TestPlan_ReportCoverageAndDistributions(t *testing.T) {
	p := newTestPlanner()

	plan, err := p.Plan(planInput(10, balancedPool("s")))
	require.NoError(t, err)

	// A student with no history gets an all-new pack.
	assert.Equal(t, 12, plan.Report.CoverageNew)
	assert.Equal(t, 0, plan.Report.CoverageSeen)

	subTotal, pairTotal := 0, 0
	for _, n := range plan.Report.SubcategoryDistribution {
		subTotal += n
	}
	for _, n := range plan.Report.TypeDistribution {
		pairTotal += n
	}
	assert.Equal(t, 12, subTotal)
	assert.Equal(t, 12, pairTotal)
	assert.Equal(t, len(plan.Report.SubcategoryDistribution), plan.Report.DistinctSubcategories)

	// With history the two coverage counters still account for every slot.
	in := planInput(10, balancedPool("s"))
	in.Seen = map[string]int{
		PairKey("Percentages", "Percentage Change"):     3,
		PairKey("Averages", "Simple Averages"):          2,
		PairKey("Ratio and Proportion", "Basic Ratios"): 1,
		PairKey("Linear Equations", "Single Variable"):  2,
	}
	plan, err = p.Plan(in)
	require.NoError(t, err)
	assert.Equal(t, 12, plan.Report.CoverageNew+plan.Report.CoverageSeen)
	assert.Greater(t, plan.Report.CoverageSeen, 0)
}

func TestPlan_PhaseCQuotaShift(t *testing.T) {
	p := newTestPlanner()

	// Arithmetic is well above the mastery gate; every other category has
	// no rows. The strongest donates one slot to the weakest.
	mastery := []models.MasterySnapshot{
		{Subcategory: "Percentages", MasteryPct: 0.90},
		{Subcategory: "Averages", MasteryPct: 0.88},
	}

	in := planInput(60, balancedPool("s"))
	in.Mastery = mastery
	plan, err := p.Plan(in)
	require.NoError(t, err)

	require.NotNil(t, plan.Report.QuotaShift)
	assert.Equal(t, "Arithmetic", plan.Report.QuotaShift.FromCategory)
	assert.Equal(t, 3, plan.Report.CategoryQuotas["Arithmetic"])

	// The same mastery outside Phase C shifts nothing.
	in = planInput(40, balancedPool("s"))
	in.Mastery = mastery
	plan, err = p.Plan(in)
	require.NoError(t, err)
	assert.Nil(t, plan.Report.QuotaShift)
}

func TestPlan_NoShiftBelowMasteryGate(t *testing.T) {
	p := newTestPlanner()

	in := planInput(60, balancedPool("s"))
	in.Mastery = []models.MasterySnapshot{
		{Subcategory: "Percentages", MasteryPct: 0.50},
	}
	plan, err := p.Plan(in)
	require.NoError(t, err)
	assert.Nil(t, plan.Report.QuotaShift)
}

func TestPlan_PhaseCOrdersByDifficultyRamp(t *testing.T) {
	p := newTestPlanner()

	plan, err := p.Plan(planInput(70, balancedPool("s")))
	require.NoError(t, err)

	require.Len(t, plan.Entries, 12)
	for i := 1; i < len(plan.Entries); i++ {
		assert.LessOrEqual(t,
			plan.Entries[i-1].Candidate.DifficultyScore,
			plan.Entries[i].Candidate.DifficultyScore,
			"difficulty must not drop at position %d", i+1)
	}
}

func TestPlan_PhaseAPrefersCoverageNewPairs(t *testing.T) {
	p := newTestPlanner()

	// Every pair except Probability has been seen; the unseen pair must be
	// in the pack and flagged coverage-new.
	in := planInput(5, balancedPool("s"))
	in.Seen = map[string]int{
		PairKey("Percentages", "Percentage Change"):               3,
		PairKey("Averages", "Simple Averages"):                    2,
		PairKey("Ratio and Proportion", "Basic Ratios"):           1,
		PairKey("Linear Equations", "Single Variable"):            2,
		PairKey("Quadratic Equations", "Roots and Coefficients"):  1,
		PairKey("Triangles", "Similar Triangles"):                 2,
		PairKey("Circles", "Chords and Tangents"):                 1,
		PairKey("Divisibility", "Divisibility Rules"):             2,
	}

	plan, err := p.Plan(in)
	require.NoError(t, err)

	foundNew := false
	for _, e := range plan.Entries {
		if e.Candidate.Subcategory == "Probability" {
			foundNew = true
			assert.True(t, e.CoverageNew)
		}
	}
	assert.True(t, foundNew, "unseen pair should be planned in Phase A")
}

func TestFallback_SeededOrderAndCap(t *testing.T) {
	p := newTestPlanner()

	pool := balancedPool("stu-1:4")
	plan := p.Fallback(planInput(3, pool), "planning_error")

	assert.Equal(t, models.SessionSimpleRandom, plan.SessionType)
	assert.Equal(t, "planning_error", plan.Report.FallbackReason)
	require.Len(t, plan.Entries, 12)

	// Entries follow the pool's seeded order key.
	for i := 1; i < len(plan.Entries); i++ {
		assert.Less(t,
			plan.Entries[i-1].Candidate.OrderKey,
			plan.Entries[i].Candidate.OrderKey)
	}

	// Report still carries the achieved mix and the coverage accounting.
	assert.Equal(t, 12, plan.Report.AchievedMix.Total())
	assert.Equal(t, 12, plan.Report.CoverageNew+plan.Report.CoverageSeen)
	subTotal := 0
	for _, n := range plan.Report.SubcategoryDistribution {
		subTotal += n
	}
	assert.Equal(t, 12, subTotal)
}

func TestFallback_NilPoolProducesEmptyPack(t *testing.T) {
	p := newTestPlanner()

	plan := p.Fallback(Input{StudentID: "stu-1", SessSeq: 1, Seen: map[string]int{}}, "pool_unavailable")
	assert.Empty(t, plan.Entries)
	assert.Equal(t, "pool_unavailable", plan.Report.FallbackReason)
	assert.Contains(t, plan.Report.Notes, "pool smaller than pack size, serving what exists")
}

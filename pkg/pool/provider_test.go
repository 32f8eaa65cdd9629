package pool

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepforge/quanta/pkg/models"
)

type fakeSource struct {
	cands     []models.Candidate
	recent    map[string]struct{}
	servedAt  map[string]time.Time
	candErr   error
	recentErr error
	servedErr error
}

func (f *fakeSource) ActiveCandidates(ctx context.Context) ([]models.Candidate, error) {
	if f.candErr != nil {
		return nil, f.candErr
	}
	out := make([]models.Candidate, len(f.cands))
	copy(out, f.cands)
	return out, nil
}

func (f *fakeSource) RecentQuestionIDs(ctx context.Context, studentID string, sessions int) (map[string]struct{}, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	return f.recent, nil
}

func (f *fakeSource) LastServedAt(ctx context.Context, studentID string, within time.Duration) (map[string]time.Time, error) {
	if f.servedErr != nil {
		return nil, f.servedErr
	}
	return f.servedAt, nil
}

func poolCand(id string, band models.Band, pyq float64) models.Candidate {
	return models.Candidate{
		QuestionID:        id,
		Category:          "Arithmetic",
		Subcategory:       "Percentages",
		TypeOfQuestion:    "Percentage Change",
		Band:              band,
		DifficultyScore:   2.5,
		PYQFrequencyScore: pyq,
	}
}

// bank builds nEasy/nMedium/nHard candidates, all carrying a frequency
// score that satisfies both exam-frequency minima.
func bank(nEasy, nMedium, nHard int) []models.Candidate {
	var out []models.Candidate
	for i := 0; i < nEasy; i++ {
		out = append(out, poolCand(fmt.Sprintf("e-%02d", i), models.BandEasy, 1.6))
	}
	for i := 0; i < nMedium; i++ {
		out = append(out, poolCand(fmt.Sprintf("m-%02d", i), models.BandMedium, 1.6))
	}
	for i := 0; i < nHard; i++ {
		out = append(out, poolCand(fmt.Sprintf("h-%02d", i), models.BandHard, 1.6))
	}
	return out
}

func TestSeedAndOrderKey_Deterministic(t *testing.T) {
	assert.Equal(t, "stu-1:4", Seed("stu-1", 4))
	assert.Equal(t, Seed("stu-1", 4), Seed("stu-1", 4))

	assert.Equal(t, OrderKey("q-1", "s"), OrderKey("q-1", "s"))
	assert.NotEqual(t, OrderKey("q-1", "s"), OrderKey("q-2", "s"))
	assert.NotEqual(t, OrderKey("q-1", "s"), OrderKey("q-1", "t"))
}

func TestBuild_FeasibleFirstRung(t *testing.T) {
	src := &fakeSource{cands: bank(6, 10, 6)}
	p := NewProvider(src, DefaultConfig(), nil)

	pool, err := p.Build(context.Background(), "stu-1", 1, false)
	require.NoError(t, err)

	assert.True(t, pool.Feasible)
	assert.Equal(t, 0, pool.Rung)
	assert.Equal(t, "stu-1:1", pool.Seed)
	assert.False(t, pool.RecencyRelaxed)
	assert.False(t, pool.CooldownRelaxed)
	assert.Len(t, pool.Easy, 6)
	assert.Len(t, pool.Medium, 10)
	assert.Len(t, pool.Hard, 6)
	assert.Equal(t, 22, pool.PYQCount15)
}

func TestBuild_LadderExpandsUntilPreflightPasses(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ladder = []int{2, 4, 8}

	src := &fakeSource{cands: bank(6, 10, 6)}
	p := NewProvider(src, cfg, nil)

	pool, err := p.Build(context.Background(), "stu-1", 1, false)
	require.NoError(t, err)

	// Rung 0 caps Easy at 2 (< 3) and rung 1 caps Medium at 4 (< 6); only
	// the widest rung holds a plannable spread.
	assert.True(t, pool.Feasible)
	assert.Equal(t, 2, pool.Rung)
	assert.Len(t, pool.Medium, 8)
}

func TestBuild_SeededOrderIsDeterministic(t *testing.T) {
	src := &fakeSource{cands: bank(6, 10, 6)}
	p := NewProvider(src, DefaultConfig(), nil)

	first, err := p.Build(context.Background(), "stu-1", 1, false)
	require.NoError(t, err)
	second, err := p.Build(context.Background(), "stu-1", 1, false)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// A different sequence number reshuffles.
	other, err := p.Build(context.Background(), "stu-1", 2, false)
	require.NoError(t, err)
	assert.NotEqual(t, first.Seed, other.Seed)
}

func TestBuild_ExcludesRecentlyServed(t *testing.T) {
	src := &fakeSource{
		cands:  bank(6, 10, 6),
		recent: map[string]struct{}{"e-00": {}, "m-03": {}},
	}
	p := NewProvider(src, DefaultConfig(), nil)

	pool, err := p.Build(context.Background(), "stu-1", 1, false)
	require.NoError(t, err)

	assert.Equal(t, 2, pool.RecentExcluded)
	assert.Len(t, pool.Easy, 5)
	assert.Len(t, pool.Medium, 9)
	for _, c := range pool.Easy {
		assert.NotEqual(t, "e-00", c.QuestionID)
	}
}

func TestBuild_RecencyRelaxesWhenBankIsTight(t *testing.T) {
	// Exactly three Easy questions exist and one was served recently, so
	// the recency filter must lift for preflight to pass.
	src := &fakeSource{
		cands:  bank(3, 10, 6),
		recent: map[string]struct{}{"e-01": {}},
	}
	p := NewProvider(src, DefaultConfig(), nil)

	pool, err := p.Build(context.Background(), "stu-1", 1, false)
	require.NoError(t, err)

	assert.True(t, pool.Feasible)
	assert.True(t, pool.RecencyRelaxed)
	assert.True(t, pool.CooldownRelaxed)
	assert.Len(t, pool.Easy, 3)
}

func TestBuild_CooldownShadowLiftsBeforeRecency(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	cfg := DefaultConfig()
	cfg.CooldownDays = map[models.Band]int{models.BandEasy: 7}

	src := &fakeSource{
		cands: bank(3, 10, 6),
		servedAt: map[string]time.Time{
			"e-02": now.Add(-24 * time.Hour),
		},
	}
	p := NewProvider(src, cfg, nil)
	p.now = func() time.Time { return now }

	pool, err := p.Build(context.Background(), "stu-1", 1, false)
	require.NoError(t, err)

	assert.True(t, pool.Feasible)
	assert.True(t, pool.CooldownRelaxed)
	assert.False(t, pool.RecencyRelaxed)
}

func TestBuild_CooldownShadowExpires(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	cfg := DefaultConfig()
	cfg.CooldownDays = map[models.Band]int{models.BandEasy: 7}

	src := &fakeSource{
		cands: bank(3, 10, 6),
		servedAt: map[string]time.Time{
			"e-02": now.Add(-8 * 24 * time.Hour),
		},
	}
	p := NewProvider(src, cfg, nil)
	p.now = func() time.Time { return now }

	pool, err := p.Build(context.Background(), "stu-1", 1, false)
	require.NoError(t, err)

	assert.True(t, pool.Feasible)
	assert.False(t, pool.CooldownRelaxed)
}

func TestBuild_ThinBankStaysInfeasible(t *testing.T) {
	src := &fakeSource{cands: bank(1, 2, 1)}
	p := NewProvider(src, DefaultConfig(), nil)

	pool, err := p.Build(context.Background(), "stu-1", 1, false)
	require.NoError(t, err)

	assert.False(t, pool.Feasible)
	assert.Equal(t, -1, pool.Rung)
	assert.Equal(t, 4, pool.Size())
}

func TestBuild_SourceErrorPropagates(t *testing.T) {
	src := &fakeSource{candErr: errors.New("db down")}
	p := NewProvider(src, DefaultConfig(), nil)

	_, err := p.Build(context.Background(), "stu-1", 1, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load active candidates")
}

func TestBuild_ColdStartTakesOnePerPair(t *testing.T) {
	// Twenty copies of one pair plus five singleton pairs. With room for
	// six, the diversity pass must carry every distinct pair.
	var cands []models.Candidate
	for i := 0; i < 20; i++ {
		cands = append(cands, poolCand(fmt.Sprintf("dup-%02d", i), models.BandMedium, 0.2))
	}
	singles := []struct{ sub, typ string }{
		{"Averages", "Simple Averages"},
		{"Linear Equations", "Single Variable"},
		{"Triangles", "Similar Triangles"},
		{"Divisibility", "Divisibility Rules"},
		{"Probability", "Single Event"},
	}
	for i, s := range singles {
		c := poolCand(fmt.Sprintf("one-%d", i), models.BandMedium, 0.2)
		c.Subcategory = s.sub
		c.TypeOfQuestion = s.typ
		cands = append(cands, c)
	}

	cfg := DefaultConfig()
	cfg.ColdStartSize = 6
	p := NewProvider(&fakeSource{cands: cands}, cfg, nil)

	pool, err := p.Build(context.Background(), "stu-1", 1, true)
	require.NoError(t, err)

	assert.True(t, pool.ColdStart)
	pairs := make(map[string]int)
	for _, c := range pool.Medium {
		pairs[c.Subcategory+"|"+c.TypeOfQuestion]++
	}
	require.Len(t, pairs, 6)
	for pair, n := range pairs {
		assert.Equal(t, 1, n, "pair %s over-represented", pair)
	}
}

func TestBuild_ColdStartCarriesFrequencyAnchors(t *testing.T) {
	// Only two high-frequency questions exist in a large bank; a small
	// cold-start pool must still include both.
	cands := bank(6, 40, 6)
	for i := range cands {
		cands[i].PYQFrequencyScore = 0.3
	}
	cands[10].PYQFrequencyScore = 1.8
	cands[30].PYQFrequencyScore = 1.6
	anchors := map[string]struct{}{
		cands[10].QuestionID: {},
		cands[30].QuestionID: {},
	}

	cfg := DefaultConfig()
	cfg.ColdStartSize = 12
	p := NewProvider(&fakeSource{cands: cands}, cfg, nil)

	pool, err := p.Build(context.Background(), "stu-1", 1, true)
	require.NoError(t, err)

	found := 0
	for _, b := range models.Bands() {
		for _, c := range pool.BandSlice(b) {
			if _, ok := anchors[c.QuestionID]; ok {
				found++
			}
		}
	}
	assert.Equal(t, 2, found)
	assert.GreaterOrEqual(t, pool.PYQCount15, 2)
}

func TestBuild_ColdStartHonorsBothFrequencyMinima(t *testing.T) {
	// One question at the 1.5 tier and four at the 1.0 tier, in a bank of
	// low-frequency filler. The 1.0 anchor pass has its own minimum; with
	// asymmetric minima the pool must still carry four questions at or
	// above 1.0, not stop at the 1.5 tier's count.
	cands := bank(6, 20, 6)
	for i := range cands {
		cands[i].PYQFrequencyScore = 0.3
	}
	cands[6].PYQFrequencyScore = 1.8
	for _, i := range []int{21, 22, 23, 24} {
		cands[i].PYQFrequencyScore = 1.2
	}

	cfg := DefaultConfig()
	cfg.ColdStartSize = 12
	cfg.Preflight.MinPYQ15 = 1
	cfg.Preflight.MinPYQ10 = 4
	p := NewProvider(&fakeSource{cands: cands}, cfg, nil)

	pool, err := p.Build(context.Background(), "stu-1", 1, true)
	require.NoError(t, err)

	assert.True(t, pool.Feasible)
	assert.GreaterOrEqual(t, pool.PYQCount10, 4)
	assert.GreaterOrEqual(t, pool.PYQCount15, 1)
}

func TestBuild_ColdStartTopsUpShortBands(t *testing.T) {
	// A tiny cold-start size would miss the Hard minimum; the top-up pass
	// pulls Hard questions from the rest of the bank.
	cfg := DefaultConfig()
	cfg.ColdStartSize = 9

	src := &fakeSource{cands: bank(6, 10, 6)}
	p := NewProvider(src, cfg, nil)

	pool, err := p.Build(context.Background(), "stu-1", 1, true)
	require.NoError(t, err)

	assert.True(t, pool.Feasible)
	assert.GreaterOrEqual(t, len(pool.Easy), 3)
	assert.GreaterOrEqual(t, len(pool.Medium), 6)
	assert.GreaterOrEqual(t, len(pool.Hard), 3)
}

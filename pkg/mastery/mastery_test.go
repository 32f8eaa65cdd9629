package mastery

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/prepforge/quanta/pkg/models"
)

func TestNormalize_FillsDefaults(t *testing.T) {
	p := Params{}.Normalize()
	def := DefaultParams()

	assert.Equal(t, def.Alpha, p.Alpha)
	assert.Equal(t, def.DailyDecay, p.DailyDecay)
	assert.Equal(t, def.TargetSeconds, p.TargetSeconds)
	assert.Equal(t, def.FullExposureAttempts, p.FullExposureAttempts)

	// Explicit values survive.
	p = Params{Alpha: 0.3}.Normalize()
	assert.Equal(t, 0.3, p.Alpha)

	// Out-of-range values fall back.
	p = Params{Alpha: 1.5, DailyDecay: -1}.Normalize()
	assert.Equal(t, def.Alpha, p.Alpha)
	assert.Equal(t, def.DailyDecay, p.DailyDecay)
}

func TestUpdateAccuracy_EWMA(t *testing.T) {
	p := DefaultParams()

	// New attempt dominates with weight alpha.
	assert.InDelta(t, 0.6, p.UpdateAccuracy(0, true), 1e-9)
	assert.InDelta(t, 0.4, p.UpdateAccuracy(1, false), 1e-9)

	// Repeated correct answers converge toward 1.
	acc := 0.0
	for i := 0; i < 10; i++ {
		acc = p.UpdateAccuracy(acc, true)
	}
	assert.Greater(t, acc, 0.99)
}

func TestAttemptEfficiency(t *testing.T) {
	p := DefaultParams()

	// At or under target scores 1.0.
	assert.Equal(t, 1.0, p.AttemptEfficiency(models.BandEasy, 90))
	assert.Equal(t, 1.0, p.AttemptEfficiency(models.BandMedium, 30))

	// Past target decays exponentially: double the target gives e^-1.
	assert.InDelta(t, math.Exp(-1), p.AttemptEfficiency(models.BandEasy, 180), 1e-9)

	// Degenerate inputs score zero.
	assert.Equal(t, 0.0, p.AttemptEfficiency(models.BandHard, 0))
	assert.Equal(t, 0.0, p.AttemptEfficiency(models.Band("Unknown"), 60))
}

func TestExposureFactor(t *testing.T) {
	p := DefaultParams()

	assert.Equal(t, 0.0, p.ExposureFactor(0))
	assert.InDelta(t, 0.5, p.ExposureFactor(5), 1e-9)
	assert.Equal(t, 1.0, p.ExposureFactor(10))
	assert.Equal(t, 1.0, p.ExposureFactor(50))
}

func TestOverall_WeightsAndBonus(t *testing.T) {
	p := DefaultParams()

	// Full accuracy everywhere with full exposure and efficiency 1.0:
	// 0.2 + 0.4 + 0.4 + 0.1 clamps to 1.0.
	assert.Equal(t, 1.0, p.Overall(1, 1, 1, 1, 10))

	// Half exposure halves the pre-clamp total (1.1), not the clamped
	// value: the [0,1] clamp applies only to the final result.
	assert.InDelta(t, 0.55, p.Overall(1, 1, 1, 1, 5), 1e-9)

	// Efficiency bonus caps at 0.1.
	withBonus := p.Overall(0.5, 0.5, 0.5, 1, 10)
	assert.InDelta(t, 0.6, withBonus, 1e-9)
}

func TestApplyAttempt(t *testing.T) {
	p := DefaultParams()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	s := p.ApplyAttempt(models.MasterySnapshot{}, models.BandMedium, true, 120, now)

	assert.InDelta(t, 0.6, s.AccMedium, 1e-9)
	assert.Zero(t, s.AccEasy)
	assert.Zero(t, s.AccHard)
	assert.InDelta(t, 0.6, s.EfficiencyScore, 1e-9) // 120s under the 150s target
	assert.Equal(t, 1, s.ExposureCount)
	assert.Greater(t, s.MasteryPct, 0.0)
	if assert.NotNil(t, s.LastActivityAt) {
		assert.Equal(t, now, *s.LastActivityAt)
	}

	// A wrong answer pulls the band accuracy down without touching others.
	s2 := p.ApplyAttempt(s, models.BandMedium, false, 200, now.Add(time.Hour))
	assert.Less(t, s2.AccMedium, s.AccMedium)
	assert.Equal(t, 2, s2.ExposureCount)
}

func TestDecay(t *testing.T) {
	p := DefaultParams()
	s := models.MasterySnapshot{
		AccEasy: 0.8, AccMedium: 0.8, AccHard: 0.8,
		EfficiencyScore: 1.0,
		ExposureCount:   10,
	}
	s.MasteryPct = p.Overall(s.AccEasy, s.AccMedium, s.AccHard, s.EfficiencyScore, s.ExposureCount)

	decayed := p.Decay(s, 3)
	factor := math.Pow(0.95, 3)
	assert.InDelta(t, 0.8*factor, decayed.AccMedium, 1e-9)
	assert.InDelta(t, factor, decayed.EfficiencyScore, 1e-9)
	assert.Less(t, decayed.MasteryPct, s.MasteryPct)
	// Exposure does not decay.
	assert.Equal(t, 10, decayed.ExposureCount)

	// Zero days is a no-op.
	assert.Equal(t, s, p.Decay(s, 0))
}

func TestInactiveDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, InactiveDays(time.Time{}, now))
	assert.Equal(t, 0, InactiveDays(now, now))
	assert.Equal(t, 0, InactiveDays(now.Add(-23*time.Hour), now))
	assert.Equal(t, 1, InactiveDays(now.Add(-25*time.Hour), now))
	assert.Equal(t, 7, InactiveDays(now.AddDate(0, 0, -7), now))
}

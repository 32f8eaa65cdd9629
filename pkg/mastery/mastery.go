// Package mastery implements the per-(student, subcategory, type) skill
// model: EWMA accuracy per difficulty band, an efficiency score against
// band target times, exposure scaling, and daily time decay. Everything
// here is pure math over snapshots; persistence lives in the services.
package mastery

import (
	"math"
	"time"

	"github.com/prepforge/quanta/pkg/models"
)

// Params tunes the skill model. Zero values fall back to production
// defaults via Normalize.
type Params struct {
	// Alpha is the EWMA weight of the newest attempt.
	Alpha float64
	// DailyDecay multiplies accuracy and efficiency once per inactive day.
	DailyDecay float64
	// TargetSeconds is the expected solve time per band.
	TargetSeconds map[models.Band]float64
	// FullExposureAttempts is the attempt count at which the exposure
	// factor reaches 1.0.
	FullExposureAttempts int
}

// DefaultParams returns the production model: alpha 0.6, decay 0.95/day,
// targets 90s/150s/210s, full exposure at 10 attempts.
func DefaultParams() Params {
	return Params{
		Alpha:      0.6,
		DailyDecay: 0.95,
		TargetSeconds: map[models.Band]float64{
			models.BandEasy:   90,
			models.BandMedium: 150,
			models.BandHard:   210,
		},
		FullExposureAttempts: 10,
	}
}

// Normalize fills zero fields with defaults.
func (p Params) Normalize() Params {
	def := DefaultParams()
	if p.Alpha <= 0 || p.Alpha > 1 {
		p.Alpha = def.Alpha
	}
	if p.DailyDecay <= 0 || p.DailyDecay > 1 {
		p.DailyDecay = def.DailyDecay
	}
	if len(p.TargetSeconds) == 0 {
		p.TargetSeconds = def.TargetSeconds
	}
	if p.FullExposureAttempts <= 0 {
		p.FullExposureAttempts = def.FullExposureAttempts
	}
	return p
}

// UpdateAccuracy folds one attempt outcome into a band accuracy EWMA.
func (p Params) UpdateAccuracy(old float64, correct bool) float64 {
	x := 0.0
	if correct {
		x = 1.0
	}
	return p.Alpha*x + (1-p.Alpha)*old
}

// AttemptEfficiency scores one attempt's solve time against the band
// target: 1.0 at or under target, decaying exponentially past it.
func (p Params) AttemptEfficiency(band models.Band, seconds float64) float64 {
	target, ok := p.TargetSeconds[band]
	if !ok || target <= 0 {
		return 0
	}
	if seconds <= 0 {
		return 0
	}
	if seconds <= target {
		return 1.0
	}
	return math.Exp(-(seconds - target) / target)
}

// ExposureFactor scales overall mastery by how often the combination has
// been attempted, reaching 1.0 at FullExposureAttempts.
func (p Params) ExposureFactor(attempts int) float64 {
	if attempts <= 0 {
		return 0
	}
	f := float64(attempts) / float64(p.FullExposureAttempts)
	if f > 1 {
		return 1
	}
	return f
}

// Overall combines band accuracies and efficiency into the overall mastery
// value: 0.2*easy + 0.4*medium + 0.4*hard + min(0.1, 0.1*efficiency),
// scaled by the exposure factor. The [0,1] clamp applies to the final
// scaled result, not to the weighted sum.
func (p Params) Overall(accEasy, accMedium, accHard, efficiency float64, attempts int) float64 {
	base := 0.2*accEasy + 0.4*accMedium + 0.4*accHard
	bonus := 0.1 * efficiency
	if bonus > 0.1 {
		bonus = 0.1
	}
	total := (base + bonus) * p.ExposureFactor(attempts)
	return clamp01(total)
}

// ApplyAttempt folds one attempt into the snapshot and returns the updated
// snapshot. The caller is responsible for de-duplicating attempts before
// calling; the fold itself is not idempotent.
func (p Params) ApplyAttempt(s models.MasterySnapshot, band models.Band, correct bool, seconds float64, at time.Time) models.MasterySnapshot {
	switch band {
	case models.BandEasy:
		s.AccEasy = p.UpdateAccuracy(s.AccEasy, correct)
	case models.BandMedium:
		s.AccMedium = p.UpdateAccuracy(s.AccMedium, correct)
	case models.BandHard:
		s.AccHard = p.UpdateAccuracy(s.AccHard, correct)
	}
	s.EfficiencyScore = p.Alpha*p.AttemptEfficiency(band, seconds) + (1-p.Alpha)*s.EfficiencyScore
	s.ExposureCount++
	s.MasteryPct = p.Overall(s.AccEasy, s.AccMedium, s.AccHard, s.EfficiencyScore, s.ExposureCount)
	s.LastActivityAt = &at
	return s
}

// Decay applies the daily decay for the given number of whole inactive
// days and recomputes overall mastery. Zero or negative days is a no-op.
func (p Params) Decay(s models.MasterySnapshot, days int) models.MasterySnapshot {
	if days <= 0 {
		return s
	}
	factor := math.Pow(p.DailyDecay, float64(days))
	s.AccEasy *= factor
	s.AccMedium *= factor
	s.AccHard *= factor
	s.EfficiencyScore *= factor
	s.MasteryPct = p.Overall(s.AccEasy, s.AccMedium, s.AccHard, s.EfficiencyScore, s.ExposureCount)
	return s
}

// InactiveDays counts whole days between the last activity and now.
func InactiveDays(lastActivity, now time.Time) int {
	if lastActivity.IsZero() || !now.After(lastActivity) {
		return 0
	}
	return int(now.Sub(lastActivity).Hours() / 24)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

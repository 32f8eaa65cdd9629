// Package models defines the domain types shared across the planner,
// enrichment pipeline, services, and API layers. It deliberately has no
// dependency on the persistence layer so the planning and scoring logic
// can be exercised on plain values.
package models

// Band is a difficulty band. Bands and numeric difficulty scores are kept
// consistent: every stored question satisfies Band == BandForScore(score).
type Band string

const (
	BandEasy   Band = "Easy"
	BandMedium Band = "Medium"
	BandHard   Band = "Hard"
)

// Bands lists all bands in ascending difficulty order.
func Bands() []Band {
	return []Band{BandEasy, BandMedium, BandHard}
}

// Valid reports whether b is one of the three known bands.
func (b Band) Valid() bool {
	switch b {
	case BandEasy, BandMedium, BandHard:
		return true
	}
	return false
}

// ScoreRange returns the numeric difficulty interval for the band.
// Easy covers [1.0, 2.0]; Medium and Hard are half-open on the left,
// (2.0, 3.5] and (3.5, 5.0], so every score maps to exactly one band.
func (b Band) ScoreRange() (lo, hi float64) {
	switch b {
	case BandEasy:
		return 1.0, 2.0
	case BandMedium:
		return 2.0, 3.5
	case BandHard:
		return 3.5, 5.0
	}
	return 0, 0
}

// ContainsScore reports whether score falls inside the band's interval.
func (b Band) ContainsScore(score float64) bool {
	lo, hi := b.ScoreRange()
	if b == BandEasy {
		return score >= lo && score <= hi
	}
	return score > lo && score <= hi
}

// MidpointScore returns the center of the band's interval, used as the
// default when a reported score falls outside its band.
func (b Band) MidpointScore() float64 {
	lo, hi := b.ScoreRange()
	return (lo + hi) / 2
}

// BandForScore maps a difficulty score to its band. Scores at or below 2.0
// are Easy, above 3.5 Hard, everything between Medium. Out-of-domain scores
// clamp to the nearest band.
func BandForScore(score float64) Band {
	switch {
	case score <= 2.0:
		return BandEasy
	case score <= 3.5:
		return BandMedium
	default:
		return BandHard
	}
}

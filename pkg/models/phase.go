package models

// Phase is the learning phase a student is planned under, determined by
// how many sessions they have been served or completed.
type Phase string

const (
	PhaseA Phase = "A"
	PhaseB Phase = "B"
	PhaseC Phase = "C"
)

// SessionType distinguishes how a pack was produced.
type SessionType string

const (
	// SessionAdaptive is the normal constraint-driven plan.
	SessionAdaptive SessionType = "adaptive"
	// SessionColdStart is the diversity-first plan for brand-new students.
	SessionColdStart SessionType = "cold_start"
	// SessionSimpleRandom marks the seeded-random fallback pack produced
	// when adaptive planning fails.
	SessionSimpleRandom SessionType = "simple_random"
)

// MasteryLabel buckets an overall mastery percentage for reporting.
type MasteryLabel string

const (
	LabelMastered   MasteryLabel = "Mastered"
	LabelOnTrack    MasteryLabel = "On-track"
	LabelNeedsFocus MasteryLabel = "Needs-focus"
)

// LabelForMastery maps an overall mastery value in [0,1] to its label:
// 0.85 and above is Mastered, 0.60 to 0.84 On-track, below 0.60 Needs-focus.
func LabelForMastery(pct float64) MasteryLabel {
	switch {
	case pct >= 0.85:
		return LabelMastered
	case pct >= 0.60:
		return LabelOnTrack
	default:
		return LabelNeedsFocus
	}
}

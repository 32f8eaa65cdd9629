package models

import "time"

// MasterySnapshot is the planner-facing view of one mastery row. An empty
// TypeOfQuestion marks the subcategory-level aggregate.
type MasterySnapshot struct {
	Subcategory     string     `json:"subcategory"`
	TypeOfQuestion  string     `json:"type_of_question"`
	AccEasy         float64    `json:"acc_easy"`
	AccMedium       float64    `json:"acc_medium"`
	AccHard         float64    `json:"acc_hard"`
	EfficiencyScore float64    `json:"efficiency_score"`
	ExposureCount   int        `json:"exposure_count"`
	MasteryPct      float64    `json:"mastery_pct"`
	LastActivityAt  *time.Time `json:"last_activity_at,omitempty"`
}

// Label returns the reporting bucket for the snapshot's overall mastery.
func (m MasterySnapshot) Label() MasteryLabel {
	return LabelForMastery(m.MasteryPct)
}

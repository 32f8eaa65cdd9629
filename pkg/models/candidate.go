package models

// Candidate is a question as seen by the candidate provider and planner:
// the classification snapshot plus the deterministic order key, decoupled
// from the stored entity so planning never mutates question rows.
type Candidate struct {
	QuestionID        string  `json:"question_id"`
	Category          string  `json:"category"`
	Subcategory       string  `json:"subcategory"`
	TypeOfQuestion    string  `json:"type_of_question"`
	Band              Band    `json:"band"`
	DifficultyScore   float64 `json:"difficulty_score"`
	PYQFrequencyScore float64 `json:"pyq_frequency_score"`

	// OrderKey is the seeded-hash rank within the candidate pool. Lower
	// keys are preferred; ties break on QuestionID for total order.
	OrderKey uint64 `json:"-"`
}

// CandidatePool is the planner's input: per-band candidate lists already
// in deterministic order, plus provenance of how the pool was assembled.
type CandidatePool struct {
	Easy   []Candidate
	Medium []Candidate
	Hard   []Candidate

	// Rung is the pool-size ladder step that satisfied preflight
	// (0-based; -1 when even the widest rung failed).
	Rung int
	// Feasible reports the preflight outcome for the returned pool.
	Feasible bool
	// PYQCount10 and PYQCount15 count pool members with frequency scores
	// at or above 1.0 and 1.5.
	PYQCount10 int
	PYQCount15 int
	// RecentExcluded counts questions dropped by the recent-session filter.
	RecentExcluded int
	// RecencyRelaxed is true when the recent-session filter had to be
	// lifted to make the pool feasible.
	RecencyRelaxed bool
	// CooldownRelaxed is true when the per-band cooldown shadow had to be
	// lifted to make the pool feasible.
	CooldownRelaxed bool
	// ColdStart is true when the pool was assembled diversity-first for a
	// student with no history.
	ColdStart bool
	// Seed is the deterministic ordering seed, student_id:sess_seq.
	Seed string
}

// Band returns the pool slice for the given band.
func (p *CandidatePool) BandSlice(b Band) []Candidate {
	switch b {
	case BandEasy:
		return p.Easy
	case BandMedium:
		return p.Medium
	case BandHard:
		return p.Hard
	}
	return nil
}

// Size returns the total number of candidates across bands.
func (p *CandidatePool) Size() int {
	return len(p.Easy) + len(p.Medium) + len(p.Hard)
}

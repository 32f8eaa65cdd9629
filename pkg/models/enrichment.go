package models

// EnrichmentOutcome carries everything the pipeline derived for one
// question, plus the gate verdict. Persisting it never touches admin
// content fields.
type EnrichmentOutcome struct {
	RightAnswer       string
	Category          string
	Subcategory       string
	TypeOfQuestion    string
	Band              Band
	Score             float64
	PYQFrequencyScore *float64

	CoreConcepts       []string
	SolutionMethod     string
	ConceptDifficulty  map[string][]string
	OperationsRequired []string
	ProblemStructure   string
	ConceptKeywords    []string

	ExtractionCompleted bool

	// Gate verdict. A question activates only when QualityPassed is true.
	QualityPassed bool
	FailedChecks  []string
}

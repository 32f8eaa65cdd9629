package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prepforge/quanta/pkg/models"
	"github.com/prepforge/quanta/pkg/taxonomy"
)

func validRecord() Record {
	score := 1.2
	return Record{
		QuestionID:          "q-1",
		Stem:                "A shopkeeper marks up an item by 20% and offers a 10% discount. Find the profit percent.",
		AdminAnswer:         "8%",
		AdminSolution:       "Mark up 20 on 100 gives 120; 10% discount gives 108; profit 8%.",
		PrincipleToRemember: "Successive changes multiply, they do not add.",
		RightAnswer:         "8%",
		Category:            "Arithmetic",
		Subcategory:         "Profit and Loss",
		TypeOfQuestion:      "Discount and Marked Price",
		Band:                models.BandEasy,
		Score:               1.5,
		PYQFrequencyScore:   &score,
		CoreConcepts:        []string{"marked price", "successive percentage change", "profit percent"},
		SolutionMethod:      "multiply successive change factors on the cost price",
		ConceptDifficulty: map[string][]string{
			"prerequisites":      {"percentage change"},
			"cognitive_barriers": {"adding instead of multiplying changes"},
			"mastery_indicators": {"writes 1.2 x 0.9 without prompting"},
		},
		OperationsRequired:  []string{"percentage multiplication"},
		ProblemStructure:    "markup followed by discount on unknown cost price",
		ConceptKeywords:     []string{"markup", "discount"},
		ExtractionCompleted: true,
	}
}

func TestStructuralChecks_ValidRecordPasses(t *testing.T) {
	assert.Empty(t, StructuralChecks(taxonomy.Builtin(), validRecord()))
}

func TestStructuralChecks_FailureModes(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Record)
		wantFail string
	}{
		{"missing stem", func(r *Record) { r.Stem = "  " }, CheckStemPresent},
		{"placeholder answer", func(r *Record) { r.RightAnswer = "N/A" }, CheckRightAnswerPresent},
		{"placeholder solution", func(r *Record) { r.AdminSolution = "pending" }, CheckAdminSolutionPresent},
		{"missing principle", func(r *Record) { r.PrincipleToRemember = "" }, CheckPrinciplePresent},
		{"invalid band", func(r *Record) { r.Band = "Extreme" }, CheckBandValid},
		{"score outside band", func(r *Record) { r.Score = 4.0 }, CheckScoreInBandRange},
		{
			"non-canonical path",
			func(r *Record) { r.Subcategory = "Discounts" },
			CheckPathResolves,
		},
		{
			"too few core concepts",
			func(r *Record) { r.CoreConcepts = []string{"a", "b"} },
			CheckCoreConceptsMinCount,
		},
		{
			"generic core concept",
			func(r *Record) { r.CoreConcepts = []string{"calculation", "x", "y"} },
			CheckCoreConceptsSpecific,
		},
		{
			"generic solution method",
			func(r *Record) { r.SolutionMethod = "Standard Method" },
			CheckSolutionMethodSpecific,
		},
		{"no operations", func(r *Record) { r.OperationsRequired = nil }, CheckOperationsPresent},
		{"missing structure", func(r *Record) { r.ProblemStructure = "" }, CheckStructurePresent},
		{
			"one keyword only",
			func(r *Record) { r.ConceptKeywords = []string{"markup"} },
			CheckKeywordsMinCount,
		},
		{
			"concept difficulty missing a key",
			func(r *Record) { delete(r.ConceptDifficulty, "cognitive_barriers") },
			CheckConceptDifficultyKeys,
		},
		{
			"concept difficulty key with only placeholders",
			func(r *Record) { r.ConceptDifficulty["prerequisites"] = []string{"n/a"} },
			CheckConceptDifficultyKeys,
		},
		{"nil pyq score", func(r *Record) { r.PYQFrequencyScore = nil }, CheckPYQScorePresent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			// Deep-copy the map so mutations don't leak between cases.
			cd := make(map[string][]string, len(rec.ConceptDifficulty))
			for k, v := range rec.ConceptDifficulty {
				cd[k] = append([]string(nil), v...)
			}
			rec.ConceptDifficulty = cd

			tt.mutate(&rec)
			failed := StructuralChecks(taxonomy.Builtin(), rec)
			assert.Contains(t, failed, tt.wantFail)
		})
	}
}

func TestStructuralChecks_ScoreCheckRequiresValidBand(t *testing.T) {
	rec := validRecord()
	rec.Band = "Bogus"
	failed := StructuralChecks(taxonomy.Builtin(), rec)
	assert.Contains(t, failed, CheckBandValid)
	assert.Contains(t, failed, CheckScoreInBandRange)
}

func TestStructuralChecks_StableOrder(t *testing.T) {
	rec := Record{} // everything fails
	first := StructuralChecks(taxonomy.Builtin(), rec)
	second := StructuralChecks(taxonomy.Builtin(), rec)
	assert.Equal(t, first, second)
	// Declaration order: stem before answer before category.
	assert.Equal(t, CheckStemPresent, first[0])
}

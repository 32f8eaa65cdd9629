// Package quality implements the activation gate for enriched questions:
// 21 structural checks over the classified record plus an LLM judgment
// that the pipeline's answer agrees with the admin's.
package quality

import (
	"strings"

	"github.com/prepforge/quanta/pkg/models"
	"github.com/prepforge/quanta/pkg/taxonomy"
)

// Record is the verifier's view of an enriched question, decoupled from
// storage so the gate can be exercised on plain values.
type Record struct {
	QuestionID          string
	Stem                string
	AdminAnswer         string
	AdminSolution       string
	PrincipleToRemember string

	RightAnswer        string
	Category           string
	Subcategory        string
	TypeOfQuestion     string
	Band               models.Band
	Score              float64
	PYQFrequencyScore  *float64
	CoreConcepts       []string
	SolutionMethod     string
	ConceptDifficulty  map[string][]string
	OperationsRequired []string
	ProblemStructure   string
	ConceptKeywords    []string

	ExtractionCompleted bool
}

// Check names, stored verbatim in failed_checks for re-processing.
const (
	CheckStemPresent             = "stem_present"
	CheckAdminAnswerPresent      = "admin_answer_present"
	CheckAdminSolutionPresent    = "admin_solution_present"
	CheckPrinciplePresent        = "principle_to_remember_present"
	CheckRightAnswerPresent      = "right_answer_present"
	CheckCategoryPresent         = "category_present"
	CheckSubcategoryPresent      = "subcategory_present"
	CheckTypePresent             = "type_of_question_present"
	CheckBandValid               = "difficulty_band_valid"
	CheckScoreInBandRange        = "difficulty_score_in_band_range"
	CheckPathResolves            = "canonical_path_resolves"
	CheckCoreConceptsMinCount    = "core_concepts_min_count"
	CheckCoreConceptsSpecific    = "core_concepts_specific"
	CheckSolutionMethodPresent   = "solution_method_present"
	CheckSolutionMethodSpecific  = "solution_method_specific"
	CheckOperationsPresent       = "operations_required_present"
	CheckOperationsSpecific      = "operations_required_specific"
	CheckStructurePresent        = "problem_structure_present"
	CheckKeywordsMinCount        = "concept_keywords_min_count"
	CheckConceptDifficultyKeys   = "concept_difficulty_complete"
	CheckPYQScorePresent         = "pyq_frequency_score_present"
	CheckAnswerMatch             = "answer_match"
	CheckExtractionCompleted     = "concept_extraction_completed"
	MinCoreConcepts              = 3
	MinConceptKeywords           = 2
)

// forbiddenGenericTerms are classification values too vague to drive
// planning. A field equal to any of these (after normalization) fails.
var forbiddenGenericTerms = map[string]struct{}{
	"calculation":        {},
	"basic":              {},
	"mathematics":        {},
	"basic_problem":      {},
	"standard_problem":   {},
	"general_approach":   {},
	"standard_method":    {},
	"basic_math":         {},
	"simple_calculation": {},
}

// placeholderValues are strings that count as absent content.
var placeholderValues = map[string]struct{}{
	"":                 {},
	"n/a":              {},
	"na":               {},
	"to be classified": {},
	"null":             {},
	"none":             {},
	"tbd":              {},
	"pending":          {},
	"unknown":          {},
}

var conceptDifficultyKeys = []string{"prerequisites", "cognitive_barriers", "mastery_indicators"}

// StructuralChecks runs the 21 binary criteria and returns the names of
// the ones that failed, in stable order. An empty result means pass.
func StructuralChecks(tax *taxonomy.Taxonomy, rec Record) []string {
	var failed []string
	fail := func(name string, ok bool) {
		if !ok {
			failed = append(failed, name)
		}
	}

	fail(CheckStemPresent, present(rec.Stem))
	fail(CheckAdminAnswerPresent, present(rec.AdminAnswer))
	fail(CheckAdminSolutionPresent, present(rec.AdminSolution))
	fail(CheckPrinciplePresent, present(rec.PrincipleToRemember))
	fail(CheckRightAnswerPresent, present(rec.RightAnswer))
	fail(CheckCategoryPresent, present(rec.Category))
	fail(CheckSubcategoryPresent, present(rec.Subcategory))
	fail(CheckTypePresent, present(rec.TypeOfQuestion))

	fail(CheckBandValid, rec.Band.Valid())
	fail(CheckScoreInBandRange, rec.Band.Valid() && rec.Band.ContainsScore(rec.Score))
	fail(CheckPathResolves, tax.ValidPath(rec.Category, rec.Subcategory, rec.TypeOfQuestion))

	fail(CheckCoreConceptsMinCount, countPresent(rec.CoreConcepts) >= MinCoreConcepts)
	fail(CheckCoreConceptsSpecific, noneForbidden(rec.CoreConcepts))
	fail(CheckSolutionMethodPresent, present(rec.SolutionMethod))
	fail(CheckSolutionMethodSpecific, !isForbidden(rec.SolutionMethod))
	fail(CheckOperationsPresent, countPresent(rec.OperationsRequired) >= 1)
	fail(CheckOperationsSpecific, noneForbidden(rec.OperationsRequired))
	fail(CheckStructurePresent, present(rec.ProblemStructure))
	fail(CheckKeywordsMinCount, countPresent(rec.ConceptKeywords) >= MinConceptKeywords)
	fail(CheckConceptDifficultyKeys, hasConceptDifficultyKeys(rec.ConceptDifficulty))
	fail(CheckPYQScorePresent, rec.PYQFrequencyScore != nil && *rec.PYQFrequencyScore >= 0)

	return failed
}

func present(s string) bool {
	_, placeholder := placeholderValues[strings.ToLower(strings.TrimSpace(s))]
	return !placeholder
}

func countPresent(items []string) int {
	n := 0
	for _, it := range items {
		if present(it) {
			n++
		}
	}
	return n
}

func isForbidden(s string) bool {
	_, bad := forbiddenGenericTerms[normalizeTerm(s)]
	return bad
}

func noneForbidden(items []string) bool {
	for _, it := range items {
		if isForbidden(it) {
			return false
		}
	}
	return true
}

func hasConceptDifficultyKeys(cd map[string][]string) bool {
	if cd == nil {
		return false
	}
	for _, key := range conceptDifficultyKeys {
		vals, ok := cd[key]
		if !ok || countPresent(vals) == 0 {
			return false
		}
	}
	return true
}

// normalizeTerm lowercases and joins words with underscores so
// "Standard Method" and "standard_method" compare equal.
func normalizeTerm(s string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	return strings.Join(fields, "_")
}

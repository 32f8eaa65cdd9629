package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/prepforge/quanta/ent"
	"github.com/prepforge/quanta/ent/question"
	"github.com/prepforge/quanta/pkg/mastery"
	"github.com/prepforge/quanta/pkg/models"
	"github.com/prepforge/quanta/pkg/planner"
	"github.com/prepforge/quanta/pkg/pool"
	testdb "github.com/prepforge/quanta/test/database"
)

// testServices wires the full service graph over one test database.
type testServices struct {
	client    *ent.Client
	questions *QuestionService
	pyq       *PYQService
	audits    *AuditService
	mastery   *MasteryService
	attempts  *AttemptService
	coverage  *CoverageService
	sessions  *SessionService
}

func setupTestServices(t *testing.T) *testServices {
	client := testdb.NewTestClient(t)

	questions := NewQuestionService(client.Client)
	pyqService := NewPYQService(client.Client)
	audits := NewAuditService(client.Client, nil)
	masteryService := NewMasteryService(client.Client, mastery.Params{})
	attempts := NewAttemptService(client.Client, masteryService)
	coverage := NewCoverageService(client.Client)
	plnr := planner.New(planner.DefaultConfig(), nil, nil)
	sessions := NewSessionService(client.Client, plnr, questions, masteryService, coverage,
		pool.DefaultConfig(), 30*time.Second, nil)

	return &testServices{
		client:    client.Client,
		questions: questions,
		pyq:       pyqService,
		audits:    audits,
		mastery:   masteryService,
		attempts:  attempts,
		coverage:  coverage,
		sessions:  sessions,
	}
}

type seedSpec struct {
	id             string
	category       string
	subcategory    string
	typeOfQuestion string
	band           models.Band
	score          float64
	pyq            float64
}

// seedEnrichedQuestion inserts a question already through the pipeline:
// classified, quality verified, and active.
func seedEnrichedQuestion(t *testing.T, ctx context.Context, client *ent.Client, sp seedSpec) {
	t.Helper()
	_, err := client.Question.Create().
		SetID(sp.id).
		SetStem("stem for " + sp.id).
		SetAdminAnswer("42").
		SetRightAnswer("42").
		SetCategory(sp.category).
		SetSubcategory(sp.subcategory).
		SetTypeOfQuestion(sp.typeOfQuestion).
		SetDifficultyBand(question.DifficultyBand(sp.band)).
		SetDifficultyScore(sp.score).
		SetPyqFrequencyScore(sp.pyq).
		SetIsActive(true).
		SetQualityVerified(true).
		SetEnrichmentStatus(question.EnrichmentStatusCompleted).
		SetConceptExtractionStatus(question.ConceptExtractionStatusCompleted).
		Save(ctx)
	require.NoError(t, err)
}

// seedQuestionBank fills the bank with enough active questions across all
// five categories and all three bands to plan full adaptive packs.
func seedQuestionBank(t *testing.T, ctx context.Context, client *ent.Client) {
	t.Helper()
	subs := []struct {
		cat, sub, typ string
	}{
		{"Arithmetic", "Percentages", "Percentage Change"},
		{"Arithmetic", "Averages", "Simple Averages"},
		{"Arithmetic", "Ratio and Proportion", "Basic Ratios"},
		{"Algebra", "Linear Equations", "Single Variable"},
		{"Algebra", "Quadratic Equations", "Roots and Coefficients"},
		{"Geometry and Mensuration", "Triangles", "Similar Triangles"},
		{"Geometry and Mensuration", "Circles", "Chords and Tangents"},
		{"Number System", "Divisibility", "Divisibility Rules"},
		{"Modern Math", "Probability", "Single Event"},
	}
	scores := map[models.Band]float64{
		models.BandEasy:   1.5,
		models.BandMedium: 2.8,
		models.BandHard:   4.0,
	}
	id := 0
	for _, band := range models.Bands() {
		for _, s := range subs {
			id++
			seedEnrichedQuestion(t, ctx, client, seedSpec{
				id:             fmt.Sprintf("bank-%03d", id),
				category:       s.cat,
				subcategory:    s.sub,
				typeOfQuestion: s.typ,
				band:           band,
				score:          scores[band],
				pyq:            1.6,
			})
		}
	}
}

// goodOutcome is a fully derived enrichment result that passes the gate.
func goodOutcome() models.EnrichmentOutcome {
	freq := 1.2
	return models.EnrichmentOutcome{
		RightAnswer:       "42",
		Category:          "Arithmetic",
		Subcategory:       "Percentages",
		TypeOfQuestion:    "Percentage Change",
		Band:              models.BandEasy,
		Score:             1.5,
		PYQFrequencyScore: &freq,
		CoreConcepts:      []string{"percentage change", "base value identification"},
		SolutionMethod:    "Successive Percentage Change",
		ConceptDifficulty: map[string][]string{
			"prerequisites":      {"fractions"},
			"cognitive_barriers": {"base switching"},
			"mastery_indicators": {"picks the right base"},
		},
		OperationsRequired:  []string{"multiplication", "division"},
		ProblemStructure:    "two successive changes on one base",
		ConceptKeywords:     []string{"percentage", "successive change"},
		ExtractionCompleted: true,
		QualityPassed:       true,
	}
}

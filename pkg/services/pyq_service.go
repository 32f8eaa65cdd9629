package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/prepforge/quanta/ent"
	"github.com/prepforge/quanta/ent/pyqquestion"
	"github.com/prepforge/quanta/pkg/enrich"
	"github.com/prepforge/quanta/pkg/models"
)

// PYQService manages the historical past-year question pool used as
// frequency-scoring reference material.
type PYQService struct {
	client *ent.Client
}

// NewPYQService creates a new PYQService
func NewPYQService(client *ent.Client) *PYQService {
	return &PYQService{client: client}
}

// CreatePYQ stores one past-year question
func (s *PYQService) CreatePYQ(ctx context.Context, req models.CreatePYQRequest) (*ent.PYQQuestion, error) {
	if req.Stem == "" {
		return nil, NewValidationError("stem", "required")
	}
	if req.Category == "" {
		return nil, NewValidationError("category", "required")
	}
	if req.Subcategory == "" {
		return nil, NewValidationError("subcategory", "required")
	}
	if req.TypeOfQuestion == "" {
		return nil, NewValidationError("type_of_question", "required")
	}
	if req.Band != "" && !req.Band.Valid() {
		return nil, NewValidationError("band", fmt.Sprintf("unknown band %q", req.Band))
	}

	pyqID := req.PYQID
	if pyqID == "" {
		pyqID = uuid.New().String()
	}

	builder := s.client.PYQQuestion.Create().
		SetID(pyqID).
		SetStem(req.Stem).
		SetCategory(req.Category).
		SetSubcategory(req.Subcategory).
		SetTypeOfQuestion(req.TypeOfQuestion)

	if req.Band != "" {
		builder.SetDifficultyBand(pyqquestion.DifficultyBand(req.Band))
	}
	if req.Year != 0 {
		builder.SetYear(req.Year)
	}
	if req.Slot != "" {
		builder.SetSlot(req.Slot)
	}
	if len(req.Keywords) > 0 {
		builder.SetConceptKeywords(req.Keywords)
	}
	if req.Structure != "" {
		builder.SetProblemStructure(req.Structure)
	}
	// A reference question qualifies for frequency scoring only when it
	// carries the structure and keywords the stage compares against.
	builder.SetQualityVerified(req.Structure != "" && len(req.Keywords) > 0)

	pyq, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create PYQ question: %w", err)
	}

	return pyq, nil
}

// GetPYQ retrieves a past-year question by ID
func (s *PYQService) GetPYQ(ctx context.Context, pyqID string) (*ent.PYQQuestion, error) {
	pyq, err := s.client.PYQQuestion.Get(ctx, pyqID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get PYQ question: %w", err)
	}
	return pyq, nil
}

// QualifyingPool returns the past-year questions the frequency stage
// scores against: active, quality-verified members of the question's
// (category, subcategory) with a known problem structure and keywords.
func (s *PYQService) QualifyingPool(ctx context.Context, category, subcategory string) ([]*ent.PYQQuestion, error) {
	pool, err := s.client.PYQQuestion.Query().
		Where(
			pyqquestion.CategoryEQ(category),
			pyqquestion.SubcategoryEQ(subcategory),
			pyqquestion.IsActive(true),
			pyqquestion.QualityVerified(true),
			pyqquestion.ProblemStructureNEQ(""),
			pyqquestion.ConceptKeywordsNotNil(),
		).
		Order(ent.Asc(pyqquestion.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query qualifying PYQ pool: %w", err)
	}
	return pool, nil
}

// PYQRefSource adapts the qualifying pool to the enrichment pipeline's
// prompt-level view.
type PYQRefSource struct {
	pyq *PYQService
}

// NewPYQRefSource wires the pipeline source over the PYQ service.
func NewPYQRefSource(pyq *PYQService) *PYQRefSource {
	return &PYQRefSource{pyq: pyq}
}

func (s *PYQRefSource) QualifyingPool(ctx context.Context, category, subcategory string) ([]enrich.PYQRef, error) {
	pool, err := s.pyq.QualifyingPool(ctx, category, subcategory)
	if err != nil {
		return nil, err
	}
	refs := make([]enrich.PYQRef, 0, len(pool))
	for _, q := range pool {
		refs = append(refs, enrich.PYQRef{
			Stem:             q.Stem,
			ProblemStructure: q.ProblemStructure,
			ConceptKeywords:  q.ConceptKeywords,
		})
	}
	return refs, nil
}

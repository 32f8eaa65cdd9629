package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepforge/quanta/ent/pyqquestion"
	"github.com/prepforge/quanta/pkg/models"
)

func TestPYQService_CreatePYQ(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()

	t.Run("stores a fully described reference question", func(t *testing.T) {
		pyq, err := svc.pyq.CreatePYQ(ctx, models.CreatePYQRequest{
			PYQID:          "pyq-2023-1",
			Stem:           "A shopkeeper marks up 40% and discounts 25%. Net profit?",
			Category:       "Arithmetic",
			Subcategory:    "Percentages",
			TypeOfQuestion: "Successive Changes",
			Band:           models.BandMedium,
			Year:           2023,
			Slot:           "Slot 2",
			Keywords:       []string{"markup", "discount", "successive change"},
			Structure:      "markup then discount on one price",
		})
		require.NoError(t, err)

		assert.Equal(t, "pyq-2023-1", pyq.ID)
		assert.Equal(t, pyqquestion.DifficultyBandMedium, pyq.DifficultyBand)
		assert.Equal(t, 2023, pyq.Year)
		assert.True(t, pyq.IsActive)
		assert.True(t, pyq.QualityVerified)
	})

	t.Run("a bare upload is active but not scoring material", func(t *testing.T) {
		pyq, err := svc.pyq.CreatePYQ(ctx, models.CreatePYQRequest{
			Stem:           "Find x if 3x + 2 = 17.",
			Category:       "Algebra",
			Subcategory:    "Linear Equations",
			TypeOfQuestion: "Single Variable",
		})
		require.NoError(t, err)
		assert.True(t, pyq.IsActive)
		assert.False(t, pyq.QualityVerified)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		_, err := svc.pyq.CreatePYQ(ctx, models.CreatePYQRequest{
			PYQID:          "pyq-2023-1",
			Stem:           "duplicate",
			Category:       "Arithmetic",
			Subcategory:    "Percentages",
			TypeOfQuestion: "Successive Changes",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validation", func(t *testing.T) {
		valid := models.CreatePYQRequest{
			Stem:           "stem",
			Category:       "Arithmetic",
			Subcategory:    "Percentages",
			TypeOfQuestion: "Percentage Change",
		}
		tests := []struct {
			name   string
			mutate func(*models.CreatePYQRequest)
			field  string
		}{
			{"missing stem", func(r *models.CreatePYQRequest) { r.Stem = "" }, "stem"},
			{"missing category", func(r *models.CreatePYQRequest) { r.Category = "" }, "category"},
			{"missing subcategory", func(r *models.CreatePYQRequest) { r.Subcategory = "" }, "subcategory"},
			{"missing type", func(r *models.CreatePYQRequest) { r.TypeOfQuestion = "" }, "type_of_question"},
			{"bad band", func(r *models.CreatePYQRequest) { r.Band = "Impossible" }, "band"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := valid
				tt.mutate(&req)
				_, err := svc.pyq.CreatePYQ(ctx, req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), tt.field)
			})
		}
	})
}

func TestPYQService_QualifyingPool(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()

	seed := func(id, cat, sub, structure string, keywords []string) {
		_, err := svc.pyq.CreatePYQ(ctx, models.CreatePYQRequest{
			PYQID:          id,
			Stem:           "stem " + id,
			Category:       cat,
			Subcategory:    sub,
			TypeOfQuestion: "Any",
			Structure:      structure,
			Keywords:       keywords,
		})
		require.NoError(t, err)
	}

	seed("pyq-q1", "Arithmetic", "Percentages", "structure one", []string{"kw"})
	seed("pyq-q2", "Arithmetic", "Percentages", "structure two", []string{"kw"})
	seed("pyq-other-sub", "Arithmetic", "Averages", "structure", []string{"kw"})
	seed("pyq-bare", "Arithmetic", "Percentages", "", nil)

	t.Run("returns verified members of the pair in upload order", func(t *testing.T) {
		pool, err := svc.pyq.QualifyingPool(ctx, "Arithmetic", "Percentages")
		require.NoError(t, err)
		require.Len(t, pool, 2)
		assert.Equal(t, "pyq-q1", pool[0].ID)
		assert.Equal(t, "pyq-q2", pool[1].ID)
	})

	t.Run("empty for an unseen pair", func(t *testing.T) {
		pool, err := svc.pyq.QualifyingPool(ctx, "Algebra", "Quadratic Equations")
		require.NoError(t, err)
		assert.Empty(t, pool)
	})

	t.Run("ref source maps to the pipeline view", func(t *testing.T) {
		refs, err := NewPYQRefSource(svc.pyq).QualifyingPool(ctx, "Arithmetic", "Percentages")
		require.NoError(t, err)
		require.Len(t, refs, 2)
		assert.Equal(t, "stem pyq-q1", refs[0].Stem)
		assert.Equal(t, "structure one", refs[0].ProblemStructure)
		assert.Equal(t, []string{"kw"}, refs[0].ConceptKeywords)
	})
}

func TestPYQService_GetPYQ(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()

	_, err := svc.pyq.CreatePYQ(ctx, models.CreatePYQRequest{
		PYQID:          "pyq-get",
		Stem:           "stem",
		Category:       "Number System",
		Subcategory:    "Divisibility",
		TypeOfQuestion: "Divisibility Rules",
	})
	require.NoError(t, err)

	pyq, err := svc.pyq.GetPYQ(ctx, "pyq-get")
	require.NoError(t, err)
	assert.Equal(t, "Divisibility", pyq.Subcategory)

	_, err = svc.pyq.GetPYQ(ctx, "no-such-pyq")
	assert.ErrorIs(t, err, ErrNotFound)
}

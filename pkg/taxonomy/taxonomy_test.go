package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpec() Spec {
	return Spec{Categories: []CategorySpec{
		{
			Name: "Arithmetic",
			Subcategories: []SubcategorySpec{
				{Name: "Percentages", Types: []string{"Percentage Change", "Successive Percentage Change"}},
				{Name: "Time, Speed & Distance", Types: []string{"Relative Speed", "Trains"}},
			},
		},
		{
			Name: "Algebra",
			Subcategories: []SubcategorySpec{
				{Name: "Quadratic Equations", Types: []string{"Roots and Coefficients"}},
			},
		},
	}}
}

func TestNew_RejectsInvalidSpecs(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"empty spec", Spec{}},
		{
			"duplicate category",
			Spec{Categories: []CategorySpec{
				{Name: "Arithmetic", Subcategories: []SubcategorySpec{{Name: "A", Types: []string{"t"}}}},
				{Name: "arithmetic", Subcategories: []SubcategorySpec{{Name: "B", Types: []string{"t"}}}},
			}},
		},
		{
			"subcategory under two categories",
			Spec{Categories: []CategorySpec{
				{Name: "Arithmetic", Subcategories: []SubcategorySpec{{Name: "Percentages", Types: []string{"t"}}}},
				{Name: "Algebra", Subcategories: []SubcategorySpec{{Name: "Percentages", Types: []string{"t"}}}},
			}},
		},
		{
			"subcategory without types",
			Spec{Categories: []CategorySpec{
				{Name: "Arithmetic", Subcategories: []SubcategorySpec{{Name: "Percentages"}}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.spec)
			assert.Error(t, err)
		})
	}
}

func TestNormalize_SpellingVariants(t *testing.T) {
	tax, err := New(testSpec())
	require.NoError(t, err)

	tests := []struct {
		cat, sub, typ string
		wantOK        bool
	}{
		{"Arithmetic", "Percentages", "Percentage Change", true},
		{"arithmetic", "percentages", "percentage change", true},
		{"ARITHMETIC", "Time-Speed-Distance", "relative speed", true},
		{"Arithmetic", "time, speed and distance", "Trains", true},
		{"Arithmetic", "Time, Speed & Distance", "Relative Speed", true},
		// Wrong owning category fails even when sub and type exist.
		{"Algebra", "Percentages", "Percentage Change", false},
		{"Arithmetic", "Percentages", "Trains", false},
		{"Arithmetic", "Unknown", "Percentage Change", false},
	}

	for _, tt := range tests {
		triple, ok := tax.Normalize(tt.cat, tt.sub, tt.typ)
		assert.Equal(t, tt.wantOK, ok, "%s / %s / %s", tt.cat, tt.sub, tt.typ)
		if tt.wantOK {
			assert.True(t, tax.ValidPath(triple.Category, triple.Subcategory, triple.TypeOfQuestion))
		}
	}
}

func TestCategoryFor_ReverseLookup(t *testing.T) {
	tax, err := New(testSpec())
	require.NoError(t, err)

	triple, ok := tax.CategoryFor("time speed & distance", "trains")
	require.True(t, ok)
	assert.Equal(t, "Arithmetic", triple.Category)
	assert.Equal(t, "Time, Speed & Distance", triple.Subcategory)
	assert.Equal(t, "Trains", triple.TypeOfQuestion)

	_, ok = tax.CategoryFor("percentages", "trains")
	assert.False(t, ok)
}

func TestSubcategoriesAndTypes(t *testing.T) {
	tax, err := New(testSpec())
	require.NoError(t, err)

	assert.Equal(t, []string{"Arithmetic", "Algebra"}, tax.Categories())
	assert.Equal(t, []string{"Percentages", "Time, Speed & Distance"}, tax.Subcategories("arithmetic"))
	assert.Nil(t, tax.Subcategories("Geometry"))
	assert.Equal(t, []string{"Relative Speed", "Trains"}, tax.Types("Time, Speed & Distance"))
	assert.Equal(t, 3, tax.SubcategoryCount())
}

func TestAllPairs_DeterministicOrder(t *testing.T) {
	tax, err := New(testSpec())
	require.NoError(t, err)

	pairs := tax.AllPairs()
	require.Len(t, pairs, 5)
	for i := 1; i < len(pairs); i++ {
		prev, cur := pairs[i-1], pairs[i]
		less := prev.Subcategory < cur.Subcategory ||
			(prev.Subcategory == cur.Subcategory && prev.TypeOfQuestion < cur.TypeOfQuestion)
		assert.True(t, less, "pairs not sorted at %d", i)
	}
}

func TestBuiltin(t *testing.T) {
	tax := Builtin()
	require.NotNil(t, tax)

	// Same instance on repeated calls.
	assert.Same(t, tax, Builtin())

	// The categories the planner quotas reference must exist.
	for _, cat := range []string{"Arithmetic", "Algebra", "Geometry and Mensuration", "Number System", "Modern Math"} {
		assert.Contains(t, tax.Categories(), cat)
	}
}

func TestPromptBlock(t *testing.T) {
	tax, err := New(testSpec())
	require.NoError(t, err)

	block := tax.PromptBlock()
	assert.Contains(t, block, "Arithmetic\n")
	assert.Contains(t, block, "  - Percentages: Percentage Change; Successive Percentage Change\n")
}

package taxonomy

import "sync"

var (
	builtinTaxonomy *Taxonomy
	builtinOnce     sync.Once
)

// Builtin returns the canonical CAT quantitative-aptitude taxonomy
// (thread-safe, lazy-initialized). Deployments can replace it with a YAML
// spec via configuration; the builtin tree is the default and the one the
// test fixtures assume.
func Builtin() *Taxonomy {
	builtinOnce.Do(func() {
		t, err := New(BuiltinSpec())
		if err != nil {
			// The builtin table is static; a construction error is a
			// programming bug, not a runtime condition.
			panic("taxonomy: invalid builtin spec: " + err.Error())
		}
		builtinTaxonomy = t
	})
	return builtinTaxonomy
}

// BuiltinSpec returns the declarative builtin tree. Exposed so tests and
// the config validator can diff user-provided specs against it.
func BuiltinSpec() Spec {
	return Spec{Categories: []CategorySpec{
		{
			Name: "Arithmetic",
			Subcategories: []SubcategorySpec{
				{Name: "Percentages", Types: []string{
					"Basic Percentage Calculation",
					"Percentage Change",
					"Successive Percentage Change",
				}},
				{Name: "Profit and Loss", Types: []string{
					"Basic Profit and Loss",
					"Discount and Marked Price",
					"Dishonest Dealings",
				}},
				{Name: "Simple and Compound Interest", Types: []string{
					"Simple Interest",
					"Compound Interest",
					"Difference of SI and CI",
				}},
				{Name: "Ratio and Proportion", Types: []string{
					"Basic Ratios",
					"Proportions and Variation",
					"Partnership",
				}},
				{Name: "Averages", Types: []string{
					"Simple Averages",
					"Weighted Averages",
					"Ages",
				}},
				{Name: "Mixtures and Alligations", Types: []string{
					"Two-Component Mixtures",
					"Replacement Mixtures",
					"Alligation Rule",
				}},
				{Name: "Time and Work", Types: []string{
					"Work Efficiency",
					"Pipes and Cisterns",
					"Work and Wages",
				}},
				{Name: "Time-Speed-Distance", Types: []string{
					"Basics of TSD",
					"Relative Motion",
					"Boats and Streams",
					"Circular Motion and Races",
				}},
			},
		},
		{
			Name: "Algebra",
			Subcategories: []SubcategorySpec{
				{Name: "Linear Equations", Types: []string{
					"Single Variable Equations",
					"Systems of Equations",
					"Word Problems on Linear Equations",
				}},
				{Name: "Quadratic Equations", Types: []string{
					"Roots and Coefficients",
					"Nature of Roots",
					"Maxima and Minima of Quadratics",
				}},
				{Name: "Inequalities", Types: []string{
					"Linear Inequalities",
					"Quadratic Inequalities",
					"Modulus Inequalities",
				}},
				{Name: "Functions and Graphs", Types: []string{
					"Function Evaluation and Composition",
					"Graph Interpretation",
					"Even-Odd and Inverse Functions",
				}},
				{Name: "Logarithms", Types: []string{
					"Logarithm Properties",
					"Logarithmic Equations",
					"Surds and Indices",
				}},
				{Name: "Progressions and Series", Types: []string{
					"Arithmetic Progression",
					"Geometric Progression",
					"Special Series Summation",
				}},
			},
		},
		{
			Name: "Geometry and Mensuration",
			Subcategories: []SubcategorySpec{
				{Name: "Triangles", Types: []string{
					"Properties of Triangles",
					"Similarity and Congruence",
					"Right Triangles and Pythagorean Applications",
				}},
				{Name: "Circles", Types: []string{
					"Chords and Tangents",
					"Angles in Circles",
					"Inscribed and Circumscribed Figures",
				}},
				{Name: "Polygons and Quadrilaterals", Types: []string{
					"Properties of Quadrilaterals",
					"Regular Polygons",
					"Areas of Polygons",
				}},
				{Name: "Coordinate Geometry", Types: []string{
					"Lines and Slopes",
					"Distance and Section Formula",
					"Circles in the Plane",
				}},
				{Name: "Mensuration", Types: []string{
					"Areas of Plane Figures",
					"Surface Area and Volume",
					"Composite Solids",
				}},
				{Name: "Trigonometry", Types: []string{
					"Ratios and Identities",
					"Heights and Distances",
				}},
			},
		},
		{
			Name: "Number System",
			Subcategories: []SubcategorySpec{
				{Name: "Divisibility", Types: []string{
					"Divisibility Rules",
					"Factors and Multiples",
					"Counting Divisors",
				}},
				{Name: "HCF-LCM", Types: []string{
					"Basic HCF and LCM",
					"Applications of HCF and LCM",
				}},
				{Name: "Remainders", Types: []string{
					"Basic Remainder Theorems",
					"Cyclicity and Last Digits",
					"Modular Arithmetic",
				}},
				{Name: "Base Systems and Factorials", Types: []string{
					"Base Conversion",
					"Trailing Zeroes and Factorials",
				}},
			},
		},
		{
			Name: "Modern Math",
			Subcategories: []SubcategorySpec{
				{Name: "Permutations and Combinations", Types: []string{
					"Arrangements",
					"Selections",
					"Distribution and Grouping",
				}},
				{Name: "Probability", Types: []string{
					"Basic Probability",
					"Conditional Probability",
				}},
				{Name: "Set Theory and Venn Diagrams", Types: []string{
					"Two-Set Problems",
					"Three-Set Problems",
				}},
				{Name: "Sequences and Counting", Types: []string{
					"Recurrence Patterns",
					"Counting Integer Solutions",
				}},
			},
		},
	}}
}

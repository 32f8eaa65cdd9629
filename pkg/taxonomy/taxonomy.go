// Package taxonomy provides the canonical classification tree for the
// question bank: category -> subcategory -> type_of_question. The tree is
// the single source of truth for path validity, for the deterministic
// subcategory-to-category reverse lookup, and for semantic matching of
// free-text LLM labels onto canonical names.
package taxonomy

import (
	"fmt"
	"sort"
	"strings"
)

// Triple is one canonical classification path.
type Triple struct {
	Category       string `json:"category"`
	Subcategory    string `json:"subcategory"`
	TypeOfQuestion string `json:"type_of_question"`
}

// Spec is the declarative form of the taxonomy, loadable from YAML.
type Spec struct {
	Categories []CategorySpec `yaml:"categories"`
}

// CategorySpec declares one category and its subcategories.
type CategorySpec struct {
	Name          string            `yaml:"name"`
	Subcategories []SubcategorySpec `yaml:"subcategories"`
}

// SubcategorySpec declares one subcategory and its question types.
type SubcategorySpec struct {
	Name  string   `yaml:"name"`
	Types []string `yaml:"types"`
}

// Taxonomy is the immutable, lookup-optimized form of a Spec. It is built
// once at startup and shared read-only across goroutines.
type Taxonomy struct {
	categories []string
	subsByCat  map[string][]string

	canonCat  map[string]string            // norm(cat) -> canonical name
	canonSub  map[string]string            // norm(sub) -> canonical name
	catOfSub  map[string]string            // norm(sub) -> canonical category
	typesOf   map[string][]string          // norm(sub) -> canonical types
	canonType map[string]map[string]string // norm(sub) -> norm(type) -> canonical
}

// New builds a Taxonomy from a Spec. Subcategory names must be unique
// across the whole tree so the reverse lookup stays deterministic.
func New(spec Spec) (*Taxonomy, error) {
	if len(spec.Categories) == 0 {
		return nil, fmt.Errorf("taxonomy has no categories")
	}

	t := &Taxonomy{
		subsByCat: make(map[string][]string),
		canonCat:  make(map[string]string),
		canonSub:  make(map[string]string),
		catOfSub:  make(map[string]string),
		typesOf:   make(map[string][]string),
		canonType: make(map[string]map[string]string),
	}

	for _, cat := range spec.Categories {
		ck := normalize(cat.Name)
		if ck == "" {
			return nil, fmt.Errorf("taxonomy category with empty name")
		}
		if _, dup := t.canonCat[ck]; dup {
			return nil, fmt.Errorf("duplicate taxonomy category %q", cat.Name)
		}
		t.canonCat[ck] = cat.Name
		t.categories = append(t.categories, cat.Name)

		for _, sub := range cat.Subcategories {
			sk := normalize(sub.Name)
			if sk == "" {
				return nil, fmt.Errorf("category %q has a subcategory with empty name", cat.Name)
			}
			if prev, dup := t.catOfSub[sk]; dup {
				return nil, fmt.Errorf("subcategory %q appears under both %q and %q", sub.Name, prev, cat.Name)
			}
			if len(sub.Types) == 0 {
				return nil, fmt.Errorf("subcategory %q has no question types", sub.Name)
			}
			t.canonSub[sk] = sub.Name
			t.catOfSub[sk] = cat.Name
			t.subsByCat[cat.Name] = append(t.subsByCat[cat.Name], sub.Name)
			t.canonType[sk] = make(map[string]string, len(sub.Types))

			for _, typ := range sub.Types {
				tk := normalize(typ)
				if tk == "" {
					return nil, fmt.Errorf("subcategory %q has a type with empty name", sub.Name)
				}
				if _, dup := t.canonType[sk][tk]; dup {
					return nil, fmt.Errorf("duplicate type %q under subcategory %q", typ, sub.Name)
				}
				t.canonType[sk][tk] = typ
				t.typesOf[sk] = append(t.typesOf[sk], typ)
			}
		}
	}

	return t, nil
}

// Categories returns the canonical category names in declaration order.
func (t *Taxonomy) Categories() []string {
	out := make([]string, len(t.categories))
	copy(out, t.categories)
	return out
}

// Subcategories returns the canonical subcategory names for a category.
func (t *Taxonomy) Subcategories(category string) []string {
	canonical, ok := t.canonCat[normalize(category)]
	if !ok {
		return nil
	}
	subs := t.subsByCat[canonical]
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// Types returns the canonical question types for a subcategory.
func (t *Taxonomy) Types(subcategory string) []string {
	types := t.typesOf[normalize(subcategory)]
	out := make([]string, len(types))
	copy(out, types)
	return out
}

// ValidPath reports whether (category, subcategory, type) names an exact
// path in the tree, up to case and punctuation normalization.
func (t *Taxonomy) ValidPath(category, subcategory, typeOfQuestion string) bool {
	_, ok := t.Normalize(category, subcategory, typeOfQuestion)
	return ok
}

// Normalize maps a possibly free-cased triple onto the canonical spelling.
// It returns false if the triple does not name a valid path.
func (t *Taxonomy) Normalize(category, subcategory, typeOfQuestion string) (Triple, bool) {
	sk := normalize(subcategory)
	canonicalSub, ok := t.canonSub[sk]
	if !ok {
		return Triple{}, false
	}
	canonicalCat, ok := t.canonCat[normalize(category)]
	if !ok || t.catOfSub[sk] != canonicalCat {
		return Triple{}, false
	}
	canonicalType, ok := t.canonType[sk][normalize(typeOfQuestion)]
	if !ok {
		return Triple{}, false
	}
	return Triple{
		Category:       canonicalCat,
		Subcategory:    canonicalSub,
		TypeOfQuestion: canonicalType,
	}, true
}

// CategoryFor is the deterministic reverse lookup: given a subcategory and
// type, derive the owning category. Returns false when the pair does not
// exist in the tree.
func (t *Taxonomy) CategoryFor(subcategory, typeOfQuestion string) (Triple, bool) {
	sk := normalize(subcategory)
	canonicalSub, ok := t.canonSub[sk]
	if !ok {
		return Triple{}, false
	}
	canonicalType, ok := t.canonType[sk][normalize(typeOfQuestion)]
	if !ok {
		return Triple{}, false
	}
	return Triple{
		Category:       t.catOfSub[sk],
		Subcategory:    canonicalSub,
		TypeOfQuestion: canonicalType,
	}, true
}

// Category returns the owning category of a subcategory alone.
func (t *Taxonomy) Category(subcategory string) (string, bool) {
	cat, ok := t.catOfSub[normalize(subcategory)]
	return cat, ok
}

// SubcategoryCount returns the number of subcategories across all categories.
func (t *Taxonomy) SubcategoryCount() int {
	return len(t.canonSub)
}

// PromptBlock renders the tree as indented text for inclusion in LLM
// prompts, categories and subcategories in declaration order.
func (t *Taxonomy) PromptBlock() string {
	var b strings.Builder
	for _, cat := range t.categories {
		b.WriteString(cat)
		b.WriteString("\n")
		for _, sub := range t.subsByCat[cat] {
			b.WriteString("  - ")
			b.WriteString(sub)
			b.WriteString(": ")
			b.WriteString(strings.Join(t.typesOf[normalize(sub)], "; "))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// AllPairs returns every (subcategory, type) pair in deterministic order,
// used by cold-start pool assembly and tests.
func (t *Taxonomy) AllPairs() []Triple {
	var out []Triple
	for _, cat := range t.categories {
		for _, sub := range t.subsByCat[cat] {
			for _, typ := range t.typesOf[normalize(sub)] {
				out = append(out, Triple{Category: cat, Subcategory: sub, TypeOfQuestion: typ})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Subcategory != out[j].Subcategory {
			return out[i].Subcategory < out[j].Subcategory
		}
		return out[i].TypeOfQuestion < out[j].TypeOfQuestion
	})
	return out
}

// normalize lowercases, splits on every run of non-alphanumeric characters,
// and drops standalone "and" tokens so spelling variants like
// "Time-Speed-Distance" and "time, speed & distance" compare equal. "&" is
// a separator, not a token, so it needs no special folding.
func normalize(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	})
	kept := fields[:0]
	for _, f := range fields {
		if f == "and" {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

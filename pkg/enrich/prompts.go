package enrich

import (
	"fmt"
	"strings"
)

const analysisSystem = `You are an expert CAT quantitative aptitude examiner. You analyze one question at a time and return a complete classification as JSON only, no prose, no code fences. You never leave fields empty and never use vague values like "calculation", "basic" or "standard_method".`

const analysisUserTmpl = `Canonical taxonomy (category, then "subcategory: types"):
%s
Question:
%s

Answer provided by the content team: %q
%sAnalyze the question and respond with exactly this JSON object:
{
  "right_answer": "the answer, restated in your own words",
  "category": "...",
  "subcategory": "...",
  "type_of_question": "...",
  "difficulty_band": "Easy" | "Medium" | "Hard",
  "difficulty_score": 1.0-5.0,
  "core_concepts": ["at least 3 specific concepts"],
  "solution_method": "specific named method",
  "concept_difficulty": {
    "prerequisites": ["..."],
    "cognitive_barriers": ["..."],
    "mastery_indicators": ["..."]
  },
  "operations_required": ["specific operations"],
  "problem_structure": "one structural label",
  "concept_keywords": ["at least 2 keywords"]
}`

func analysisUser(taxonomyBlock string, q Question) string {
	var solution string
	if q.AdminSolution != "" {
		solution = fmt.Sprintf("Worked solution provided by the content team:\n%s\n\n", q.AdminSolution)
	}
	return fmt.Sprintf(analysisUserTmpl, taxonomyBlock, q.Stem, q.AdminAnswer, solution)
}

const frequencySystem = `You estimate how frequently question patterns appear in historical CAT papers. You compare one target question against a pool of past-year questions on problem structure and concept-keyword overlap. Return JSON only, no prose, no code fences.`

const frequencyUserTmpl = `Target question:
%s
  problem_structure: %q
  concept_keywords: %s

Historical pool (%d past-year questions):
%s
Considering structural similarity and keyword overlap with the pool, how frequently has this pattern appeared? Respond with exactly this JSON object:
{"pyq_frequency_score": <number, higher means more frequent>}`

func frequencyUser(stem, structure string, keywords []string, pool []PYQRef) string {
	var b strings.Builder
	for i, ref := range pool {
		fmt.Fprintf(&b, "%d. structure=%q keywords=%s\n   %s\n",
			i+1, ref.ProblemStructure, strings.Join(ref.ConceptKeywords, ", "), ref.Stem)
	}
	return fmt.Sprintf(frequencyUserTmpl,
		stem, structure, strings.Join(keywords, ", "), len(pool), b.String())
}

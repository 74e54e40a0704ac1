// Package ranking scores candidate documents against a reference document and
// orders them by relevance.
package ranking

import (
	"github.com/jonathan/resume-ranker/internal/parsing"
	"github.com/jonathan/resume-ranker/internal/similarity"
	"github.com/jonathan/resume-ranker/internal/types"
)

// Weights for scoring components. Required-skill coverage dominates.
const (
	coverageWeight   = 0.75
	similarityWeight = 0.25
	scoreScale       = 100.0
)

// Scorer combines required-skill coverage with textual similarity into a
// 0-100 relevance score. It holds no mutable state.
type Scorer struct {
	sim similarity.Similarity
}

// NewScorer returns a Scorer using sim for the textual component. A nil sim
// selects the default TF-IDF cosine similarity.
func NewScorer(sim similarity.Similarity) *Scorer {
	if sim == nil {
		sim = similarity.NewTFIDF()
	}
	return &Scorer{sim: sim}
}

// Score compares candidate against reference. It never fails: degenerate
// inputs yield zero components.
func (s *Scorer) Score(candidate, reference *types.Document) types.ScoreBreakdown {
	if reference == nil || reference.NormalizedText == "" {
		return types.ScoreBreakdown{ReferenceEmpty: true, MatchedSkills: []string{}}
	}
	if candidate == nil {
		candidate = &types.Document{}
	}

	coverage, matched, required := computeCoverage(candidate.Skills, reference.RequirementSet())
	sim := s.computeSimilarity(candidate.NormalizedText, reference.NormalizedText)

	return types.ScoreBreakdown{
		Coverage:      coverage,
		Similarity:    sim,
		Final:         combine(coverage, sim),
		MatchedSkills: matched,
		RequiredCount: required,
	}
}

// computeCoverage returns |required ∩ candidate| / |required|, the matched
// labels in sorted order and the number of required skills.
func computeCoverage(candidate, required types.SkillSet) (float64, []string, int) {
	if required.Len() == 0 {
		return 0.0, []string{}, 0
	}
	matched := required.Intersect(candidate).Sorted()
	return float64(len(matched)) / float64(required.Len()), matched, required.Len()
}

func (s *Scorer) computeSimilarity(candidateText, referenceText string) float64 {
	a := parsing.NormalizeStrict(candidateText)
	b := parsing.NormalizeStrict(referenceText)
	if a == "" || b == "" {
		return 0.0
	}
	v := s.sim.Similarity(a, b)
	if v < 0 {
		return 0.0
	}
	if v > 1 {
		return 1.0
	}
	return v
}

func combine(coverage, sim float64) float64 {
	return (coverage*coverageWeight + sim*similarityWeight) * scoreScale
}

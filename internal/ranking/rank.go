package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-ranker/internal/types"
)

// Result pairs a scored candidate with its score breakdown.
type Result struct {
	Candidate *types.Document
	Breakdown types.ScoreBreakdown
}

// RankCandidates orders results by relevance score (descending), breaking
// ties by source name so the ranking does not depend on input order.
func RankCandidates(results []Result) []types.RankedCandidate {
	ranked := make([]types.RankedCandidate, 0, len(results))
	for _, r := range results {
		name := ""
		var skills []string
		if r.Candidate != nil {
			name = r.Candidate.SourceName
			skills = r.Candidate.Skills.Sorted()
		}
		ranked = append(ranked, types.RankedCandidate{
			SourceName:     name,
			RelevanceScore: r.Breakdown.Final,
			Coverage:       r.Breakdown.Coverage,
			Similarity:     r.Breakdown.Similarity,
			MatchedSkills:  r.Breakdown.MatchedSkills,
			RequiredCount:  r.Breakdown.RequiredCount,
			Skills:         skills,
			Notes:          generateNotes(r.Breakdown),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].RelevanceScore != ranked[j].RelevanceScore {
			return ranked[i].RelevanceScore > ranked[j].RelevanceScore
		}
		return ranked[i].SourceName < ranked[j].SourceName
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// generateNotes creates a brief explanation of the score.
func generateNotes(b types.ScoreBreakdown) string {
	if b.ReferenceEmpty {
		return "Reference has no text"
	}

	var parts []string
	switch {
	case b.RequiredCount == 0:
		parts = append(parts, "No required skills")
	case b.Coverage >= 0.7:
		parts = append(parts, fmt.Sprintf("Strong skill match (%d/%d)", len(b.MatchedSkills), b.RequiredCount))
	case b.Coverage >= 0.4:
		parts = append(parts, fmt.Sprintf("Moderate skill match (%d/%d)", len(b.MatchedSkills), b.RequiredCount))
	case b.Coverage > 0:
		parts = append(parts, fmt.Sprintf("Weak skill match (%d/%d)", len(b.MatchedSkills), b.RequiredCount))
	default:
		parts = append(parts, "No skill matches")
	}

	if b.Similarity >= 0.5 {
		parts = append(parts, "High textual similarity")
	} else if b.Similarity > 0 {
		parts = append(parts, "Some textual similarity")
	}

	return strings.Join(parts, ". ")
}

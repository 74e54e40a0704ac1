// Package types provides type definitions for structured data used throughout the resume-ranker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ScoreBreakdown holds the components of one candidate/reference comparison.
type ScoreBreakdown struct {
	// Coverage is |required ∩ candidate| / |required|, 0 when nothing is required.
	Coverage float64 `json:"coverage"`
	// Similarity is the 0-1 textual similarity of the two normalized texts.
	Similarity float64 `json:"similarity"`
	// Final is the weighted 0-100 relevance score.
	Final         float64  `json:"final"`
	MatchedSkills []string `json:"matched_skills"`
	RequiredCount int      `json:"required_count"`
	// ReferenceEmpty is set when the reference had no text to anchor similarity.
	ReferenceEmpty bool `json:"reference_empty,omitempty"`
}

// RankedCandidates represents the ranked outcome of one batch run
type RankedCandidates struct {
	RunID     string            `json:"run_id"`
	Reference string            `json:"reference"`
	SelfScore *float64          `json:"self_score,omitempty"`
	Ranked    []RankedCandidate `json:"ranked"`
	Skipped   []SkippedFile     `json:"skipped"`
}

// RankedCandidate represents a single scored candidate file
type RankedCandidate struct {
	Rank           int      `json:"rank"`
	SourceName     string   `json:"source_name"`
	RelevanceScore float64  `json:"relevance_score"`
	Coverage       float64  `json:"coverage"`
	Similarity     float64  `json:"similarity"`
	MatchedSkills  []string `json:"matched_skills"`
	RequiredCount  int      `json:"required_count"`
	Skills         []string `json:"skills"`
	Notes          string   `json:"notes"`
}

// SkippedFile records a directory entry that was not scored and why.
type SkippedFile struct {
	SourceName string `json:"source_name"`
	Reason     string `json:"reason"`
}

// Package types provides type definitions for structured data used throughout the resume-ranker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DocumentRole distinguishes the reference (job description) from candidates.
type DocumentRole string

const (
	// RoleReference marks the job description every candidate is scored against.
	RoleReference DocumentRole = "reference"
	// RoleCandidate marks a resume being scored.
	RoleCandidate DocumentRole = "candidate"
)

// Document is the parsed form of one input file. It is built once by the
// parser and not mutated afterwards.
type Document struct {
	SourceName string       `json:"source_name"`
	Role       DocumentRole `json:"role"`
	// RawText keeps line breaks and punctuation for pattern-based extraction.
	RawText string `json:"-"`
	// NormalizedText is only used for similarity; empty means no contribution.
	NormalizedText string   `json:"-"`
	Skills         SkillSet `json:"skills"`
	// RequiredSkills is nil on candidate documents.
	RequiredSkills SkillSet `json:"required_skills,omitempty"`
}

// IsReference reports whether the document plays the job-description role.
func (d *Document) IsReference() bool {
	return d.Role == RoleReference
}

// RequirementSet returns the skills a candidate is measured against: the
// explicit required set when present, the general skill set otherwise.
func (d *Document) RequirementSet() SkillSet {
	if d.RequiredSkills != nil {
		return d.RequiredSkills
	}
	return d.Skills
}

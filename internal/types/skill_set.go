// Package types provides type definitions for structured data used throughout the resume-ranker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"sort"
)

// SkillSet is an unordered, deduplicated set of canonical skill labels.
// The zero value is an empty set ready for reads; use NewSkillSet before Add.
type SkillSet map[string]struct{}

// NewSkillSet returns a set holding the given labels.
func NewSkillSet(labels ...string) SkillSet {
	s := make(SkillSet, len(labels))
	for _, l := range labels {
		s[l] = struct{}{}
	}
	return s
}

// Add inserts labels into the set.
func (s SkillSet) Add(labels ...string) {
	for _, l := range labels {
		s[l] = struct{}{}
	}
}

// Contains reports whether label is in the set.
func (s SkillSet) Contains(label string) bool {
	_, ok := s[label]
	return ok
}

// Len returns the number of labels.
func (s SkillSet) Len() int {
	return len(s)
}

// Union adds every label of other into s.
func (s SkillSet) Union(other SkillSet) {
	for l := range other {
		s[l] = struct{}{}
	}
}

// Intersect returns a new set with the labels present in both sets.
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(SkillSet)
	for l := range small {
		if _, ok := large[l]; ok {
			out[l] = struct{}{}
		}
	}
	return out
}

// Clone returns an independent copy of the set.
func (s SkillSet) Clone() SkillSet {
	out := make(SkillSet, len(s))
	for l := range s {
		out[l] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold exactly the same labels.
func (s SkillSet) Equal(other SkillSet) bool {
	if len(s) != len(other) {
		return false
	}
	for l := range s {
		if _, ok := other[l]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the labels in ascending order.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for l := range s {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the set as a sorted array.
func (s SkillSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array of labels.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return err
	}
	*s = NewSkillSet(labels...)
	return nil
}

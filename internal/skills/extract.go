package skills

import (
	"strings"

	"github.com/jonathan/resume-ranker/internal/types"
)

// Extractor derives skill sets from raw document text against one vocabulary.
// Matchers are compiled once in NewExtractor; an Extractor is read-only after
// construction and safe for concurrent use.
type Extractor struct {
	vocab    *Vocabulary
	matchers []termMatcher
}

// NewExtractor compiles matchers for every term of vocab.
func NewExtractor(vocab *Vocabulary) *Extractor {
	return &Extractor{
		vocab:    vocab,
		matchers: compileMatchers(vocab),
	}
}

// Vocabulary returns the vocabulary the extractor was built with.
func (e *Extractor) Vocabulary() *Vocabulary {
	return e.vocab
}

// ExtractSkills returns every vocabulary term found in raw, combining a
// whole-text match with a line-scoped pass over bullet and cue-phrase lines.
func (e *Extractor) ExtractSkills(raw string) types.SkillSet {
	found := types.NewSkillSet()
	if raw == "" {
		return found
	}
	e.matchInto(strings.ToLower(raw), found)
	e.scanLines(raw, skillScan, found)
	return found
}

// ExtractRequiredSkills returns the skills a job description requires. The
// line-scoped scan also honours a "required skills:" header, and its result is
// widened with every skill found anywhere in the text, so a job description
// always fully covers its own requirements.
func (e *Extractor) ExtractRequiredSkills(raw string) types.SkillSet {
	required := types.NewSkillSet()
	if raw == "" {
		return required
	}
	e.scanLines(raw, requiredScan, required)
	required.Union(e.ExtractSkills(raw))
	return required
}

func (e *Extractor) matchInto(lowered string, into types.SkillSet) {
	for _, m := range e.matchers {
		if m.matches(lowered) {
			into.Add(m.term)
		}
	}
}

func (e *Extractor) scanLines(raw string, scan lineScan, into types.SkillSet) {
	for _, line := range strings.Split(raw, "\n") {
		lowered := strings.ToLower(strings.TrimSpace(line))
		if !qualifies(lowered, scan.cues) {
			continue
		}
		for _, trigger := range scan.triggers {
			if !containsAny(lowered, trigger.phrases) {
				continue
			}
			for _, skill := range trigger.skills {
				if e.vocab.Contains(skill) {
					into.Add(skill)
				}
			}
		}
		e.matchInto(lowered, into)
	}
}

// qualifies reports whether a trimmed, lowercased line lists skills.
func qualifies(line string, cues []string) bool {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return containsAny(line, cues)
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

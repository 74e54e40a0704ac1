package skills

import (
	"regexp"
	"strings"
)

// termMatcher finds one vocabulary term as a whole word or phrase. A match
// must be bounded on both sides by the text edge or a rune that is neither a
// letter nor a digit, so symbol-bearing terms like "c++" and "c#" still match.
type termMatcher struct {
	term string
	re   *regexp.Regexp
}

func newTermMatcher(term string) termMatcher {
	pattern := `(?:^|[^\p{L}\p{N}])` + regexp.QuoteMeta(term) + `(?:[^\p{L}\p{N}]|$)`
	return termMatcher{term: term, re: regexp.MustCompile(pattern)}
}

// matches expects lowered to be lowercase already.
func (m termMatcher) matches(lowered string) bool {
	if !strings.Contains(lowered, m.term) {
		return false
	}
	return m.re.MatchString(lowered)
}

func compileMatchers(v *Vocabulary) []termMatcher {
	matchers := make([]termMatcher, 0, v.Len())
	for _, term := range v.Terms() {
		matchers = append(matchers, newTermMatcher(term))
	}
	return matchers
}

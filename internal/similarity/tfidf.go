package similarity

import (
	"math"
	"regexp"
	"sort"
)

// DefaultMaxFeatures caps the number of distinct terms kept in the vector space.
const DefaultMaxFeatures = 5000

var wordPattern = regexp.MustCompile(`\w+`)

// TFIDF builds a term-frequency / inverse-document-frequency space over just
// the two compared texts and returns the cosine of their vectors.
//
// Stop words are removed, idf is smoothed as ln((1+n)/(1+df))+1 and vectors
// are L2-normalized. When the distinct terms exceed MaxFeatures, the most
// frequent terms across both texts are kept, ties broken alphabetically.
type TFIDF struct {
	MaxFeatures int
	StopWords   map[string]struct{}
}

// NewTFIDF returns a TFIDF with English stop words and the default term cap.
func NewTFIDF() *TFIDF {
	return &TFIDF{
		MaxFeatures: DefaultMaxFeatures,
		StopWords:   EnglishStopWords(),
	}
}

// Similarity implements Similarity.
func (t *TFIDF) Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	counts := [2]map[string]int{t.termCounts(a), t.termCounts(b)}
	vocab := t.vocabulary(counts)
	if len(vocab) == 0 {
		return 0
	}

	const docs = 2.0
	var dot, normA, normB float64
	for _, term := range vocab {
		df := 0
		for _, c := range counts {
			if c[term] > 0 {
				df++
			}
		}
		idf := math.Log((1+docs)/(1+float64(df))) + 1
		wa := float64(counts[0][term]) * idf
		wb := float64(counts[1][term]) * idf
		dot += wa * wb
		normA += wa * wa
		normB += wb * wb
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(0, math.Min(1, cos))
}

func (t *TFIDF) termCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, tok := range wordPattern.FindAllString(text, -1) {
		if _, stop := t.StopWords[tok]; stop {
			continue
		}
		counts[tok]++
	}
	return counts
}

// vocabulary returns the retained terms in sorted order.
func (t *TFIDF) vocabulary(counts [2]map[string]int) []string {
	totals := make(map[string]int)
	for _, c := range counts {
		for term, n := range c {
			totals[term] += n
		}
	}

	terms := make([]string, 0, len(totals))
	for term := range totals {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	if t.MaxFeatures > 0 && len(terms) > t.MaxFeatures {
		sort.SliceStable(terms, func(i, j int) bool {
			return totals[terms[i]] > totals[terms[j]]
		})
		terms = terms[:t.MaxFeatures]
		sort.Strings(terms)
	}
	return terms
}

// Package similarity scores how alike two documents are from their text alone.
package similarity

// Similarity compares two texts and returns a value in [0, 1]. Implementations
// must be deterministic and return 0 when either text is empty.
type Similarity interface {
	Similarity(a, b string) float64
}

// Func adapts an ordinary function to the Similarity interface.
type Func func(a, b string) float64

// Similarity calls f(a, b).
func (f Func) Similarity(a, b string) float64 {
	return f(a, b)
}

package textrank

import (
	"math"
	"sort"
)

// Default ranking parameters. Damping follows the classic PageRank value;
// the iteration count is fixed, there is no convergence check.
const (
	DefaultDamping    = 0.85
	DefaultIterations = 20
)

// Ranked pairs a sentence index with its centrality score. In the steady
// state the scores across all sentences sum to roughly 1.
type Ranked struct {
	Index int
	Score float64
}

// Rank scores every sentence by running a damped random-walk iteration over
// the sentence-similarity graph and returns the result sorted by descending
// score, ties broken by ascending index. Zero vectors yield an empty result;
// a single vector gets the full rank.
func Rank(vectors []TermVector, damping float64, iterations int) []Ranked {
	n := len(vectors)
	switch n {
	case 0:
		return nil
	case 1:
		return []Ranked{{Index: 0, Score: 1}}
	}

	sim, rowSums := similarityMatrix(vectors)

	// Power iteration with double buffering: every score of one round is
	// computed from the previous round's snapshot, so update order cannot
	// influence the result.
	scores := make([]float64, n)
	next := make([]float64, n)
	for i := range scores {
		scores[i] = 1 / float64(n)
	}
	base := (1 - damping) / float64(n)
	for it := 0; it < iterations; it++ {
		for i := 0; i < n; i++ {
			var sum float64
			for j := 0; j < n; j++ {
				if j == i || rowSums[j] == 0 || sim[j][i] <= 0 {
					continue
				}
				sum += sim[j][i] / rowSums[j] * scores[j]
			}
			next[i] = base + damping*sum
		}
		scores, next = next, scores
	}

	ranked := make([]Ranked, n)
	for i, s := range scores {
		ranked[i] = Ranked{Index: i, Score: s}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].Score != ranked[b].Score {
			return ranked[a].Score > ranked[b].Score
		}
		return ranked[a].Index < ranked[b].Index
	})
	return ranked
}

// similarityMatrix computes the dense symmetric cosine-similarity matrix and
// each row's sum. The diagonal stays 0; self-similarity is unused.
func similarityMatrix(vectors []TermVector) ([][]float64, []float64) {
	n := len(vectors)
	norms := make([]float64, n)
	for i, v := range vectors {
		norms[i] = norm(v)
	}

	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, n)
	}
	rowSums := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := cosine(vectors[i], vectors[j], norms[i], norms[j])
			sim[i][j] = s
			sim[j][i] = s
			rowSums[i] += s
			rowSums[j] += s
		}
	}
	return sim, rowSums
}

// cosine is the dot product over shared term ids divided by the product of
// the Euclidean norms, or 0 when either vector is empty.
func cosine(a, b TermVector, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	// Iterate the smaller map.
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for id, fa := range a {
		if fb, ok := b[id]; ok {
			dot += float64(fa) * float64(fb)
		}
	}
	return dot / (normA * normB)
}

func norm(v TermVector) float64 {
	var sq float64
	for _, f := range v {
		sq += float64(f) * float64(f)
	}
	return math.Sqrt(sq)
}

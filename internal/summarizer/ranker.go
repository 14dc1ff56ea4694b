package summarizer

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/textcentroid/summarizer/pkg/tfidf"
)

// similarityMatrix computes the pairwise cosine similarity of all sentence
// vectors. The matrix is symmetric; each pair is computed once and the
// diagonal is left at zero, which is what centralityScores expects.
func similarityMatrix(vectors []map[string]float64) *mat.SymDense {
	n := len(vectors)
	sim := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim.SetSym(i, j, tfidf.CosineSimilarity(vectors[i], vectors[j]))
		}
	}
	return sim
}

// centralityScores scores sentence i by its mean similarity to every other
// sentence. With fewer than two sentences every score is zero; there are no
// pairs to average.
func centralityScores(sim *mat.SymDense) []float64 {
	n, _ := sim.Dims()
	scores := make([]float64, n)
	if n < 2 {
		return scores
	}
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		mat.Row(row, i, sim)
		scores[i] = floats.Sum(row) / float64(n-1)
	}
	return scores
}

// selectTop returns the indices of the k highest-scoring sentences in
// ascending original order. Exact score ties keep the lower original index
// ahead, so output is deterministic across runs.
func selectTop(scores []float64, k int) []int {
	indices := make([]int, len(scores))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return scores[indices[a]] > scores[indices[b]]
	})
	if k > len(indices) {
		k = len(indices)
	}
	top := indices[:k]
	sort.Ints(top)
	return top
}

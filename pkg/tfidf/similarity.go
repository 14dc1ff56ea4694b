package tfidf

import (
	"math"
)

// CosineSimilarity computes dot(a,b) / (||a|| * ||b||) over two sparse
// vectors. Keys absent from either map are implicit zeros, so the dot
// product only needs a's keys. Returns 0 when either norm is zero. The
// signed value is preserved; weights can be negative when ubiquitous
// tokens carry negative idf.
func CosineSimilarity(a, b map[string]float64) float64 {
	var dotProduct, magA, magB float64
	for k, vA := range a {
		if vB, found := b[k]; found {
			dotProduct += vA * vB
		}
		magA += vA * vA
	}
	for _, vB := range b {
		magB += vB * vB
	}

	if magA == 0 || magB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(magA) * math.Sqrt(magB))
}

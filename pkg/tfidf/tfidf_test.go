package tfidf

import (
	"math"
	"testing"
)

func TestTermFrequency(t *testing.T) {
	tf := TermFrequency([]string{"the", "cat", "the", "hat"})
	if len(tf) != 3 {
		t.Errorf("Expected 3 distinct tokens, but got %d", len(tf))
	}
	if tf["the"] != 2 {
		t.Errorf("Expected count 2 for 'the', but got %v", tf["the"])
	}
	if tf["cat"] != 1 {
		t.Errorf("Expected count 1 for 'cat', but got %v", tf["cat"])
	}
}

func TestTermFrequencyEmpty(t *testing.T) {
	tf := TermFrequency(nil)
	if len(tf) != 0 {
		t.Errorf("Expected empty map, but got %v", tf)
	}
}

func TestInverseDocumentFrequency(t *testing.T) {
	docs := [][]string{
		{"sun", "is", "hot", "hot"},
		{"moon", "is", "cold"},
	}
	idf := InverseDocumentFrequency(docs)

	// df counts distinct documents, not occurrences: "hot" appears twice
	// in one document but df = 1.
	wantHot := math.Log(2.0 / 2.0)
	if math.Abs(idf["hot"]-wantHot) > 1e-9 {
		t.Errorf("Expected idf %f for 'hot', but got %f", wantHot, idf["hot"])
	}

	// A token in every document gets a negative idf.
	wantIs := math.Log(2.0 / 3.0)
	if math.Abs(idf["is"]-wantIs) > 1e-9 {
		t.Errorf("Expected idf %f for 'is', but got %f", wantIs, idf["is"])
	}
	if idf["is"] >= 0 {
		t.Errorf("Expected negative idf for ubiquitous token, but got %f", idf["is"])
	}

	// Monotonicity: ubiquitous token never outweighs a rare one.
	if idf["is"] > idf["sun"] {
		t.Errorf("Expected idf('is') <= idf('sun'), but got %f > %f", idf["is"], idf["sun"])
	}

	// Unseen tokens are absent and default to 0 on lookup.
	if _, ok := idf["star"]; ok {
		t.Errorf("Expected no entry for unseen token, but got %f", idf["star"])
	}
	if idf["star"] != 0 {
		t.Errorf("Expected default 0 for unseen token, but got %f", idf["star"])
	}
}

func TestVectorize(t *testing.T) {
	tf := map[string]float64{"sun": 2, "hot": 1, "star": 1}
	idf := map[string]float64{"sun": 0.5, "hot": -0.2}

	vector := Vectorize(tf, idf)

	if len(vector) != len(tf) {
		t.Errorf("Expected key set of size %d, but got %d", len(tf), len(vector))
	}
	if math.Abs(vector["sun"]-1.0) > 1e-9 {
		t.Errorf("Expected weight 1.0 for 'sun', but got %f", vector["sun"])
	}
	if math.Abs(vector["hot"]+0.2) > 1e-9 {
		t.Errorf("Expected weight -0.2 for 'hot', but got %f", vector["hot"])
	}
	// Token missing from idf contributes weight 0 but keeps its key.
	if weight, ok := vector["star"]; !ok || weight != 0 {
		t.Errorf("Expected weight 0 for 'star', but got %f (present=%v)", weight, ok)
	}
}

func TestCosineSimilarityIdentical(t *testing.T) {
	v := map[string]float64{"a": 1, "b": 2, "c": 3}
	if sim := CosineSimilarity(v, v); math.Abs(sim-1.0) > 1e-9 {
		t.Errorf("Expected similarity 1.0, but got %f", sim)
	}
}

func TestCosineSimilarityOrthogonal(t *testing.T) {
	a := map[string]float64{"a": 1, "b": 2}
	b := map[string]float64{"c": 1, "d": 2}
	if sim := CosineSimilarity(a, b); sim != 0.0 {
		t.Errorf("Expected similarity 0.0, but got %f", sim)
	}
}

func TestCosineSimilarityKnownValue(t *testing.T) {
	a := map[string]float64{"a": 1, "b": 2, "c": 3}
	b := map[string]float64{"a": 1, "c": 3}
	want := (1*1 + 3*3) / (math.Sqrt(1*1+2*2+3*3) * math.Sqrt(1*1+3*3))
	if sim := CosineSimilarity(a, b); math.Abs(sim-want) > 1e-9 {
		t.Errorf("Expected similarity %f, but got %f", want, sim)
	}
}

func TestCosineSimilarityZeroNorm(t *testing.T) {
	zero := map[string]float64{"a": 0}
	v := map[string]float64{"a": 1}
	if sim := CosineSimilarity(zero, v); sim != 0.0 {
		t.Errorf("Expected 0 for zero-norm vector, but got %f", sim)
	}
	if sim := CosineSimilarity(v, zero); sim != 0.0 {
		t.Errorf("Expected 0 for zero-norm vector, but got %f", sim)
	}
	if sim := CosineSimilarity(map[string]float64{}, v); sim != 0.0 {
		t.Errorf("Expected 0 for empty vector, but got %f", sim)
	}
}

func TestCosineSimilaritySignPreserved(t *testing.T) {
	// Negative weights are legal (negative idf) and the signed similarity
	// must come through unclamped.
	a := map[string]float64{"a": -1}
	b := map[string]float64{"a": 1}
	if sim := CosineSimilarity(a, b); math.Abs(sim+1.0) > 1e-9 {
		t.Errorf("Expected similarity -1.0, but got %f", sim)
	}
}

func TestCosineSimilarityBounds(t *testing.T) {
	vectors := []map[string]float64{
		{"a": 1, "b": -2, "c": 0.5},
		{"a": -3, "d": 4},
		{"b": 2, "c": 2, "d": 2},
	}
	for i, a := range vectors {
		for j, b := range vectors {
			sim := CosineSimilarity(a, b)
			if sim < -1-1e-9 || sim > 1+1e-9 {
				t.Errorf("Similarity of vectors %d,%d out of bounds: %f", i, j, sim)
			}
		}
	}
}

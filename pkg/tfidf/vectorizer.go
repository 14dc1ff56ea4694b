package tfidf

import (
	"math"
)

// TermFrequency counts raw token occurrences within a single document.
func TermFrequency(tokens []string) map[string]float64 {
	tf := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		tf[token]++
	}
	return tf
}

// InverseDocumentFrequency computes idf = ln(N / (1 + df)) for every token
// seen in docs, where df counts the documents containing the token at least
// once (not total occurrences) and N is the number of documents. Tokens
// absent from the result have an implicit idf of 0. A token appearing in
// every document yields a negative idf; that is allowed, not an error.
func InverseDocumentFrequency(docs [][]string) map[string]float64 {
	docCount := len(docs)
	docFreq := make(map[string]int)

	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, token := range doc {
			if !seen[token] {
				docFreq[token]++
				seen[token] = true
			}
		}
	}

	idf := make(map[string]float64, len(docFreq))
	for token, freq := range docFreq {
		idf[token] = math.Log(float64(docCount) / float64(freq+1))
	}
	return idf
}

// Vectorize combines one document's term frequencies with the shared idf map
// into a sparse TF-IDF vector. The key set equals the tf key set; tokens
// missing from idf contribute weight 0. No normalization is applied.
func Vectorize(tf, idf map[string]float64) map[string]float64 {
	vector := make(map[string]float64, len(tf))
	for token, freq := range tf {
		vector[token] = freq * idf[token]
	}
	return vector
}

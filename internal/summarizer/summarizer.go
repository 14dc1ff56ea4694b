// --------------------------------------------------------------------------------
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
// --------------------------------------------------------------------------------

// Package summarizer extracts a short summary from a text document by
// selecting its most central sentences under a TF-IDF vector-space model.
package summarizer

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/textcentroid/summarizer/pkg/tfidf"
)

// ErrInvalidSentenceCount is returned when Summarize is asked for fewer
// than one sentence.
var ErrInvalidSentenceCount = errors.New("sentence count must be at least 1")

// Options configures a Summarizer. Zero values select the defaults: the
// punctuation-rule segmenter, the ASCII tokenizer, and serial execution.
type Options struct {
	Segmenter Segmenter
	Tokenizer Tokenizer
	// Workers bounds concurrent per-sentence tokenization. Values below 2
	// keep the pipeline serial. Results are identical either way; tokens
	// are written back by sentence index.
	Workers int
}

// Summarizer holds the pipeline configuration. It is stateless across
// calls; every Summarize invocation builds its statistics from scratch.
type Summarizer struct {
	segmenter Segmenter
	tokenizer Tokenizer
	workers   int
}

// New creates a Summarizer, filling in defaults for unset options.
func New(opts Options) *Summarizer {
	if opts.Segmenter == nil {
		opts.Segmenter = RegexSegmenter{}
	}
	if opts.Tokenizer == nil {
		opts.Tokenizer = ASCIITokenizer{}
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Summarizer{
		segmenter: opts.Segmenter,
		tokenizer: opts.Tokenizer,
		workers:   opts.Workers,
	}
}

// SegmenterFor maps a configuration name to a Segmenter. An empty name
// selects the default.
func SegmenterFor(name string) (Segmenter, error) {
	switch name {
	case "", "regex":
		return RegexSegmenter{}, nil
	case "prose":
		return ProseSegmenter{}, nil
	}
	return nil, fmt.Errorf("unknown segmenter %q", name)
}

// TokenizerFor maps a configuration name to a Tokenizer. An empty name
// selects the default.
func TokenizerFor(name string) (Tokenizer, error) {
	switch name {
	case "", "ascii":
		return ASCIITokenizer{}, nil
	case "prose":
		return ProseTokenizer{}, nil
	}
	return nil, fmt.Errorf("unknown tokenizer %q", name)
}

// Summarize selects the sentenceCount most central sentences of text and
// returns them space-joined in original document order. A document with no
// extractable sentences yields "". When the document already has at most
// sentenceCount sentences the original text is returned verbatim, original
// whitespace included.
func (s *Summarizer) Summarize(text string, sentenceCount int) (string, error) {
	if sentenceCount <= 0 {
		return "", ErrInvalidSentenceCount
	}

	sentences, err := s.segmenter.Segment(text)
	if err != nil {
		return "", fmt.Errorf("segmenting text: %w", err)
	}
	if len(sentences) == 0 {
		return "", nil
	}
	if len(sentences) <= sentenceCount {
		return text, nil
	}

	tokenized, err := s.tokenizeAll(sentences)
	if err != nil {
		return "", fmt.Errorf("tokenizing sentences: %w", err)
	}

	// The idf map is built once per call and shared read-only by all
	// sentence vectors.
	idf := tfidf.InverseDocumentFrequency(tokenized)
	vectors := make([]map[string]float64, len(tokenized))
	for i, tokens := range tokenized {
		vectors[i] = tfidf.Vectorize(tfidf.TermFrequency(tokens), idf)
	}

	scores := centralityScores(similarityMatrix(vectors))
	chosen := selectTop(scores, sentenceCount)

	parts := make([]string, len(chosen))
	for i, idx := range chosen {
		parts[i] = sentences[idx]
	}
	return strings.TrimSpace(strings.Join(parts, " ")), nil
}

// tokenizeAll tokenizes every sentence, fanning out across workers when
// configured. Tokens land in their sentence's slot, so the result does not
// depend on goroutine scheduling.
func (s *Summarizer) tokenizeAll(sentences []string) ([][]string, error) {
	tokenized := make([][]string, len(sentences))

	if s.workers < 2 {
		for i, sentence := range sentences {
			tokens, err := s.tokenizer.Tokenize(sentence)
			if err != nil {
				return nil, err
			}
			tokenized[i] = tokens
		}
		return tokenized, nil
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.workers)
	errs := make([]error, len(sentences))

	for i, sentence := range sentences {
		wg.Add(1)
		go func(i int, sentence string) {
			defer wg.Done()
			sem <- struct{}{}
			tokenized[i], errs[i] = s.tokenizer.Tokenize(sentence)
			<-sem
		}(i, sentence)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return tokenized, nil
}

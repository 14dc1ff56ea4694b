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

package summarizer

import (
	"regexp"
	"strings"

	"github.com/jdkato/prose/v2"
)

// Segmenter splits raw text into an ordered sequence of trimmed, non-empty
// sentences. Sentence order must match appearance in the text; the index of
// a sentence is its identity for downstream selection.
type Segmenter interface {
	Segment(text string) ([]string, error)
}

// A boundary is a terminator followed by a whitespace run, so consecutive
// terminators ("...") collapse into a single split point.
var sentenceBoundary = regexp.MustCompile(`[.!?]\s+`)

// RegexSegmenter is the default segmenter. It splits after every '.', '!'
// or '?' that is followed by whitespace, keeping the terminator attached to
// the preceding sentence and discarding the whitespace separator.
type RegexSegmenter struct{}

func (RegexSegmenter) Segment(text string) ([]string, error) {
	return Segment(text), nil
}

// Segment splits text into sentences. A text with no terminating
// punctuation yields one sentence (the whole trimmed text); an empty or
// all-whitespace text yields none.
func Segment(text string) []string {
	var sentences []string
	start := 0
	for _, loc := range sentenceBoundary.FindAllStringIndex(text, -1) {
		if piece := strings.TrimSpace(text[start : loc[0]+1]); piece != "" {
			sentences = append(sentences, piece)
		}
		start = loc[1]
	}
	if tail := strings.TrimSpace(text[start:]); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// ProseSegmenter segments sentences with the prose NLP library instead of
// the punctuation rule. Tagging and entity extraction are disabled since
// only segmentation is needed.
type ProseSegmenter struct{}

func (ProseSegmenter) Segment(text string) ([]string, error) {
	doc, err := prose.NewDocument(text, prose.WithTagging(false), prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}
	sentences := make([]string, 0, len(doc.Sentences()))
	for _, sent := range doc.Sentences() {
		if trimmed := strings.TrimSpace(sent.Text); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences, nil
}

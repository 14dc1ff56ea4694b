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

package main

import (
	"fmt"

	"github.com/textcentroid/summarizer/internal/summarizer"
	"github.com/textcentroid/summarizer/pkg/config"
	"github.com/textcentroid/summarizer/pkg/utils"
)

const sampleDocument = "Artificial intelligence is transforming how modern software is built. " +
	"Machine learning systems learn patterns from large volumes of data. " +
	"Artificial intelligence and machine learning now power search, translation, and recommendations. " +
	"Many researchers study how these systems make their decisions. " +
	"Responsible development of artificial intelligence remains an open challenge."

func main() {
	logger := utils.NewLogger("summarizer ")

	opts := summarizer.Options{}
	sentenceCount := 2

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Info("No config loaded, using defaults: %v", err)
	} else {
		if cfg.Summarizer.SentenceCount > 0 {
			sentenceCount = cfg.Summarizer.SentenceCount
		}
		opts.Segmenter, err = summarizer.SegmenterFor(cfg.Summarizer.Segmenter)
		if err != nil {
			logger.Fatal("Invalid config: %v", err)
		}
		opts.Tokenizer, err = summarizer.TokenizerFor(cfg.Summarizer.Tokenizer)
		if err != nil {
			logger.Fatal("Invalid config: %v", err)
		}
		opts.Workers = cfg.Summarizer.Workers
	}

	s := summarizer.New(opts)
	summary, err := s.Summarize(sampleDocument, sentenceCount)
	if err != nil {
		logger.Fatal("Failed to summarize: %v", err)
	}

	fmt.Println("Document:")
	fmt.Println(sampleDocument)
	fmt.Println()
	fmt.Printf("%d-sentence summary:\n", sentenceCount)
	fmt.Println(summary)
}

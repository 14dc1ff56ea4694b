package summarizer

import (
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

// Tokenizer normalizes and splits one sentence into word tokens. Duplicate
// tokens are kept in order so frequency counting stays correct.
type Tokenizer interface {
	Tokenize(sentence string) ([]string, error)
}

// ASCIITokenizer is the default tokenizer, built on the pure Tokenize
// function below.
type ASCIITokenizer struct{}

func (ASCIITokenizer) Tokenize(sentence string) ([]string, error) {
	return Tokenize(sentence), nil
}

// Tokenize lowercases the sentence, replaces every rune that is not a
// lowercase ASCII letter, decimal digit, or whitespace with a space, and
// splits on whitespace runs.
func Tokenize(sentence string) []string {
	lowered := strings.ToLower(sentence)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', unicode.IsSpace(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Fields(b.String())
}

// ProseTokenizer runs the prose tokenizer over the sentence and then applies
// the same normalization per token. Punctuation-only tokens normalize to
// nothing and are dropped.
type ProseTokenizer struct{}

func (ProseTokenizer) Tokenize(sentence string) ([]string, error) {
	doc, err := prose.NewDocument(sentence, prose.WithTagging(false), prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}
	tokens := make([]string, 0, len(doc.Tokens()))
	for _, tok := range doc.Tokens() {
		tokens = append(tokens, Tokenize(tok.Text)...)
	}
	return tokens, nil
}

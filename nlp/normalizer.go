// Package nlp turns raw text into the normalized token sequence shared by
// training and inference.
package nlp

import (
	"github.com/blugelabs/bluge/analysis"
	"github.com/blugelabs/bluge/analysis/token"
	"github.com/blugelabs/bluge/analysis/tokenizer"
)

// Normalizer lowercases text, splits it on Unicode word boundaries,
// detaches English clitics and lemmatizes every token.
// It holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	analyzer   *analysis.Analyzer
	lemmatizer *Lemmatizer
}

// NewNormalizer builds a normalizer backed by the embedded lexicon.
func NewNormalizer() (*Normalizer, error) {
	lemmatizer, err := defaultLemmatizer()
	if err != nil {
		return nil, err
	}
	return NewNormalizerWithLemmatizer(lemmatizer), nil
}

func NewNormalizerWithLemmatizer(lemmatizer *Lemmatizer) *Normalizer {
	return &Normalizer{
		analyzer: &analysis.Analyzer{
			CharFilters: []analysis.CharFilter{apostropheFilter{}},
			Tokenizer:   tokenizer.NewUnicodeTokenizer(),
			TokenFilters: []analysis.TokenFilter{
				token.NewLowerCaseFilter(),
				cliticFilter{},
			},
		},
		lemmatizer: lemmatizer,
	}
}

// Normalize returns the lemmatized tokens of text. Empty or
// punctuation-only input yields no token.
func (n *Normalizer) Normalize(text string) []string {
	stream := n.analyzer.Analyze([]byte(text))
	tokens := make([]string, 0, len(stream))
	for _, tok := range stream {
		tokens = append(tokens, n.lemmatizer.Lemmatize(string(tok.Term)))
	}
	return tokens
}

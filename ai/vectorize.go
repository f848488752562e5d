package ai

import (
	"fmt"
	"intent-lab/errors"
	"intent-lab/nlp"
	"math"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// VectorizerConfig controls the n-gram range and the vocabulary cap.
type VectorizerConfig struct {
	MinN        int `json:"min_n"`
	MaxN        int `json:"max_n"`
	MaxFeatures int `json:"max_features"`
}

func DefaultVectorizerConfig() VectorizerConfig {
	return VectorizerConfig{MinN: 1, MaxN: 3, MaxFeatures: 5000}
}

// Vectorizer transforms text into TF-IDF weighted n-gram features.
// Its vocabulary and IDF weights are frozen once fitted.
type Vectorizer struct {
	config     VectorizerConfig
	normalizer *nlp.Normalizer
	index      map[string]int
	terms      []string
	idf        []float64
}

// FitVectorizer builds the vocabulary from the corpus. The MaxFeatures most
// frequent n-grams are kept (ties broken by term order), columns are
// assigned in term order and the IDF is smoothed: ln((1+n)/(1+df)) + 1.
func FitVectorizer(normalizer *nlp.Normalizer, corpus []string, config VectorizerConfig) (*Vectorizer, error) {
	if config.MinN < 1 || config.MaxN < config.MinN || config.MaxFeatures < 1 {
		return nil, fmt.Errorf("invalid vectorizer config %+v", config)
	}
	if len(corpus) == 0 {
		return nil, errors.ErrEmptyTrainingSet
	}

	termFrequency := make(map[string]int)
	documentFrequency := make(map[string]int)
	for _, document := range corpus {
		grams := ngrams(normalizer.Normalize(document), config.MinN, config.MaxN)
		for _, gram := range grams {
			termFrequency[gram]++
		}
		for _, gram := range lo.Uniq(grams) {
			documentFrequency[gram]++
		}
	}
	if len(termFrequency) == 0 {
		return nil, errors.ErrEmptyVocabulary
	}

	terms := lo.Keys(termFrequency)
	slices.SortFunc(terms, func(a, b string) int {
		if termFrequency[a] != termFrequency[b] {
			return termFrequency[b] - termFrequency[a]
		}
		return strings.Compare(a, b)
	})
	if len(terms) > config.MaxFeatures {
		terms = terms[:config.MaxFeatures]
	}
	slices.Sort(terms)

	n := float64(len(corpus))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		idf[i] = math.Log((1+n)/(1+float64(documentFrequency[term]))) + 1
	}
	return newVectorizer(normalizer, config, terms, idf), nil
}

func newVectorizer(normalizer *nlp.Normalizer, config VectorizerConfig, terms []string, idf []float64) *Vectorizer {
	index := make(map[string]int, len(terms))
	for i, term := range terms {
		index[term] = i
	}
	return &Vectorizer{
		config:     config,
		normalizer: normalizer,
		index:      index,
		terms:      terms,
		idf:        idf,
	}
}

// Transform maps text to an L2-normalized TF-IDF vector. N-grams outside
// the vocabulary are ignored; text without known n-gram gives the zero vector.
func (v *Vectorizer) Transform(text string) SparseVector {
	counts := make(map[int]float64)
	for _, gram := range ngrams(v.normalizer.Normalize(text), v.config.MinN, v.config.MaxN) {
		if idx, ok := v.index[gram]; ok {
			counts[idx]++
		}
	}

	indices := lo.Keys(counts)
	slices.Sort(indices)
	values := make([]float64, len(indices))
	for k, idx := range indices {
		values[k] = counts[idx] * v.idf[idx]
	}

	vec := SparseVector{Indices: indices, Values: values}
	if norm := math.Sqrt(vec.SquaredNorm()); norm > 0 {
		for k := range values {
			values[k] /= norm
		}
	}
	return vec
}

// Dimension is the number of feature columns.
func (v *Vectorizer) Dimension() int {
	return len(v.terms)
}

// Vocabulary returns the n-grams in column order.
func (v *Vectorizer) Vocabulary() []string {
	return slices.Clone(v.terms)
}

func (v *Vectorizer) Config() VectorizerConfig {
	return v.config
}

// ngrams returns every contiguous run of minN to maxN tokens joined by a space.
func ngrams(tokens []string, minN, maxN int) []string {
	var grams []string
	for n := minN; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			grams = append(grams, strings.Join(tokens[i:i+n], " "))
		}
	}
	return grams
}

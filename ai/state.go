package ai

import (
	"fmt"
	"intent-lab/errors"
	"intent-lab/nlp"
	"slices"
)

// FormatVersion identifies the layout of PipelineState and the feature
// extraction it was produced with. Bump it whenever either changes.
const FormatVersion = 1

// PipelineState is the serializable form of a Pipeline.
type PipelineState struct {
	Version    int             `json:"version"`
	Metadata   Metadata        `json:"metadata"`
	Vectorizer VectorizerState `json:"vectorizer"`
	Classifier ClassifierState `json:"classifier"`
}

type VectorizerState struct {
	Config VectorizerConfig `json:"config"`
	Terms  []string         `json:"terms"`
	IDF    []float64        `json:"idf"`
}

type ClassifierState struct {
	Config  ClassifierConfig `json:"config"`
	Classes []string         `json:"classes"`
	Weights [][]float64      `json:"weights"`
}

// State returns a deep copy of the pipeline's fitted parameters.
func (p *Pipeline) State() PipelineState {
	weights := make([][]float64, len(p.classifier.weights))
	for k, row := range p.classifier.weights {
		weights[k] = slices.Clone(row)
	}
	return PipelineState{
		Version:  FormatVersion,
		Metadata: p.metadata,
		Vectorizer: VectorizerState{
			Config: p.vectorizer.config,
			Terms:  slices.Clone(p.vectorizer.terms),
			IDF:    slices.Clone(p.vectorizer.idf),
		},
		Classifier: ClassifierState{
			Config:  p.classifier.config,
			Classes: slices.Clone(p.classifier.classes),
			Weights: weights,
		},
	}
}

// RestorePipeline rebuilds a pipeline from its state. States written by
// another FormatVersion are rejected with errors.ErrArtifactVersion and
// inconsistent dimensions with errors.ErrArtifactCorrupt.
func RestorePipeline(normalizer *nlp.Normalizer, state PipelineState) (*Pipeline, error) {
	if state.Version != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", errors.ErrArtifactVersion, state.Version, FormatVersion)
	}
	v, c := state.Vectorizer, state.Classifier
	dim := len(v.Terms)
	switch {
	case dim == 0 || len(v.IDF) != dim:
		return nil, fmt.Errorf("%w: %d terms for %d idf weights", errors.ErrArtifactCorrupt, dim, len(v.IDF))
	case len(c.Classes) < 2 || len(c.Weights) != len(c.Classes):
		return nil, fmt.Errorf("%w: %d classes for %d weight rows", errors.ErrArtifactCorrupt, len(c.Classes), len(c.Weights))
	}
	for k, row := range c.Weights {
		if len(row) != dim+1 {
			return nil, fmt.Errorf("%w: weight row %d has %d columns, want %d",
				errors.ErrArtifactCorrupt, k, len(row), dim+1)
		}
	}

	classifier := &Classifier{
		config:  c.Config,
		classes: slices.Clone(c.Classes),
		weights: make([][]float64, len(c.Weights)),
		dim:     dim,
	}
	for k, row := range c.Weights {
		classifier.weights[k] = slices.Clone(row)
	}
	return &Pipeline{
		vectorizer: newVectorizer(normalizer, v.Config, slices.Clone(v.Terms), slices.Clone(v.IDF)),
		classifier: classifier,
		metadata:   state.Metadata,
	}, nil
}

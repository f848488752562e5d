package ai

import (
	"intent-lab/errors"
	"intent-lab/nlp"
	"time"

	"github.com/google/uuid"
)

// Metadata describes the training run that produced a pipeline.
type Metadata struct {
	RunID            uuid.UUID `json:"run_id"`
	TrainedAt        time.Time `json:"trained_at"`
	Examples         int       `json:"examples"`
	TrainingAccuracy float64   `json:"training_accuracy"`
	HeldOutAccuracy  *float64  `json:"held_out_accuracy,omitempty"`
}

// Pipeline is a fitted vectorizer and classifier pair. It is immutable and
// safe for concurrent use.
type Pipeline struct {
	vectorizer *Vectorizer
	classifier *Classifier
	metadata   Metadata
}

// FitPipeline fits the vectorizer and the classifier together on the same
// patterns. They are never fitted separately.
func FitPipeline(normalizer *nlp.Normalizer, patterns, labels []string,
	vectorizerConfig VectorizerConfig, classifierConfig ClassifierConfig) (*Pipeline, error) {
	if len(patterns) != len(labels) {
		return nil, errors.ErrLabelMismatch
	}
	vectorizer, err := FitVectorizer(normalizer, patterns, vectorizerConfig)
	if err != nil {
		return nil, err
	}
	features := make([]SparseVector, len(patterns))
	for i, pattern := range patterns {
		features[i] = vectorizer.Transform(pattern)
	}
	classifier, err := FitClassifier(features, labels, vectorizer.Dimension(), classifierConfig)
	if err != nil {
		return nil, err
	}
	return &Pipeline{vectorizer: vectorizer, classifier: classifier}, nil
}

// Predict returns the tag of text. Empty input is classified from the zero
// vector, so it falls on the class with the highest intercept.
func (p *Pipeline) Predict(text string) string {
	return p.classifier.Predict(p.vectorizer.Transform(text))
}

// Decision returns the raw margin of every class for text, in Classes order.
func (p *Pipeline) Decision(text string) []float64 {
	return p.classifier.Decision(p.vectorizer.Transform(text))
}

func (p *Pipeline) Classes() []string {
	return p.classifier.Classes()
}

func (p *Pipeline) Vectorizer() *Vectorizer {
	return p.vectorizer
}

func (p *Pipeline) Metadata() Metadata {
	return p.metadata
}

// WithMetadata returns a copy of the pipeline carrying metadata.
func (p *Pipeline) WithMetadata(metadata Metadata) *Pipeline {
	return &Pipeline{vectorizer: p.vectorizer, classifier: p.classifier, metadata: metadata}
}

//go:generate go run go.uber.org/mock/mockgen -source=predictor.go -destination=../mocks/mock_predictor.go -package=mocks
package services

import "intent-lab/ai"

// IntentPredictor maps raw text to a tag. *ai.Pipeline is the production
// implementation.
type IntentPredictor interface {
	Predict(text string) string
	Classes() []string
}

// IArtifactStore persists a fitted pipeline.
type IArtifactStore interface {
	Save(pipeline *ai.Pipeline) error
}

package services

import (
	"context"
	"fmt"
	"intent-lab/ai"
	"intent-lab/domain"
	"intent-lab/errors"
	"intent-lab/nlp"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type TrainingConfig struct {
	Vectorizer ai.VectorizerConfig
	Classifier ai.ClassifierConfig
	// ValidationRatio is the share of each tag's patterns held out to
	// measure accuracy on unseen phrasings. 0 disables the split.
	ValidationRatio float64
}

func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		Vectorizer: ai.DefaultVectorizerConfig(),
		Classifier: ai.DefaultClassifierConfig(),
	}
}

type TrainingResult struct {
	Pipeline *ai.Pipeline
	Examples int
	// TrainingAccuracy is measured on the patterns the model was fitted on.
	// It is optimistic and cannot reveal overfitting.
	TrainingAccuracy float64
	HeldOutAccuracy  *float64
	HeldOut          int
}

type ITrainingService interface {
	Train(ctx context.Context, dataset domain.Dataset) (TrainingResult, error)
}

type TrainingService struct {
	log        *slog.Logger
	normalizer *nlp.Normalizer
	store      IArtifactStore
	config     TrainingConfig
}

func NewTrainingService(log *slog.Logger, normalizer *nlp.Normalizer,
	store IArtifactStore, config TrainingConfig) *TrainingService {
	return &TrainingService{log: log, normalizer: normalizer, store: store, config: config}
}

// Train fits the pipeline on every pattern of the dataset, reports its
// accuracy and persists it. Nothing is persisted when training fails.
func (s *TrainingService) Train(ctx context.Context, dataset domain.Dataset) (TrainingResult, error) {
	if err := checkTrainable(dataset); err != nil {
		return TrainingResult{}, err
	}
	examples := dataset.Examples()
	s.log.Info("Training started", "intents", len(dataset.Intents), "examples", len(examples))

	var heldOutAccuracy *float64
	var heldOut []domain.Example
	if s.config.ValidationRatio > 0 {
		var train []domain.Example
		train, heldOut = splitExamples(examples, s.config.ValidationRatio, s.config.Classifier.Seed)
		if len(heldOut) > 0 {
			pipeline, err := s.fit(train)
			if err != nil {
				return TrainingResult{}, err
			}
			heldOutAccuracy = lo.ToPtr(accuracy(pipeline, heldOut))
			s.log.Info("Held-out evaluation", "train", len(train), "held_out", len(heldOut),
				"accuracy", *heldOutAccuracy)
		}
	}
	if err := ctx.Err(); err != nil {
		return TrainingResult{}, err
	}

	pipeline, err := s.fit(examples)
	if err != nil {
		return TrainingResult{}, err
	}
	trainingAccuracy := accuracy(pipeline, examples)
	pipeline = pipeline.WithMetadata(ai.Metadata{
		RunID:            uuid.New(),
		TrainedAt:        time.Now().UTC(),
		Examples:         len(examples),
		TrainingAccuracy: trainingAccuracy,
		HeldOutAccuracy:  heldOutAccuracy,
	})
	s.log.Info("Training finished",
		"run_id", pipeline.Metadata().RunID,
		"features", pipeline.Vectorizer().Dimension(),
		"training_accuracy", trainingAccuracy)

	if err = ctx.Err(); err != nil {
		return TrainingResult{}, err
	}
	if err = s.store.Save(pipeline); err != nil {
		return TrainingResult{}, err
	}
	return TrainingResult{
		Pipeline:         pipeline,
		Examples:         len(examples),
		TrainingAccuracy: trainingAccuracy,
		HeldOutAccuracy:  heldOutAccuracy,
		HeldOut:          len(heldOut),
	}, nil
}

func (s *TrainingService) fit(examples []domain.Example) (*ai.Pipeline, error) {
	patterns := lo.Map(examples, func(e domain.Example, _ int) string { return e.Pattern })
	tags := lo.Map(examples, func(e domain.Example, _ int) string { return e.Tag })
	return ai.FitPipeline(s.normalizer, patterns, tags, s.config.Vectorizer, s.config.Classifier)
}

func checkTrainable(dataset domain.Dataset) error {
	for _, intent := range dataset.Intents {
		if len(intent.Patterns) == 0 {
			return fmt.Errorf("%w: %q", errors.ErrNoPatterns, intent.Tag)
		}
	}
	if tags := lo.Uniq(dataset.Tags()); len(tags) < 2 {
		return fmt.Errorf("%w: got %d", errors.ErrNotEnoughClasses, len(tags))
	}
	return nil
}

// splitExamples holds out ratio of each tag's examples, chosen by a seeded
// shuffle. At least one example per tag always stays in the training part.
func splitExamples(examples []domain.Example, ratio float64, seed uint64) ([]domain.Example, []domain.Example) {
	rng := rand.New(rand.NewPCG(seed, seed))
	var train, heldOut []domain.Example
	byTag := lo.GroupBy(examples, func(e domain.Example) string { return e.Tag })
	for _, tag := range lo.Uniq(lo.Map(examples, func(e domain.Example, _ int) string { return e.Tag })) {
		group := append([]domain.Example(nil), byTag[tag]...)
		rng.Shuffle(len(group), func(i, j int) { group[i], group[j] = group[j], group[i] })
		n := min(int(float64(len(group))*ratio), len(group)-1)
		heldOut = append(heldOut, group[:n]...)
		train = append(train, group[n:]...)
	}
	return train, heldOut
}

// accuracy is the fraction of examples whose predicted tag is the expected one.
func accuracy(predictor IntentPredictor, examples []domain.Example) float64 {
	if len(examples) == 0 {
		return 0
	}
	correct := lo.CountBy(examples, func(e domain.Example) bool {
		return predictor.Predict(e.Pattern) == e.Tag
	})
	return float64(correct) / float64(len(examples))
}

package services

import (
	"context"
	"intent-lab/domain"
	"intent-lab/repositories"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IEvaluationService interface {
	Evaluate(ctx context.Context, dataset domain.Dataset) (domain.EvaluationReport, error)
	Record(report domain.EvaluationReport) ([]domain.Mismatch, error)
}

// EvaluationService predicts every known pattern and keeps a history of
// the reports to spot regressions between two trainings.
type EvaluationService struct {
	log        *slog.Logger
	predictor  IntentPredictor
	repository repositories.IEvaluationRepository
	modelRunID uuid.UUID
}

func NewEvaluationService(log *slog.Logger, predictor IntentPredictor,
	repository repositories.IEvaluationRepository, modelRunID uuid.UUID) *EvaluationService {
	return &EvaluationService{log: log, predictor: predictor, repository: repository, modelRunID: modelRunID}
}

func (s *EvaluationService) Evaluate(ctx context.Context, dataset domain.Dataset) (domain.EvaluationReport, error) {
	report := domain.EvaluationReport{
		ID:         uuid.New(),
		ModelRunID: s.modelRunID,
		At:         time.Now().UTC(),
	}
	for _, intent := range dataset.Intents {
		if err := ctx.Err(); err != nil {
			return domain.EvaluationReport{}, err
		}
		score := domain.TagScore{Tag: intent.Tag, Total: len(intent.Patterns)}
		for _, pattern := range intent.Patterns {
			predicted := s.predictor.Predict(pattern)
			if predicted == intent.Tag {
				score.Correct++
				continue
			}
			report.Mismatches = append(report.Mismatches, domain.Mismatch{
				Pattern:   pattern,
				Expected:  intent.Tag,
				Predicted: predicted,
			})
		}
		report.Correct += score.Correct
		report.Total += score.Total
		report.PerTag = append(report.PerTag, score)
	}
	s.log.Info("Evaluation finished",
		"accuracy", report.Accuracy(),
		"correct", report.Correct,
		"total", report.Total,
		"mismatches", len(report.Mismatches))
	return report, nil
}

// Record stores report and returns its regressions against the previously
// stored one. Without a previous report there is no regression.
func (s *EvaluationService) Record(report domain.EvaluationReport) ([]domain.Mismatch, error) {
	previous, err := s.repository.Latest()
	if err != nil {
		return nil, err
	}
	if err = s.repository.Store(report); err != nil {
		return nil, err
	}
	if previous == nil {
		return nil, nil
	}
	regressions := domain.Regressions(*previous, report)
	if len(regressions) > 0 {
		s.log.Warn("Regressions since previous evaluation",
			"previous_id", previous.ID,
			"count", len(regressions),
			"patterns", lo.Map(regressions, func(m domain.Mismatch, _ int) string { return m.Pattern }))
	}
	return regressions, nil
}

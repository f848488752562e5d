package services

import (
	"context"
	"fmt"
	"intent-lab/domain"
	"intent-lab/errors"
	"log/slog"

	"github.com/abadojack/whatlanggo"
	"github.com/samber/lo"
)

type IChatService interface {
	PredictIntent(text string) string
	Respond(text string) (response string, tag string)
}

// ChatService answers user input with a canned response of the predicted
// intent. It is built once at startup and shared; it never mutates its
// predictor or its response table.
type ChatService struct {
	log            *slog.Logger
	predictor      IntentPredictor
	selector       domain.Selector
	detectLanguage func(text string) whatlanggo.Info
}

// NewChatService fails with errors.ErrDatasetMismatch when the predictor
// knows a tag the response table does not, i.e. the model was trained on
// another dataset than the one loaded.
func NewChatService(log *slog.Logger, predictor IntentPredictor,
	table domain.ResponseTable, rand domain.Rand) (*ChatService, error) {
	unknown := lo.Filter(predictor.Classes(), func(tag string, _ int) bool {
		return !table.Has(tag)
	})
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: tags %v are missing from the dataset", errors.ErrDatasetMismatch, unknown)
	}
	return &ChatService{
		log:            log,
		predictor:      predictor,
		selector:       domain.NewSelector(table, rand),
		detectLanguage: whatlanggo.Detect,
	}, nil
}

func (s *ChatService) PredictIntent(text string) string {
	return s.predictor.Predict(text)
}

func (s *ChatService) Respond(text string) (string, string) {
	// Detection only feeds a debug line
	if s.log.Enabled(context.Background(), slog.LevelDebug) {
		if info := s.detectLanguage(text); info.IsReliable() && info.Lang != whatlanggo.Eng {
			s.log.Debug("Input does not look like English", "lang", info.Lang.Iso6391())
		}
	}
	tag := s.PredictIntent(text)
	response := s.selector.Select(tag)
	s.log.Debug("Intent predicted", "tag", tag)
	return response, tag
}

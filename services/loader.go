package services

import (
	"intent-lab/domain"
	"intent-lab/nlp"
	"intent-lab/storage"
	"log/slog"
)

// LoadChatService loads the dataset and the model artifact and wires the
// chat service. Any failure is fatal for the caller: no partial service is
// returned.
func LoadChatService(log *slog.Logger, datasetPath, artifactPath string,
	rand domain.Rand) (*ChatService, domain.Dataset, error) {
	dataset, err := storage.LoadDataset(datasetPath)
	if err != nil {
		return nil, domain.Dataset{}, err
	}
	normalizer, err := nlp.NewNormalizer()
	if err != nil {
		return nil, domain.Dataset{}, err
	}
	pipeline, err := storage.NewArtifactStore(artifactPath, log).Load(normalizer)
	if err != nil {
		return nil, domain.Dataset{}, err
	}
	service, err := NewChatService(log, pipeline, domain.NewResponseTable(dataset.Intents), rand)
	if err != nil {
		return nil, domain.Dataset{}, err
	}
	log.Info("Chat service ready",
		"model_run_id", pipeline.Metadata().RunID,
		"intents", len(dataset.Intents))
	return service, dataset, nil
}

package storage

import (
	"encoding/json"
	"fmt"
	"intent-lab/ai"
	"intent-lab/errors"
	"intent-lab/nlp"
	"io"
	"log/slog"
	"os"

	"github.com/klauspost/compress/zstd"
)

// ArtifactStore persists fitted pipelines as a single zstd-compressed
// JSON document.
type ArtifactStore struct {
	path string
	log  *slog.Logger
}

func NewArtifactStore(path string, log *slog.Logger) ArtifactStore {
	return ArtifactStore{path: path, log: log}
}

func (s ArtifactStore) Path() string {
	return s.path
}

// Save atomically replaces the artifact with pipeline.
func (s ArtifactStore) Save(pipeline *ai.Pipeline) error {
	state := pipeline.State()
	err := writeFileAtomic(s.path, func(w io.Writer) error {
		encoder, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		if err = json.NewEncoder(encoder).Encode(state); err != nil {
			_ = encoder.Close()
			return err
		}
		return encoder.Close()
	})
	if err != nil {
		return fmt.Errorf("cannot save model artifact %s: %w", s.path, err)
	}
	s.log.Info("Model artifact saved",
		"path", s.path,
		"run_id", state.Metadata.RunID,
		"features", len(state.Vectorizer.Terms),
		"classes", len(state.Classifier.Classes))
	return nil
}

// Load reads the artifact back. A missing or undecodable file wraps
// errors.ErrArtifactLoad; an artifact from another format version wraps
// errors.ErrArtifactVersion.
func (s ArtifactStore) Load(normalizer *nlp.Normalizer) (*ai.Pipeline, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrArtifactLoad, err)
	}
	defer f.Close()

	decoder, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrArtifactLoad, err)
	}
	defer decoder.Close()

	var state ai.PipelineState
	if err = json.NewDecoder(decoder).Decode(&state); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrArtifactLoad, s.path, err)
	}
	pipeline, err := ai.RestorePipeline(normalizer, state)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errors.ErrArtifactLoad, s.path, err)
	}
	s.log.Debug("Model artifact loaded", "path", s.path, "run_id", state.Metadata.RunID)
	return pipeline, nil
}

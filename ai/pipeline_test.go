package ai

import (
	"intent-lab/errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	trainingPatterns = []string{
		"What courses do you offer?",
		"Which programs can I study?",
		"Tell me about the courses",
		"What are the fees?",
		"How much is the tuition fee?",
		"What is the fee structure?",
		"How do I apply?",
		"What is the admission process?",
		"How can I get admission?",
	}
	trainingLabels = []string{
		"courses", "courses", "courses",
		"fees", "fees", "fees",
		"admissions", "admissions", "admissions",
	}
)

func fitTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	pipeline, err := FitPipeline(newTestNormalizer(t), trainingPatterns, trainingLabels,
		DefaultVectorizerConfig(), DefaultClassifierConfig())
	require.NoError(t, err)
	return pipeline
}

func TestPipeline_Predict_Reproduces_Training_Labels(t *testing.T) {
	req := require.New(t)
	pipeline := fitTestPipeline(t)

	req.Equal("courses", pipeline.Predict("What courses do you offer?"))
	req.Equal("fees", pipeline.Predict("What are the fees?"))
	req.Equal("admissions", pipeline.Predict("How do I apply?"))
	for i, pattern := range trainingPatterns {
		req.Equal(trainingLabels[i], pipeline.Predict(pattern), "pattern %q", pattern)
	}
}

func TestPipeline_Predict_Is_Deterministic(t *testing.T) {
	req := require.New(t)
	pipeline := fitTestPipeline(t)
	probes := []string{"", "fees please", "courses", "I want to apply", "???"}

	expected := make([]string, len(probes))
	for i, probe := range probes {
		expected[i] = pipeline.Predict(probe)
	}
	for round := 0; round < 20; round++ {
		for i := len(probes) - 1; i >= 0; i-- {
			req.Equal(expected[i], pipeline.Predict(probes[i]))
		}
	}

	other := fitTestPipeline(t)
	for i, probe := range probes {
		req.Equal(expected[i], other.Predict(probe))
	}
}

func TestPipeline_Predict_Empty_Input(t *testing.T) {
	req := require.New(t)
	pipeline := fitTestPipeline(t)
	req.Contains(pipeline.Classes(), pipeline.Predict(""))
}

func TestPipeline_State_Round_Trip(t *testing.T) {
	req := require.New(t)
	metadata := Metadata{RunID: uuid.New(), TrainedAt: time.Now().UTC(), Examples: len(trainingPatterns), TrainingAccuracy: 1}
	pipeline := fitTestPipeline(t).WithMetadata(metadata)

	restored, err := RestorePipeline(newTestNormalizer(t), pipeline.State())
	req.NoError(err)
	req.Equal(metadata, restored.Metadata())
	req.Equal(pipeline.Classes(), restored.Classes())
	req.Equal(pipeline.Vectorizer().Vocabulary(), restored.Vectorizer().Vocabulary())
	for _, probe := range append(trainingPatterns, "", "hostel", "what about scholarships") {
		req.Equal(pipeline.Predict(probe), restored.Predict(probe))
		req.Equal(pipeline.Decision(probe), restored.Decision(probe))
	}
}

func TestRestorePipeline_Rejects_Bad_State(t *testing.T) {
	req := require.New(t)
	normalizer := newTestNormalizer(t)
	valid := fitTestPipeline(t).State()

	wrongVersion := valid
	wrongVersion.Version = FormatVersion + 1
	_, err := RestorePipeline(normalizer, wrongVersion)
	req.ErrorIs(err, errors.ErrArtifactVersion)

	missingIDF := fitTestPipeline(t).State()
	missingIDF.Vectorizer.IDF = missingIDF.Vectorizer.IDF[:1]
	_, err = RestorePipeline(normalizer, missingIDF)
	req.ErrorIs(err, errors.ErrArtifactCorrupt)

	shortRow := fitTestPipeline(t).State()
	shortRow.Classifier.Weights[1] = shortRow.Classifier.Weights[1][:2]
	_, err = RestorePipeline(normalizer, shortRow)
	req.ErrorIs(err, errors.ErrArtifactCorrupt)
}

func TestFitPipeline_Fails_On_Single_Tag(t *testing.T) {
	req := require.New(t)
	_, err := FitPipeline(newTestNormalizer(t), []string{"hi", "hello"}, []string{"greeting", "greeting"},
		DefaultVectorizerConfig(), DefaultClassifierConfig())
	req.ErrorIs(err, errors.ErrNotEnoughClasses)
}

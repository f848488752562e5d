package ai

import (
	"intent-lab/errors"
	"intent-lab/nlp"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestNormalizer(t *testing.T) *nlp.Normalizer {
	t.Helper()
	normalizer, err := nlp.NewNormalizer()
	require.NoError(t, err)
	return normalizer
}

func TestFitVectorizer_Vocabulary_And_IDF(t *testing.T) {
	req := require.New(t)
	corpus := []string{"What courses do you offer?", "What are the fees?"}

	vectorizer, err := FitVectorizer(newTestNormalizer(t), corpus, DefaultVectorizerConfig())
	req.NoError(err)

	// 12 n-grams for the first pattern, 9 for the second, "what" is shared.
	req.Equal(20, vectorizer.Dimension())
	vocabulary := vectorizer.Vocabulary()
	req.IsNonDecreasing(vocabulary)
	req.Contains(vocabulary, "course do you")
	req.Contains(vocabulary, "the fee")
	req.NotContains(vocabulary, "fees")

	what := vectorizer.index["what"]
	fee := vectorizer.index["fee"]
	req.InDelta(1.0, vectorizer.idf[what], 1e-12)
	req.InDelta(math.Log(3.0/2.0)+1, vectorizer.idf[fee], 1e-12)
}

func TestFitVectorizer_MaxFeatures_Keeps_Most_Frequent(t *testing.T) {
	req := require.New(t)
	corpus := []string{"What courses do you offer?", "What are the fees?"}
	config := VectorizerConfig{MinN: 1, MaxN: 3, MaxFeatures: 3}

	vectorizer, err := FitVectorizer(newTestNormalizer(t), corpus, config)
	req.NoError(err)
	req.Equal([]string{"are", "are the", "what"}, vectorizer.Vocabulary())
}

func TestFitVectorizer_Errors(t *testing.T) {
	req := require.New(t)
	normalizer := newTestNormalizer(t)

	_, err := FitVectorizer(normalizer, nil, DefaultVectorizerConfig())
	req.ErrorIs(err, errors.ErrEmptyTrainingSet)

	_, err = FitVectorizer(normalizer, []string{"?!", ""}, DefaultVectorizerConfig())
	req.ErrorIs(err, errors.ErrEmptyVocabulary)

	_, err = FitVectorizer(normalizer, []string{"hello"}, VectorizerConfig{MinN: 2, MaxN: 1, MaxFeatures: 10})
	req.Error(err)
}

func TestVectorizer_Transform(t *testing.T) {
	req := require.New(t)
	corpus := []string{"What courses do you offer?", "What are the fees?", "How do I apply?"}
	vectorizer, err := FitVectorizer(newTestNormalizer(t), corpus, DefaultVectorizerConfig())
	req.NoError(err)

	t.Run("Known text is L2 normalized", func(t *testing.T) {
		vec := vectorizer.Transform("What are the fees?")
		req.Equal(9, vec.Len())
		req.InDelta(1.0, vec.SquaredNorm(), 1e-12)
		req.IsIncreasing(vec.Indices)
	})

	t.Run("Unknown n-grams are ignored", func(t *testing.T) {
		vec := vectorizer.Transform("What about the hostel?")
		req.Equal(2, vec.Len())
	})

	t.Run("Empty and unknown text give the zero vector", func(t *testing.T) {
		req.Zero(vectorizer.Transform("").Len())
		req.Zero(vectorizer.Transform("zebra quantum").Len())
	})

	t.Run("Transform does not grow the vocabulary", func(t *testing.T) {
		before := vectorizer.Dimension()
		vectorizer.Transform("brand new words appear here")
		req.Equal(before, vectorizer.Dimension())
	})
}

func TestNgrams(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"a", "b", "c", "a b", "b c", "a b c"}, ngrams([]string{"a", "b", "c"}, 1, 3))
	req.Equal([]string{"a"}, ngrams([]string{"a"}, 1, 3))
	req.Empty(ngrams(nil, 1, 3))
}

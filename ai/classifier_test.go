package ai

import (
	"intent-lab/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func oneHot(idx int) SparseVector {
	return SparseVector{Indices: []int{idx}, Values: []float64{1}}
}

func TestFitClassifier_Separates_Classes(t *testing.T) {
	req := require.New(t)
	x := []SparseVector{oneHot(0), oneHot(0), oneHot(1), oneHot(1), oneHot(2)}
	labels := []string{"fees", "fees", "courses", "courses", "hostel"}

	classifier, err := FitClassifier(x, labels, 3, DefaultClassifierConfig())
	req.NoError(err)

	req.Equal([]string{"courses", "fees", "hostel"}, classifier.Classes())
	req.Equal("fees", classifier.Predict(oneHot(0)))
	req.Equal("courses", classifier.Predict(oneHot(1)))
	req.Equal("hostel", classifier.Predict(oneHot(2)))

	scores := classifier.Decision(oneHot(1))
	req.Len(scores, 3)
	req.Greater(scores[0], scores[1])
	req.Greater(scores[0], scores[2])
}

func TestFitClassifier_Is_Deterministic(t *testing.T) {
	req := require.New(t)
	x := []SparseVector{
		{Indices: []int{0, 1}, Values: []float64{0.6, 0.8}},
		{Indices: []int{1, 2}, Values: []float64{0.8, 0.6}},
		{Indices: []int{0, 2}, Values: []float64{0.8, 0.6}},
		{Indices: []int{2}, Values: []float64{1}},
	}
	labels := []string{"a", "b", "a", "b"}

	first, err := FitClassifier(x, labels, 3, DefaultClassifierConfig())
	req.NoError(err)
	second, err := FitClassifier(x, labels, 3, DefaultClassifierConfig())
	req.NoError(err)
	req.Equal(first.weights, second.weights)
}

func TestFitClassifier_Errors(t *testing.T) {
	req := require.New(t)

	_, err := FitClassifier(nil, nil, 2, DefaultClassifierConfig())
	req.ErrorIs(err, errors.ErrEmptyTrainingSet)

	_, err = FitClassifier([]SparseVector{oneHot(0)}, []string{"a", "b"}, 2, DefaultClassifierConfig())
	req.ErrorIs(err, errors.ErrLabelMismatch)

	_, err = FitClassifier([]SparseVector{oneHot(0), oneHot(1)}, []string{"a", "a"}, 2, DefaultClassifierConfig())
	req.ErrorIs(err, errors.ErrNotEnoughClasses)
}

func TestClassifier_Predict_Zero_Vector(t *testing.T) {
	req := require.New(t)
	x := []SparseVector{oneHot(0), oneHot(0), oneHot(0), oneHot(1)}
	labels := []string{"major", "major", "major", "minor"}
	classifier, err := FitClassifier(x, labels, 2, DefaultClassifierConfig())
	req.NoError(err)

	req.NotPanics(func() {
		req.Contains(classifier.Classes(), classifier.Predict(SparseVector{}))
	})
}

package ai

import (
	"intent-lab/errors"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/samber/lo"
)

// ClassifierConfig holds the fixed hyperparameters of the linear SVM.
type ClassifierConfig struct {
	C         float64 `json:"c"`
	MaxIter   int     `json:"max_iter"`
	Tolerance float64 `json:"tolerance"`
	Seed      uint64  `json:"seed"`
}

func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{C: 1.0, MaxIter: 3000, Tolerance: 1e-4, Seed: 42}
}

// Classifier is a one-vs-rest linear SVM. Each row of weights separates one
// class from the others; its last column is the intercept.
type Classifier struct {
	config  ClassifierConfig
	classes []string
	weights [][]float64
	dim     int
}

// FitClassifier trains one L2-regularized squared-hinge separator per class
// with dual coordinate descent. Coordinates are visited in an order drawn
// from a PCG source seeded with config.Seed, so training is deterministic.
func FitClassifier(x []SparseVector, labels []string, dim int, config ClassifierConfig) (*Classifier, error) {
	if len(x) == 0 {
		return nil, errors.ErrEmptyTrainingSet
	}
	if len(x) != len(labels) {
		return nil, errors.ErrLabelMismatch
	}
	classes := lo.Uniq(labels)
	slices.Sort(classes)
	if len(classes) < 2 {
		return nil, errors.ErrNotEnoughClasses
	}

	weights := make([][]float64, len(classes))
	for k, class := range classes {
		y := lo.Map(labels, func(label string, _ int) float64 {
			if label == class {
				return 1
			}
			return -1
		})
		weights[k] = fitBinary(x, y, dim, config)
	}
	return &Classifier{config: config, classes: classes, weights: weights, dim: dim}, nil
}

// fitBinary solves the dual of the L2-loss SVM. The bias is learned as the
// weight of an extra feature fixed to 1.
func fitBinary(x []SparseVector, y []float64, dim int, config ClassifierConfig) []float64 {
	w := make([]float64, dim+1)
	alpha := make([]float64, len(x))
	diag := 0.5 / config.C

	qd := make([]float64, len(x))
	for i, xi := range x {
		qd[i] = diag + xi.SquaredNorm() + 1
	}

	order := make([]int, len(x))
	for i := range order {
		order[i] = i
	}
	rng := rand.New(rand.NewPCG(config.Seed, config.Seed))

	for iter := 0; iter < config.MaxIter; iter++ {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		maxPG, minPG := math.Inf(-1), math.Inf(1)
		for _, i := range order {
			g := y[i]*(x[i].Dot(w[:dim])+w[dim]) - 1 + diag*alpha[i]
			pg := g
			if alpha[i] == 0 && g > 0 {
				pg = 0
			}
			maxPG = max(maxPG, pg)
			minPG = min(minPG, pg)
			if math.Abs(pg) <= 1e-12 {
				continue
			}
			previous := alpha[i]
			alpha[i] = max(alpha[i]-g/qd[i], 0)
			delta := (alpha[i] - previous) * y[i]
			x[i].AddTo(w[:dim], delta)
			w[dim] += delta
		}
		if maxPG-minPG <= config.Tolerance {
			break
		}
	}
	return w
}

// Decision returns the margin of every class, in Classes order.
func (c *Classifier) Decision(x SparseVector) []float64 {
	scores := make([]float64, len(c.classes))
	for k, w := range c.weights {
		scores[k] = x.Dot(w[:c.dim]) + w[c.dim]
	}
	return scores
}

// Predict returns the class with the highest margin. Ties go to the class
// that sorts first.
func (c *Classifier) Predict(x SparseVector) string {
	scores := c.Decision(x)
	best := 0
	for k := 1; k < len(scores); k++ {
		if scores[k] > scores[best] {
			best = k
		}
	}
	return c.classes[best]
}

func (c *Classifier) Classes() []string {
	return slices.Clone(c.classes)
}

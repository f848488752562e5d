package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluationReport_Accuracy(t *testing.T) {
	req := require.New(t)
	req.Zero(EvaluationReport{}.Accuracy())
	req.InDelta(75.0, EvaluationReport{Correct: 3, Total: 4}.Accuracy(), 1e-9)
}

func TestRegressions(t *testing.T) {
	req := require.New(t)
	previous := EvaluationReport{Mismatches: []Mismatch{
		{Pattern: "Hi", Expected: "greeting", Predicted: "thanks"},
	}}
	current := EvaluationReport{Mismatches: []Mismatch{
		{Pattern: "Hi", Expected: "greeting", Predicted: "goodbye"},
		{Pattern: "Fee details", Expected: "fees", Predicted: "courses"},
	}}

	req.Equal([]Mismatch{{Pattern: "Fee details", Expected: "fees", Predicted: "courses"}}, Regressions(previous, current))
	req.Empty(Regressions(current, previous))
}

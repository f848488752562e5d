package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Mismatch is a pattern whose predicted tag differs from its expected tag.
type Mismatch struct {
	Pattern   string `json:"pattern"`
	Expected  string `json:"expected"`
	Predicted string `json:"predicted"`
}

// TagScore counts the correctly predicted patterns of a single tag.
type TagScore struct {
	Tag     string `json:"tag"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}

// EvaluationReport is the outcome of predicting every dataset pattern
// with a trained model. It measures fit on known patterns, not
// generalization.
type EvaluationReport struct {
	ID         uuid.UUID  `json:"id"`
	ModelRunID uuid.UUID  `json:"model_run_id"`
	At         time.Time  `json:"at"`
	Correct    int        `json:"correct"`
	Total      int        `json:"total"`
	PerTag     []TagScore `json:"per_tag"`
	Mismatches []Mismatch `json:"mismatches"`
}

// Accuracy returns the percentage of correctly predicted patterns.
func (r EvaluationReport) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total) * 100
}

// Regressions lists the mismatches of current that were not already
// mismatches in previous.
func Regressions(previous, current EvaluationReport) []Mismatch {
	failedBefore := lo.SliceToMap(previous.Mismatches, func(m Mismatch) (string, struct{}) {
		return m.Pattern + "\x00" + m.Expected, struct{}{}
	})
	return lo.Filter(current.Mismatches, func(m Mismatch, _ int) bool {
		_, ok := failedBefore[m.Pattern+"\x00"+m.Expected]
		return !ok
	})
}

// Package domain contains the core concepts of the intent chatbot.
// This file defines intents, the dataset they come from and the
// training examples derived from them.
package domain

import (
	"github.com/samber/lo"
)

// Intent is a labeled category of user request.
type Intent struct {
	Tag       string   `json:"tag" validate:"required"`
	Patterns  []string `json:"patterns" validate:"required,dive,required"`
	Responses []string `json:"responses" validate:"required,dive,required"`
}

// Dataset is the declarative source backing both training and inference.
type Dataset struct {
	Intents []Intent `json:"intents" validate:"required,min=1,unique=Tag,dive"`
}

// Example is a single (pattern, tag) pair used for training and evaluation.
type Example struct {
	Pattern string
	Tag     string
}

// Examples flattens every pattern of every intent against its tag,
// preserving dataset order.
func (d Dataset) Examples() []Example {
	return lo.FlatMap(d.Intents, func(intent Intent, _ int) []Example {
		return lo.Map(intent.Patterns, func(pattern string, _ int) Example {
			return Example{Pattern: pattern, Tag: intent.Tag}
		})
	})
}

func (d Dataset) Tags() []string {
	return lo.Map(d.Intents, func(intent Intent, _ int) string { return intent.Tag })
}

package domain

import (
	"fmt"
	"intent-lab/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateDataset checks the dataset schema: every intent needs a tag,
// a patterns list and a responses list, and tags must be unique.
// Empty lists are accepted here: an intent without patterns is rejected
// by training, and one without responses degrades to the fallback reply.
func ValidateDataset(dataset Dataset) error {
	if err := validate.Struct(dataset); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidDataset, err)
	}
	return nil
}

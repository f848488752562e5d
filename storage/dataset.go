package storage

import (
	"encoding/json"
	"fmt"
	"intent-lab/domain"
	"intent-lab/errors"
	"os"
)

// LoadDataset reads and validates the intents file at path.
// Unknown fields are rejected so that a schema drift fails at load time.
func LoadDataset(path string) (domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("%w: %v", errors.ErrDatasetLoad, err)
	}
	defer f.Close()

	var dataset domain.Dataset
	decoder := json.NewDecoder(f)
	decoder.DisallowUnknownFields()
	if err = decoder.Decode(&dataset); err != nil {
		return domain.Dataset{}, fmt.Errorf("%w: %s: %v", errors.ErrDatasetLoad, path, err)
	}
	if err = domain.ValidateDataset(dataset); err != nil {
		return domain.Dataset{}, fmt.Errorf("%w: %s: %w", errors.ErrDatasetLoad, path, err)
	}
	return dataset, nil
}

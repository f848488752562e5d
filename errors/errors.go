package errors

import "fmt"

var (
	ErrDatasetLoad      = fmt.Errorf("dataset cannot be loaded")
	ErrInvalidDataset   = fmt.Errorf("dataset is invalid")
	ErrNoPatterns       = fmt.Errorf("intent has no pattern")
	ErrEmptyTrainingSet = fmt.Errorf("no training example")
	ErrNotEnoughClasses = fmt.Errorf("at least 2 distinct tags are required")
	ErrLabelMismatch    = fmt.Errorf("number of labels does not match number of examples")
	ErrEmptyVocabulary  = fmt.Errorf("corpus produced an empty vocabulary")
	ErrArtifactLoad     = fmt.Errorf("model artifact cannot be loaded")
	ErrArtifactVersion  = fmt.Errorf("model artifact version is not supported")
	ErrArtifactCorrupt  = fmt.Errorf("model artifact is corrupt")
	ErrDatasetMismatch  = fmt.Errorf("model artifact was trained on a different dataset")
)

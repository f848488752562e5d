package main

import (
	"fmt"
	ierrors "intent-lab/errors"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/require"
)

func TestStartupError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{
			name:    "Invalid dataset",
			err:     fmt.Errorf("%w: %w", ierrors.ErrDatasetLoad, ierrors.ErrInvalidDataset),
			message: "the intents dataset is invalid",
		},
		{
			name:    "Unreadable dataset",
			err:     fmt.Errorf("%w: no such file", ierrors.ErrDatasetLoad),
			message: "the intents dataset cannot be read",
		},
		{
			name:    "Model trained on another dataset",
			err:     fmt.Errorf("%w: tags [x]", ierrors.ErrDatasetMismatch),
			message: "trained on another dataset",
		},
		{
			name:    "Unsupported model format",
			err:     fmt.Errorf("%w: %w", ierrors.ErrArtifactLoad, ierrors.ErrArtifactVersion),
			message: "unsupported format",
		},
		{
			name:    "Missing model",
			err:     fmt.Errorf("%w: no such file", ierrors.ErrArtifactLoad),
			message: "run the training command first",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			err := startupError(tt.err)
			req.ErrorIs(err, tt.err)
			req.Contains(err.Error(), tt.message)
		})
	}
}

func TestIsExit(t *testing.T) {
	req := require.New(t)
	req.True(isExit(promptui.ErrInterrupt))
	req.True(isExit(promptui.ErrEOF))
	req.False(isExit(nil))
	req.False(isExit(fmt.Errorf("/dev/tty: no such device")))
}

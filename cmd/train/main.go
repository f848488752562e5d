package main

import (
	"context"
	"fmt"
	"intent-lab/internal"
	"intent-lab/nlp"
	"intent-lab/services"
	"intent-lab/storage"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run trains the model on the whole dataset and replaces the artifact.
// The artifact is only written once training succeeded.
func run() error {
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dataset, err := storage.LoadDataset(config.DatasetPath)
	if err != nil {
		return err
	}
	log.Info("Dataset loaded", "path", config.DatasetPath,
		"intents", len(dataset.Intents), "patterns", len(dataset.Examples()))

	normalizer, err := nlp.NewNormalizer()
	if err != nil {
		return fmt.Errorf("lexicon loading failed: %w", err)
	}
	store := storage.NewArtifactStore(config.ModelPath, log)
	trainer := services.NewTrainingService(log, normalizer, store, config.TrainingConfig())

	result, err := trainer.Train(ctx, dataset)
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	fmt.Printf("Model accuracy (on training data): %.2f%%\n", result.TrainingAccuracy*100)
	fmt.Println("This figure is measured on the patterns the model was trained on and does not estimate generalization.")
	if result.HeldOutAccuracy != nil {
		fmt.Printf("Held-out accuracy (%d patterns): %.2f%%\n", result.HeldOut, *result.HeldOutAccuracy*100)
	}
	fmt.Printf("Model saved to %s (run %s)\n", store.Path(), result.Pipeline.Metadata().RunID)
	return nil
}

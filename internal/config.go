package internal

import (
	"intent-lab/ai"
	"intent-lab/services"
)

type Config struct {
	DatasetPath     string  `env:"DATASET_PATH,default=data/intents.json"`
	ModelPath       string  `env:"MODEL_PATH,default=data/chatbot_model.zst"`
	LogLevel        string  `env:"LOG_LEVEL,default=INFO"`
	ValidationRatio float64 `env:"VALIDATION_RATIO,default=0"`
	MaxFeatures     int     `env:"MAX_FEATURES,default=5000"`
	MaxIterations   int     `env:"MAX_ITERATIONS,default=3000"`
}

// TrainingConfig returns the training hyperparameters. The n-gram range,
// the regularization strength and the seed are not configurable.
func (c Config) TrainingConfig() services.TrainingConfig {
	config := services.DefaultTrainingConfig()
	config.ValidationRatio = c.ValidationRatio
	config.Vectorizer = ai.VectorizerConfig{
		MinN:        config.Vectorizer.MinN,
		MaxN:        config.Vectorizer.MaxN,
		MaxFeatures: c.MaxFeatures,
	}
	config.Classifier.MaxIter = c.MaxIterations
	return config
}

package main

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DatasetPath string `envconfig:"DATASET_PATH" default:"data/intents.json"`
	ModelPath   string `envconfig:"MODEL_PATH" default:"data/chatbot_model.zst"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"INFO"`
	// BADGER_FILEPATH stores the history of evaluation reports
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" default:"data/evaluations"`
	// EVAL_COLOURS enables colorized output
	Colours bool `envconfig:"EVAL_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/specialistvlad/cardparse/internal/engine"
)

// Config holds all the necessary configuration for an App instance to run.
// Fields with env tags take their defaults from the environment; the CLI
// overrides them with flags.
type Config struct {
	CardPath  string // card file or directory
	ListTypes bool   // print the registered element types instead of parsing

	LogFormat     string `env:"CARDPARSE_LOG_FORMAT" envDefault:"text"`
	LogLevel      string `env:"CARDPARSE_LOG_LEVEL" envDefault:"info"`
	WorkerCount   int    `env:"CARDPARSE_WORKERS" envDefault:"4"`
	UnknownPolicy string `env:"CARDPARSE_UNKNOWN" envDefault:"drop"`
	Output        string `env:"CARDPARSE_OUTPUT" envDefault:"json"`
}

// ConfigFromEnv returns a Config populated from environment defaults.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.CardPath == "" && !cfg.ListTypes {
		return nil, errors.New("CardPath is a required configuration field and cannot be empty")
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	switch cfg.Output {
	case "json", "yaml":
	default:
		return nil, fmt.Errorf("invalid output %q: must be 'json' or 'yaml'", cfg.Output)
	}

	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("invalid workers %d: must be at least 1", cfg.WorkerCount)
	}

	if _, err := engine.ParseUnknownPolicy(cfg.UnknownPolicy); err != nil {
		return nil, err
	}

	return &cfg, nil
}

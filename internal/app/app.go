// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/cardparse/internal/engine"
	"github.com/specialistvlad/cardparse/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	engine   *engine.Engine
}

// NewApp is the constructor for the main application. Parsed cards are
// written to outW and logs to logW. The registry holds the built-in parsers
// plus modules, which may override them. cfg must come from NewConfig.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	policy, err := engine.ParseUnknownPolicy(cfg.UnknownPolicy)
	if err != nil {
		return nil, err
	}

	reg := DefaultRegistry(logger, modules...)
	logger.Debug("Element parsers registered.", "count", reg.Len(), "types", reg.Types())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		engine:   engine.New(reg, engine.WithUnknownPolicy(policy)),
	}, nil
}

// Registry returns the application's registry. Extension code may register
// further parsers on it before Run is called.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

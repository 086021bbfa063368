// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import "log/slog"

// Module is implemented by anything that contributes element parsers during
// bootstrap.
type Module interface {
	Register(r *Registry)
}

// ModuleFunc adapts a function to Module.
type ModuleFunc func(r *Registry)

// Register calls f(r).
func (f ModuleFunc) Register(r *Registry) { f(r) }

// NewDefault builds a registry by running modules in order, so a later module
// overrides types registered by an earlier one. It never returns nil: with no
// modules the result is a valid, empty registry the caller may populate.
//
// Every call builds a fresh registry. Calls with the same modules yield
// registries with identical contents that share no state with each other.
func NewDefault(logger *slog.Logger, modules ...Module) *Registry {
	r := New(logger)
	for _, m := range modules {
		if m == nil {
			continue
		}
		m.Register(r)
	}
	r.logger.Debug("Default registry bootstrapped.", "modules", len(modules), "types", r.Len())
	return r
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"log/slog"

	"github.com/specialistvlad/cardparse/internal/registry"
	"github.com/specialistvlad/cardparse/modules/container"
	"github.com/specialistvlad/cardparse/modules/factset"
	"github.com/specialistvlad/cardparse/modules/image"
	"github.com/specialistvlad/cardparse/modules/textblock"
)

// CoreModules is the definitive list of element parsers compiled into the
// cardparse binary.
var CoreModules = []registry.Module{
	textblock.Module{},
	image.Module{},
	container.Module{},
	factset.Module{},
}

// DefaultRegistry returns a fresh registry holding the built-in parsers
// followed by extra, so extra modules can add types or override built-ins.
func DefaultRegistry(logger *slog.Logger, extra ...registry.Module) *registry.Registry {
	modules := make([]registry.Module, 0, len(CoreModules)+len(extra))
	modules = append(modules, CoreModules...)
	modules = append(modules, extra...)
	return registry.NewDefault(logger, modules...)
}

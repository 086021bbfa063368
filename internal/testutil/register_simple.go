// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testutil

import (
	"github.com/specialistvlad/cardparse/internal/card"
	"github.com/specialistvlad/cardparse/internal/registry"
)

// SimpleModule is a test helper for bootstrapping a registry with a fixed
// set of parsers.
type SimpleModule struct {
	Parsers map[string]card.ElementParser
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	for typ, p := range m.Parsers {
		r.MustSet(typ, p)
	}
}

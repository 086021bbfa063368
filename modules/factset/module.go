// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package factset provides the built-in FactSet element parser.
package factset

import (
	"context"

	"github.com/specialistvlad/cardparse/internal/card"
	"github.com/specialistvlad/cardparse/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// TypeName is the type identifier the module registers.
const TypeName = "FactSet"

// Fact is one title/value pair.
type Fact struct {
	Title string `cty:"title" json:"title"`
	Value string `cty:"value" json:"value"`
}

// FactSet is a list of facts.
type FactSet struct {
	card.Base
	Facts []Fact `json:"facts"`
}

// Parser parses FactSet elements.
type Parser struct{}

// Parse implements card.ElementParser.
func (p *Parser) Parse(_ context.Context, pc card.ParseContext, raw cty.Value) (card.Element, error) {
	fs := &FactSet{Base: card.NewBase(pc.Type(), raw)}
	if err := card.DecodeFields(raw, card.Field{Name: "facts", Target: &fs.Facts, Required: true}); err != nil {
		return nil, err
	}
	return fs, nil
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register installs the FactSet parser.
func (Module) Register(r *registry.Registry) {
	r.MustSet(TypeName, &Parser{})
}

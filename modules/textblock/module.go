// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package textblock provides the built-in TextBlock element parser.
package textblock

import (
	"context"

	"github.com/specialistvlad/cardparse/internal/card"
	"github.com/specialistvlad/cardparse/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// TypeName is the type identifier the module registers.
const TypeName = "TextBlock"

// TextBlock is a run of text.
type TextBlock struct {
	card.Base
	Text     string `json:"text"`
	Wrap     bool   `json:"wrap,omitempty"`
	Size     string `json:"size,omitempty"`
	Weight   string `json:"weight,omitempty"`
	MaxLines int    `json:"maxLines,omitempty"`
}

// Parser parses TextBlock elements.
type Parser struct{}

// Parse implements card.ElementParser.
func (p *Parser) Parse(_ context.Context, pc card.ParseContext, raw cty.Value) (card.Element, error) {
	tb := &TextBlock{Base: card.NewBase(pc.Type(), raw)}
	err := card.DecodeFields(raw,
		card.Field{Name: "text", Target: &tb.Text, Required: true},
		card.Field{Name: "wrap", Target: &tb.Wrap},
		card.Field{Name: "size", Target: &tb.Size},
		card.Field{Name: "weight", Target: &tb.Weight},
		card.Field{Name: "maxLines", Target: &tb.MaxLines},
	)
	if err != nil {
		return nil, err
	}
	return tb, nil
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register installs the TextBlock parser.
func (Module) Register(r *registry.Registry) {
	r.MustSet(TypeName, &Parser{})
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package image provides the built-in Image element parser.
package image

import (
	"context"
	"errors"

	"github.com/specialistvlad/cardparse/internal/card"
	"github.com/specialistvlad/cardparse/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// TypeName is the type identifier the module registers.
const TypeName = "Image"

// Image references a picture by URL.
type Image struct {
	card.Base
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
	Size    string `json:"size,omitempty"`
}

// Parser parses Image elements.
type Parser struct{}

// Parse implements card.ElementParser.
func (p *Parser) Parse(_ context.Context, pc card.ParseContext, raw cty.Value) (card.Element, error) {
	img := &Image{Base: card.NewBase(pc.Type(), raw)}
	err := card.DecodeFields(raw,
		card.Field{Name: "url", Target: &img.URL, Required: true},
		card.Field{Name: "altText", Target: &img.AltText},
		card.Field{Name: "size", Target: &img.Size},
	)
	if err != nil {
		return nil, err
	}
	if img.URL == "" {
		return nil, errors.New("url must not be empty")
	}
	return img, nil
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register installs the Image parser.
func (Module) Register(r *registry.Registry) {
	r.MustSet(TypeName, &Parser{})
}

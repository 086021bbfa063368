// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package container provides the built-in Container element parser. A
// container's items are parsed through the same registry as the container
// itself, so custom and overridden types work at any depth.
package container

import (
	"context"

	"github.com/specialistvlad/cardparse/internal/card"
	"github.com/specialistvlad/cardparse/internal/ctxlog"
	"github.com/specialistvlad/cardparse/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// TypeName is the type identifier the module registers.
const TypeName = "Container"

// Container groups child elements.
type Container struct {
	card.Base
	Style string         `json:"style,omitempty"`
	Items []card.Element `json:"items"`
}

// Parser parses Container elements.
type Parser struct{}

// Parse implements card.ElementParser.
func (p *Parser) Parse(ctx context.Context, pc card.ParseContext, raw cty.Value) (card.Element, error) {
	c := &Container{Base: card.NewBase(pc.Type(), raw)}
	if err := card.DecodeAttr(raw, "style", &c.Style); err != nil {
		return nil, err
	}

	items, err := pc.ParseChildren(ctx, raw, "items")
	if err != nil {
		return nil, err
	}
	c.Items = items

	ctxlog.FromContext(ctx).Debug("Parsed container.", "path", pc.Path(), "items", len(items))
	return c, nil
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register installs the Container parser.
func (Module) Register(r *registry.Registry) {
	r.MustSet(TypeName, &Parser{})
}

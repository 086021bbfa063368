// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package card

import (
	"context"

	"github.com/zclconf/go-cty/cty"
)

// ElementParser converts one raw element node into its typed representation.
// Implementations must be safe for concurrent use: a single parser handle is
// shared by every document parsed with the registry that holds it.
//
// A parser may return a nil Element with a nil error to drop the element.
type ElementParser interface {
	Parse(ctx context.Context, pc ParseContext, raw cty.Value) (Element, error)
}

// ParserFunc adapts an ordinary function to ElementParser.
type ParserFunc func(ctx context.Context, pc ParseContext, raw cty.Value) (Element, error)

// Parse calls f(ctx, pc, raw).
func (f ParserFunc) Parse(ctx context.Context, pc ParseContext, raw cty.Value) (Element, error) {
	return f(ctx, pc, raw)
}

// ParseContext is what the engine hands a parser alongside the raw element.
type ParseContext interface {
	// Type is the type identifier that selected the parser.
	Type() string
	// Path locates the element inside its document, e.g. "body[1].items[0]".
	Path() string
	// ParseChildren parses the element list held in attribute attr of raw
	// with the same registry and unknown-type policy as the parent. An absent
	// attribute yields an empty slice.
	ParseChildren(ctx context.Context, raw cty.Value, attr string) ([]Element, error)
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/cardparse/internal/card"
	"github.com/specialistvlad/cardparse/internal/ctxlog"
	"github.com/specialistvlad/cardparse/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// cardType is the only root "type" a card document may declare.
const cardType = "AdaptiveCard"

var (
	// ErrUnknownElementType is returned under UnknownError for an element
	// whose type is not registered and that has no fallback.
	ErrUnknownElementType = errors.New("unknown element type")
	// ErrMissingType is returned for an element without a "type" attribute.
	ErrMissingType = errors.New("element has no type")
	// ErrMalformed is returned when the document structure is not a card.
	ErrMalformed = errors.New("malformed card")
)

// ElementError locates a parser failure inside a document.
type ElementError struct {
	Path string
	Type string
	Err  error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Path, e.Type, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }

// Engine parses card documents using the parsers held by a registry.
// It is safe for concurrent use.
type Engine struct {
	registry *registry.Registry
	unknown  UnknownPolicy
}

// New creates an engine that resolves element types through reg.
func New(reg *registry.Registry, opts ...Option) *Engine {
	if reg == nil {
		panic("engine: registry is required")
	}
	e := &Engine{registry: reg}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry the engine resolves element types through.
func (e *Engine) Registry() *registry.Registry { return e.registry }

// ParseCard parses a raw card document. The root must be an object; its
// "body" attribute, when present, must be a list of elements.
func (e *Engine) ParseCard(ctx context.Context, raw cty.Value) (*card.Card, error) {
	logger := ctxlog.FromContext(ctx)

	if !card.IsObject(raw) {
		return nil, fmt.Errorf("%w: document root must be an object", ErrMalformed)
	}
	if v, ok := card.Attr(raw, "type"); ok {
		if typ, isString := card.StringAttr(raw, "type"); !isString || typ != cardType {
			return nil, fmt.Errorf("%w: root type must be %q, got %s", ErrMalformed, cardType, v.GoString())
		}
	}

	c := &card.Card{}
	if _, ok := card.Attr(raw, "version"); ok {
		version, isString := card.StringAttr(raw, "version")
		if !isString {
			return nil, fmt.Errorf("%w: version must be a string", ErrMalformed)
		}
		c.Version = version
	}

	body, err := e.parseList(ctx, raw, "body", "body")
	if err != nil {
		return nil, err
	}
	c.Body = body

	logger.Debug("Card parsed.", "version", c.Version, "elements", len(body))
	return c, nil
}

// ParseElement parses a single raw element. A nil Element with a nil error
// means the element was dropped.
func (e *Engine) ParseElement(ctx context.Context, raw cty.Value) (card.Element, error) {
	return e.parseElement(ctx, raw, "element")
}

// parseList parses the element list held in attribute attr of parent.
func (e *Engine) parseList(ctx context.Context, parent cty.Value, attr, path string) ([]card.Element, error) {
	elements := []card.Element{}

	list, ok := card.Attr(parent, attr)
	if !ok {
		return elements, nil
	}
	ty := list.Type()
	if !list.IsWhollyKnown() || !(ty.IsListType() || ty.IsTupleType()) {
		return nil, fmt.Errorf("%w: %s must be a list of elements, got %s", ErrMalformed, path, ty.FriendlyName())
	}

	i := 0
	for it := list.ElementIterator(); it.Next(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		_, raw := it.Element()
		el, err := e.parseElement(ctx, raw, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		if el != nil {
			elements = append(elements, el)
		}
	}
	return elements, nil
}

func (e *Engine) parseElement(ctx context.Context, raw cty.Value, path string) (card.Element, error) {
	if !card.IsObject(raw) {
		return nil, fmt.Errorf("%w: %s: element must be an object", ErrMalformed, path)
	}
	if _, ok := card.Attr(raw, "type"); !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrMissingType)
	}
	typ, ok := card.StringAttr(raw, "type")
	if !ok {
		return nil, fmt.Errorf("%w: %s: type must be a string", ErrMalformed, path)
	}

	parser, found, err := e.registry.Get(typ)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !found {
		return e.resolveUnknown(ctx, raw, typ, path)
	}

	el, err := parser.Parse(ctx, &parseContext{engine: e, typ: typ, path: path}, raw)
	if err != nil {
		// Failures from nested elements already carry their own location.
		var nested *ElementError
		if errors.As(err, &nested) {
			return nil, err
		}
		return nil, &ElementError{Path: path, Type: typ, Err: err}
	}
	return el, nil
}

func (e *Engine) resolveUnknown(ctx context.Context, raw cty.Value, typ, path string) (card.Element, error) {
	logger := ctxlog.FromContext(ctx)

	if fallback, ok := card.Attr(raw, "fallback"); ok {
		if s, isString := card.StringAttr(raw, "fallback"); isString && s == "drop" {
			logger.Debug("Dropping unknown element by its fallback.", "type", typ, "path", path)
			return nil, nil
		}
		if card.IsObject(fallback) {
			logger.Debug("Using fallback for unknown element.", "type", typ, "path", path)
			return e.parseElement(ctx, fallback, path+".fallback")
		}
		return nil, fmt.Errorf("%w: %s: fallback must be \"drop\" or an element", ErrMalformed, path)
	}

	switch e.unknown {
	case UnknownKeep:
		logger.Debug("Keeping unknown element.", "type", typ, "path", path)
		return &card.Unknown{Base: card.NewBase(typ, raw), Raw: raw}, nil
	case UnknownError:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownElementType, typ)
	default:
		logger.Debug("Dropping unknown element.", "type", typ, "path", path)
		return nil, nil
	}
}

// parseContext is the card.ParseContext handed to parsers.
type parseContext struct {
	engine *Engine
	typ    string
	path   string
}

func (pc *parseContext) Type() string { return pc.typ }
func (pc *parseContext) Path() string { return pc.path }

func (pc *parseContext) ParseChildren(ctx context.Context, raw cty.Value, attr string) ([]card.Element, error) {
	return pc.engine.parseList(ctx, raw, attr, pc.path+"."+attr)
}

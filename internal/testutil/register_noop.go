// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testutil

import (
	"context"
	"sync/atomic"

	"github.com/specialistvlad/cardparse/internal/card"
	"github.com/zclconf/go-cty/cty"
)

// StubElement is what StubParser produces. Parser names the stub that built
// it, which lets tests tell an override apart from the parser it replaced.
type StubElement struct {
	card.Base
	Parser string `json:"parser"`
}

// StubParser is a named parser that records how often it ran.
type StubParser struct {
	Name  string
	calls atomic.Int64
}

// NewStubParser returns a StubParser called name.
func NewStubParser(name string) *StubParser {
	return &StubParser{Name: name}
}

// Parse implements card.ElementParser.
func (p *StubParser) Parse(_ context.Context, pc card.ParseContext, raw cty.Value) (card.Element, error) {
	p.calls.Add(1)
	return &StubElement{Base: card.NewBase(pc.Type(), raw), Parser: p.Name}, nil
}

// Calls returns how many elements the parser has handled.
func (p *StubParser) Calls() int64 { return p.calls.Load() }

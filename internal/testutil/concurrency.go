// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/specialistvlad/cardparse/internal/card"
	"github.com/zclconf/go-cty/cty"
)

// ConcurrencyProbe is a parser that holds each call for a short while and
// records the highest number of calls it saw in flight at once.
type ConcurrencyProbe struct {
	Delay time.Duration

	mu       sync.Mutex
	inFlight int
	peak     int
}

// Parse implements card.ElementParser.
func (p *ConcurrencyProbe) Parse(ctx context.Context, pc card.ParseContext, raw cty.Value) (card.Element, error) {
	p.mu.Lock()
	p.inFlight++
	if p.inFlight > p.peak {
		p.peak = p.inFlight
	}
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.inFlight--
		p.mu.Unlock()
	}()

	select {
	case <-time.After(p.Delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &StubElement{Base: card.NewBase(pc.Type(), raw), Parser: "probe"}, nil
}

// Peak returns the maximum concurrency observed.
func (p *ConcurrencyProbe) Peak() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.peak
}

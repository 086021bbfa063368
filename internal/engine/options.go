// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package engine

import (
	"fmt"
	"strings"
)

// UnknownPolicy decides what happens to an element whose type is not
// registered and that declares no fallback.
type UnknownPolicy int

const (
	// UnknownDrop silently omits the element.
	UnknownDrop UnknownPolicy = iota
	// UnknownKeep retains the element as a card.Unknown holding the raw node.
	UnknownKeep
	// UnknownError aborts the parse with ErrUnknownElementType.
	UnknownError
)

var policyNames = map[UnknownPolicy]string{
	UnknownDrop:  "drop",
	UnknownKeep:  "keep",
	UnknownError: "error",
}

func (p UnknownPolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("UnknownPolicy(%d)", int(p))
}

// ParseUnknownPolicy converts "drop", "keep" or "error" (any case) to a policy.
func ParseUnknownPolicy(s string) (UnknownPolicy, error) {
	for p, name := range policyNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	return UnknownDrop, fmt.Errorf("invalid unknown-type policy %q: must be 'drop', 'keep', or 'error'", s)
}

// Option configures an Engine.
type Option func(*Engine)

// WithUnknownPolicy sets the policy for unregistered element types.
func WithUnknownPolicy(p UnknownPolicy) Option {
	return func(e *Engine) { e.unknown = p }
}

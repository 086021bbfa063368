// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package card

import (
	"encoding/json"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Element is a parsed, typed card element.
type Element interface {
	// ElementType is the type identifier the element was parsed under.
	ElementType() string
	// ElementID is the element's optional "id" attribute.
	ElementID() string
}

// Card is the parsed form of one card document.
type Card struct {
	Source  string    `json:"source,omitempty"`
	Version string    `json:"version,omitempty"`
	Body    []Element `json:"body"`
}

// Base carries the attributes every element has. Element implementations
// embed it.
type Base struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
}

// NewBase returns a Base for an element parsed under typ, picking up the id
// attribute of raw when present.
func NewBase(typ string, raw cty.Value) Base {
	id, _ := StringAttr(raw, "id")
	return Base{Type: typ, ID: id}
}

func (b Base) ElementType() string { return b.Type }
func (b Base) ElementID() string   { return b.ID }

// Unknown preserves an element whose type has no registered parser.
type Unknown struct {
	Base
	Raw cty.Value `json:"-"`
}

// MarshalJSON emits the raw element unchanged.
func (u *Unknown) MarshalJSON() ([]byte, error) {
	if u.Raw.IsNull() {
		return json.Marshal(u.Base)
	}
	b, err := ctyjson.Marshal(u.Raw, u.Raw.Type())
	if err != nil {
		return nil, fmt.Errorf("marshal unknown element %q: %w", u.Type, err)
	}
	return b, nil
}

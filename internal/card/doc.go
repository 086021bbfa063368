// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package card defines the in-memory card model shared by the registry, the
// parsing engine, and the element parsers.
//
// A raw element is a cty.Value object, whatever format the document was
// written in. An ElementParser turns one raw element into a typed Element.
// The helpers in attr.go read and decode attributes from raw elements using
// go-cty's conversion rules, so a parser declares Go fields and lets cty do
// the coercion.
package card

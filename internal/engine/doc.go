// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package engine is the card parsing pipeline. It walks a raw card document,
// resolves each element's type identifier through a registry.Registry, and
// invokes the parser it finds.
//
// Resolution order for an element whose type has no registered parser:
//
//  1. the element's own "fallback" attribute, either the string "drop" or a
//     replacement element that is resolved the same way;
//  2. the engine's UnknownPolicy: drop the element (default), keep it as a
//     card.Unknown, or fail the parse with ErrUnknownElementType.
//
// The engine never mutates the registry it was given.
package engine

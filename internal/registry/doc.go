// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package registry maps element type identifiers to the parsers responsible
// for them.
//
// The Registry is the extension point of the parsing pipeline: built-in
// element types are installed by bootstrap modules, custom element types are
// added with Set, and any built-in can be overridden by setting the same type
// identifier again (last write wins). The engine calls Get for every element
// it encounters; a miss is ordinary control flow, never an error.
//
// Type identifiers cross a normalization boundary (key.go) before they reach
// the store. The boundary only checks that the identifier is well-formed
// text; it does not fold case or trim whitespace, so keys compare byte-exact.
//
// There is no package-level default instance. NewDefault builds a registry
// from bootstrap modules and the result is threaded through whatever context
// owns it, so tests can always construct isolated registries.
package registry

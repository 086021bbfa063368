// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package source loads card documents from disk and converts them into raw
// cty values for the engine.
//
// Three formats are understood and all produce the same shape, an object
// with a "body" list of element objects each carrying a "type" string:
//
//   - JSON (.json), the native card format, decoded with go-cty's JSON
//     support so numbers, booleans and nesting survive unchanged;
//   - YAML (.yaml, .yml), converted to JSON first;
//   - HCL (.hcl), described below.
//
// An HCL card file holds a single card block with labelled element blocks.
// Nested element blocks become the parent's "items" and a labelled fallback
// block becomes the element's "fallback":
//
//	card {
//	  version = "1.5"
//
//	  element "TextBlock" {
//	    text = "Hello"
//	  }
//
//	  element "Container" {
//	    element "Image" {
//	      url = "https://example.com/a.png"
//	    }
//	  }
//	}
package source

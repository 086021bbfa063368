// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package source

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

const (
	cardBlockType     = "card"
	elementBlockType  = "element"
	fallbackBlockType = "fallback"
)

// DecodeHCL decodes an HCL card file into the same raw shape DecodeJSON
// produces. Expressions are evaluated without variables or functions.
func DecodeHCL(filename string, data []byte) (cty.Value, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return cty.NilVal, fmt.Errorf("failed to decode HCL file %s: unexpected body type %T", filename, file.Body)
	}

	val, diags := cardFromBody(body)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	return val, nil
}

// cardFromBody expects exactly one unlabelled card block at the top level.
func cardFromBody(body *hclsyntax.Body) (cty.Value, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	for name, attr := range body.Attributes {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unexpected attribute",
			Detail:   fmt.Sprintf("Attribute %q must be set inside the \"card\" block.", name),
			Subject:  attr.SrcRange.Ptr(),
		})
	}

	var found *hclsyntax.Block
	for _, block := range body.Blocks {
		switch {
		case block.Type != cardBlockType:
			diags = append(diags, unexpectedBlock(block))
		case found != nil:
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate \"card\" block",
				Detail:   "Only one \"card\" block is allowed per file.",
				Subject:  block.DefRange().Ptr(),
			})
		case len(block.Labels) != 0:
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unexpected label",
				Detail:   "The \"card\" block takes no labels.",
				Subject:  block.DefRange().Ptr(),
			})
		default:
			found = block
		}
	}
	if found == nil && !diags.HasErrors() {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing \"card\" block",
			Detail:   "A card file must contain one \"card\" block.",
			Subject:  body.SrcRange.Ptr(),
		})
	}
	if diags.HasErrors() {
		return cty.NilVal, diags
	}

	attrs, diags := objectFromBody(found.Body, "body", false)
	if _, ok := attrs["type"]; !ok {
		attrs["type"] = cty.StringVal("AdaptiveCard")
	}
	return cty.ObjectVal(attrs), diags
}

// elementFromBlock converts `element "<type>" { ... }` into an element object.
func elementFromBlock(block *hclsyntax.Block) (cty.Value, hcl.Diagnostics) {
	if len(block.Labels) != 1 {
		return cty.NilVal, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Missing element type",
			Detail:   fmt.Sprintf("A %q block needs exactly one label naming the element type.", block.Type),
			Subject:  block.DefRange().Ptr(),
		}}
	}

	attrs, diags := objectFromBody(block.Body, "items", true)
	if attr, ok := block.Body.Attributes["type"]; ok {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Conflicting element type",
			Detail:   "The element type is given by the block label; remove the \"type\" attribute.",
			Subject:  attr.SrcRange.Ptr(),
		})
	}
	attrs["type"] = cty.StringVal(block.Labels[0])
	return cty.ObjectVal(attrs), diags
}

// objectFromBody evaluates the attributes of body and gathers nested element
// blocks into listAttr. Fallback blocks are only accepted when allowFallback.
func objectFromBody(body *hclsyntax.Body, listAttr string, allowFallback bool) (map[string]cty.Value, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	attrs := make(map[string]cty.Value, len(body.Attributes)+1)

	for name, attr := range body.Attributes {
		val, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if !valDiags.HasErrors() {
			attrs[name] = val
		}
	}

	var children []cty.Value
	var fallback *hclsyntax.Block
	for _, block := range body.Blocks {
		switch {
		case block.Type == elementBlockType:
			child, childDiags := elementFromBlock(block)
			diags = append(diags, childDiags...)
			if !childDiags.HasErrors() {
				children = append(children, child)
			}
		case block.Type == fallbackBlockType && allowFallback:
			if fallback != nil {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Duplicate \"fallback\" block",
					Detail:   "Only one \"fallback\" block is allowed per element.",
					Subject:  block.DefRange().Ptr(),
				})
				continue
			}
			fallback = block
			if _, ok := body.Attributes[fallbackBlockType]; ok {
				diags = append(diags, conflict(block, fallbackBlockType))
				continue
			}
			val, fbDiags := elementFromBlock(block)
			diags = append(diags, fbDiags...)
			if !fbDiags.HasErrors() {
				attrs[fallbackBlockType] = val
			}
		default:
			diags = append(diags, unexpectedBlock(block))
		}
	}

	if len(children) > 0 {
		if _, ok := body.Attributes[listAttr]; ok {
			diags = append(diags, conflict(body.Blocks[0], listAttr))
		} else {
			attrs[listAttr] = cty.TupleVal(children)
		}
	}
	return attrs, diags
}

func unexpectedBlock(block *hclsyntax.Block) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Unexpected block",
		Detail:   fmt.Sprintf("Blocks of type %q are not expected here.", block.Type),
		Subject:  block.DefRange().Ptr(),
	}
}

func conflict(block *hclsyntax.Block, attr string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Conflicting %q definitions", attr),
		Detail:   fmt.Sprintf("%q is set as an attribute and through nested blocks; use one or the other.", attr),
		Subject:  block.DefRange().Ptr(),
	}
}

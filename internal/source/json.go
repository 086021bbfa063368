// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package source

import (
	"fmt"
	"unicode/utf8"

	"github.com/specialistvlad/cardparse/internal/registry"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"sigs.k8s.io/yaml"
)

// DecodeJSON decodes a JSON card. The cty type is inferred from the document
// itself: objects become object types and arrays become tuples. Documents
// that are not valid UTF-8 are rejected with registry.ErrInvalidArgument
// rather than having their bad bytes replaced with U+FFFD.
func DecodeJSON(data []byte) (cty.Value, error) {
	if !utf8.Valid(data) {
		return cty.NilVal, fmt.Errorf("JSON document is not valid UTF-8: %w", registry.ErrInvalidArgument)
	}
	ty, err := ctyjson.ImpliedType(data)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to infer JSON structure: %w", err)
	}
	val, err := ctyjson.Unmarshal(data, ty)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return val, nil
}

// DecodeYAML decodes a YAML card by way of its JSON equivalent.
func DecodeYAML(data []byte) (cty.Value, error) {
	js, err := yaml.YAMLToJSON(data)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to convert YAML: %w", err)
	}
	return DecodeJSON(js)
}

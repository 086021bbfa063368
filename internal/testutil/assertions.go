// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testutil

import (
	"testing"

	"github.com/specialistvlad/cardparse/internal/card"
	"github.com/stretchr/testify/require"
)

// ElementTypes lists the type identifiers of elems in order.
func ElementTypes(elems []card.Element) []string {
	types := make([]string, 0, len(elems))
	for _, el := range elems {
		types = append(types, el.ElementType())
	}
	return types
}

// RequireElementTypes fails the test unless elems have exactly the given types.
func RequireElementTypes(t *testing.T, want []string, elems []card.Element) {
	t.Helper()
	require.Equal(t, want, ElementTypes(elems), "unexpected element types")
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain", raw: "TextBlock", want: "TextBlock"},
		{name: "empty is valid text", raw: "", want: ""},
		{name: "whitespace kept", raw: " Text Block ", want: " Text Block "},
		{name: "case kept", raw: "textBLOCK", want: "textBLOCK"},
		{name: "non-ascii", raw: "Élément.テキスト", want: "Élément.テキスト"},
		{name: "invalid utf8", raw: string([]byte{0xc3, 0x28}), wantErr: true},
		{name: "truncated rune", raw: "Text\xe2\x82", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeKey(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgument)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeUTF16(t *testing.T) {
	tests := []struct {
		name    string
		units   []uint16
		want    string
		wantErr bool
	}{
		{name: "ascii", units: []uint16{'I', 'm', 'a', 'g', 'e'}, want: "Image"},
		{name: "empty", units: nil, want: ""},
		{name: "bmp", units: []uint16{0x00c9, 't', 'a', 't'}, want: "État"},
		{name: "surrogate pair", units: []uint16{'X', 0xd83d, 0xde00}, want: "X\U0001F600"},
		{name: "bom kept", units: []uint16{0xfeff, 'A'}, want: "\ufeffA"},
		{name: "explicit replacement char", units: []uint16{0xfffd}, want: "\ufffd"},
		{name: "lone high surrogate", units: []uint16{'A', 0xd800}, wantErr: true},
		{name: "lone low surrogate", units: []uint16{0xdc00, 'A'}, wantErr: true},
		{name: "reversed pair", units: []uint16{0xde00, 0xd83d}, wantErr: true},
		{name: "replacement plus lone surrogate", units: []uint16{0xfffd, 0xd800}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeUTF16(tt.units)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgument)
				var keyErr *KeyError
				require.ErrorAs(t, err, &keyErr)
				assert.Contains(t, keyErr.Reason, "surrogate")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			key, err := NormalizeKey(got)
			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

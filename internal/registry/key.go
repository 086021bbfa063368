// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidArgument reports a type identifier that cannot be decoded to
// text, or a nil parser handed to Set.
var ErrInvalidArgument = errors.New("invalid argument")

// KeyError describes a type identifier rejected by the normalization boundary.
type KeyError struct {
	Raw    string
	Reason string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("registry: invalid type identifier %q: %s", e.Raw, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidArgument) hold for every KeyError.
func (e *KeyError) Unwrap() error { return ErrInvalidArgument }

// NormalizeKey converts a type identifier into the registry's canonical key.
// Well-formed UTF-8 passes through byte for byte. Malformed input is rejected
// rather than coerced, so two distinct garbage identifiers can never collide
// on the same key.
func NormalizeKey(raw string) (string, error) {
	if !utf8.ValidString(raw) {
		return "", &KeyError{Raw: raw, Reason: "not valid UTF-8 text"}
	}
	return raw, nil
}

var replacementChar = []byte(string(utf8.RuneError))

// DecodeUTF16 converts a platform wide string (UTF-16 code units, as handed
// over by host environments that keep strings in UTF-16) into text suitable
// for NormalizeKey. Unpaired surrogates are rejected; a byte order mark is
// kept as an ordinary character.
func DecodeUTF16(units []uint16) (string, error) {
	buf := make([]byte, 2*len(units))
	explicit := 0
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[2*i:], u)
		if rune(u) == utf8.RuneError {
			explicit++
		}
	}

	// Decoders carry state, so each call gets its own.
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(buf)
	if err != nil {
		return "", &KeyError{Raw: fmt.Sprintf("%#04x", units), Reason: err.Error()}
	}
	// The decoder substitutes U+FFFD for unpaired surrogates; any replacement
	// beyond the ones present in the input marks malformed text.
	if bytes.Count(out, replacementChar) != explicit {
		return "", &KeyError{Raw: fmt.Sprintf("%#04x", units), Reason: "unpaired UTF-16 surrogate"}
	}
	return string(out), nil
}

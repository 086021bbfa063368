// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/specialistvlad/cardparse/internal/card"
	"github.com/specialistvlad/cardparse/internal/inmemorystore"
	"golang.org/x/text/unicode/norm"
)

// Registry maps element type identifiers to parser handles. It is safe for
// concurrent use: registration may run alongside lookups from parsing
// workers.
//
// Parser handles are shared. Get hands out the same handle the registry
// holds, and replacing or removing an entry only drops the registry's
// reference, so a handle obtained earlier remains usable.
type Registry struct {
	logger  *slog.Logger
	parsers *inmemorystore.Store[card.ElementParser]
}

// New creates an empty registry. A nil logger discards registration logs.
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{
		logger:  logger,
		parsers: inmemorystore.New[card.ElementParser](),
	}
}

// Set registers p for typ, replacing any parser already registered for it.
// A nil p, including a typed nil such as (*MyParser)(nil), is rejected.
func (r *Registry) Set(typ string, p card.ElementParser) error {
	key, err := NormalizeKey(typ)
	if err != nil {
		return err
	}
	if isNil(p) {
		return fmt.Errorf("registry: nil parser for type %q: %w", key, ErrInvalidArgument)
	}
	if !norm.NFC.IsNormalString(key) {
		// Decoded documents carry NFC text, so this key only matches direct Get calls.
		r.logger.Warn("Element type is not in NFC form and will not match document types.", "type", key)
	}

	if _, replaced := r.parsers.Get(key); replaced {
		r.logger.Debug("Replacing element parser.", "type", key)
	} else {
		r.logger.Debug("Registering element parser.", "type", key)
	}
	r.parsers.Set(key, p)
	return nil
}

// MustSet is Set for bootstrap code registering literal type identifiers.
// It panics on error.
func (r *Registry) MustSet(typ string, p card.ElementParser) {
	if err := r.Set(typ, p); err != nil {
		panic(err)
	}
}

// Get returns the parser registered for typ. A type that was never
// registered, or has been removed, yields (nil, false, nil); only a malformed
// identifier produces an error.
func (r *Registry) Get(typ string) (card.ElementParser, bool, error) {
	key, err := NormalizeKey(typ)
	if err != nil {
		return nil, false, err
	}
	p, ok := r.parsers.Get(key)
	return p, ok, nil
}

// Remove unregisters typ. Removing a type that is not registered is a no-op.
func (r *Registry) Remove(typ string) error {
	key, err := NormalizeKey(typ)
	if err != nil {
		return err
	}
	r.logger.Debug("Removing element parser.", "type", key)
	r.parsers.Delete(key)
	return nil
}

// Len returns the number of registered types.
func (r *Registry) Len() int { return r.parsers.Len() }

// Types returns the registered type identifiers in lexicographic order.
func (r *Registry) Types() []string { return r.parsers.Keys() }

// Clone returns an independent registry holding the same parser handles.
// Overrides applied to the clone do not affect the receiver, which makes it
// the way to customise a shared default for a single parsing context.
func (r *Registry) Clone() *Registry {
	return &Registry{
		logger:  r.logger,
		parsers: r.parsers.Clone(),
	}
}

func isNil(p card.ElementParser) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

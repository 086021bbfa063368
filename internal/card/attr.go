// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package card

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ErrMissingAttribute is returned by DecodeFields for an absent required attribute.
var ErrMissingAttribute = errors.New("missing required attribute")

// IsObject reports whether v is a known, non-null object or map.
func IsObject(v cty.Value) bool {
	if v.IsNull() || !v.IsKnown() {
		return false
	}
	ty := v.Type()
	return ty.IsObjectType() || ty.IsMapType()
}

// Attr returns attribute name of the object raw. Absent and null attributes
// both report false.
func Attr(raw cty.Value, name string) (cty.Value, bool) {
	if !IsObject(raw) {
		return cty.NilVal, false
	}

	var v cty.Value
	ty := raw.Type()
	if ty.IsObjectType() {
		if !ty.HasAttribute(name) {
			return cty.NilVal, false
		}
		v = raw.GetAttr(name)
	} else {
		key := cty.StringVal(name)
		if !raw.HasIndex(key).True() {
			return cty.NilVal, false
		}
		v = raw.Index(key)
	}

	if v.IsNull() {
		return cty.NilVal, false
	}
	return v, true
}

// StringAttr returns attribute name of raw when it is a known string.
func StringAttr(raw cty.Value, name string) (string, bool) {
	v, ok := Attr(raw, name)
	if !ok || !v.IsKnown() || !v.Type().Equals(cty.String) {
		return "", false
	}
	return v.AsString(), true
}

// DecodeAttr decodes attribute name of raw into the Go value target points
// to. An absent attribute leaves target untouched, so callers preset defaults.
func DecodeAttr(raw cty.Value, name string, target any) error {
	v, ok := Attr(raw, name)
	if !ok {
		return nil
	}
	if err := decode(v, target); err != nil {
		return fmt.Errorf("attribute %q: %w", name, err)
	}
	return nil
}

// Field describes one attribute for DecodeFields.
type Field struct {
	Name     string
	Target   any
	Required bool
}

// DecodeFields decodes fields in order and stops at the first failure.
func DecodeFields(raw cty.Value, fields ...Field) error {
	for _, f := range fields {
		if f.Required {
			if _, ok := Attr(raw, f.Name); !ok {
				return fmt.Errorf("%w %q", ErrMissingAttribute, f.Name)
			}
		}
		if err := DecodeAttr(raw, f.Name, f.Target); err != nil {
			return err
		}
	}
	return nil
}

// decode converts val to the cty type implied by the Go target and then binds it.
func decode(val cty.Value, target any) error {
	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() {
		return fmt.Errorf("target for decoding must be a non-nil pointer, got %T", target)
	}
	if !val.IsWhollyKnown() {
		return errors.New("value is not known")
	}

	impliedType, err := gocty.ImpliedType(ptr.Elem().Interface())
	if err != nil {
		return gocty.FromCtyValue(val, target)
	}

	converted, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}
	return gocty.FromCtyValue(converted, target)
}

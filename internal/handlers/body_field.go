package handlers

import (
	"errors"

	"github.com/aarondl/opt/omitnull"
	"github.com/danielgtaylor/huma/v2"
)

// ErrWrongType is returned when a body member holds a JSON value of the
// wrong kind.
var ErrWrongType = errors.New("wrong type")

// BodyField is an optional request body member whose value is checked by the
// handler rather than by the request schema. It tells an absent member apart
// from an explicit null.
type BodyField struct {
	omitnull.Val[any]
}

// Schema accepts any JSON value.
func (BodyField) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{}
}

// Text returns a string member. sent is false when the member was absent.
func (f BodyField) Text() (value string, sent bool, err error) {
	if f.IsUnset() {
		return "", false, nil
	}
	v, _ := f.Get()
	s, ok := v.(string)
	if !ok {
		return "", true, ErrWrongType
	}
	return s, true, nil
}

// NullableText returns a string member, keeping an explicit null as null.
func (f BodyField) NullableText() (omitnull.Val[string], error) {
	switch {
	case f.IsUnset():
		return omitnull.Val[string]{}, nil
	case f.IsNull():
		var out omitnull.Val[string]
		out.Null()
		return out, nil
	}
	v, _ := f.Get()
	s, ok := v.(string)
	if !ok {
		return omitnull.Val[string]{}, ErrWrongType
	}
	return omitnull.From(s), nil
}

// Bool returns a boolean member. sent is false when the member was absent.
func (f BodyField) Bool() (value bool, sent bool, err error) {
	if f.IsUnset() {
		return false, false, nil
	}
	v, _ := f.Get()
	b, ok := v.(bool)
	if !ok {
		return false, true, ErrWrongType
	}
	return b, true, nil
}

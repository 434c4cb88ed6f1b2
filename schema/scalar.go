// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"fmt"
	"math"
	"strconv"
)

// Kind enumerates the scalar type families with a built-in coercion.
type Kind int

const (
	String Kind = iota
	Int
	Float
	Bool
)

// String implements the [fmt.Stringer] interface.
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// CoercionError is returned when raw data can not be coerced into a scalar
// kind, for example a non-numeric path capture declared as [Int].
type CoercionError struct {
	Kind Kind
	Raw  any
}

// Error implements the error interface.
func (e CoercionError) Error() string {
	return fmt.Sprintf("schema: cannot coerce %v (%T) into %s", e.Raw, e.Raw, e.Kind)
}

type scalarAdapter struct {
	kind Kind
}

// Scalar returns the built-in coercion [Adapter] for the given kind.
//
// Path and query captures always arrive as text, so each kind accepts its
// textual form in addition to already-typed values. Integers additionally
// accept integral floating point values since JSON carries all numbers as
// floats.
func Scalar(k Kind) Adapter {
	return scalarAdapter{kind: k}
}

// Parse implements the [Adapter] interface.
func (a scalarAdapter) Parse(raw any) (any, error) {
	switch a.kind {
	case String:
		s, ok := raw.(string)
		if !ok {
			return nil, CoercionError{Kind: a.kind, Raw: raw}
		}
		return s, nil
	case Int:
		return coerceInt(raw)
	case Float:
		return coerceFloat(raw)
	case Bool:
		return coerceBool(raw)
	default:
		return nil, CoercionError{Kind: a.kind, Raw: raw}
	}
}

// Serialize implements the [Adapter] interface.
func (a scalarAdapter) Serialize(value any) (any, error) {
	if !a.AcceptsShape(value) {
		return nil, CoercionError{Kind: a.kind, Raw: value}
	}
	return value, nil
}

// AcceptsShape implements the [Adapter] interface.
func (a scalarAdapter) AcceptsShape(value any) bool {
	switch a.kind {
	case String:
		_, ok := value.(string)
		return ok
	case Int:
		switch v := value.(type) {
		case int, int32, int64:
			return true
		case float64:
			return v == math.Trunc(v)
		default:
			return false
		}
	case Float:
		switch value.(type) {
		case float32, float64, int, int32, int64:
			return true
		default:
			return false
		}
	case Bool:
		_, ok := value.(bool)
		return ok
	default:
		return false
	}
}

// MediaType implements the [Adapter] interface.
func (a scalarAdapter) MediaType() string {
	return "text/plain; charset=utf-8"
}

// coerceInt accepts integers, integral floats and the textual form of
// either. Fractional values are rejected rather than truncated.
func coerceInt(raw any) (any, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return nil, CoercionError{Kind: Int, Raw: raw}
		}
		return int(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f != math.Trunc(f) {
			return nil, CoercionError{Kind: Int, Raw: raw}
		}
		return int(f), nil
	default:
		return nil, CoercionError{Kind: Int, Raw: raw}
	}
}

func coerceFloat(raw any) (any, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, CoercionError{Kind: Float, Raw: raw}
		}
		return f, nil
	default:
		return nil, CoercionError{Kind: Float, Raw: raw}
	}
}

func coerceBool(raw any) (any, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, CoercionError{Kind: Bool, Raw: raw}
		}
		return b, nil
	default:
		return nil, CoercionError{Kind: Bool, Raw: raw}
	}
}

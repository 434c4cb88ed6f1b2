// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/swaggest/jsonschema-go"
)

// StructAdapter is an [Adapter] backed by a plain Go struct. Payloads are
// unmarshaled from their JSON shape into T and then validated with
// go-playground/validator struct tags.
//
// Example:
//
//	type User struct {
//	    Username string  `json:"username" validate:"required"`
//	    Balance  float64 `json:"balance" validate:"required"`
//	}
//
//	registry.Register("user", schema.Struct[User]())
type StructAdapter[T any] struct {
	validate *validator.Validate
}

// Struct initializes a [StructAdapter] for T.
func Struct[T any]() *StructAdapter[T] {
	return &StructAdapter[T]{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Parse implements the [Adapter] interface.
func (a *StructAdapter[T]) Parse(raw any) (any, error) {
	if raw == nil {
		return nil, PayloadError{Cause: errors.New("empty payload")}
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return nil, PayloadError{Cause: err}
	}

	var v T
	err = json.Unmarshal(b, &v)
	if err != nil {
		return nil, PayloadError{Cause: err}
	}

	err = a.validate.Struct(&v)
	if err != nil {
		return nil, PayloadError{Cause: err}
	}

	return &v, nil
}

// Serialize implements the [Adapter] interface.
func (a *StructAdapter[T]) Serialize(value any) (any, error) {
	v, ok := value.(*T)
	if !ok {
		return nil, fmt.Errorf("schema: expected %T but got %T", new(T), value)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var raw any
	err = json.Unmarshal(b, &raw)
	if err != nil {
		return nil, err
	}

	return raw, nil
}

// AcceptsShape implements the [Adapter] interface.
func (a *StructAdapter[T]) AcceptsShape(value any) bool {
	_, ok := value.(*T)
	return ok
}

// MediaType implements the [Adapter] interface.
func (a *StructAdapter[T]) MediaType() string {
	return "application/json"
}

// JSONSchema implements the [Reflector] interface.
func (a *StructAdapter[T]) JSONSchema() (jsonschema.Schema, error) {
	var t T
	var reflector jsonschema.Reflector

	s, err := reflector.Reflect(t, jsonschema.InlineRefs)
	if err != nil {
		return jsonschema.Schema{}, err
	}

	return s, nil
}

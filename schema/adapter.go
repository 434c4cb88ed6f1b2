// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package schema defines the pluggable validation strategy used by the bind
// package, along with built-in strategies for scalar coercion, tag-validated
// structs and JSON Schema documents.
package schema

import (
	"fmt"

	"github.com/swaggest/jsonschema-go"
)

// Adapter is the capability set a validation library must expose in order to
// participate in type resolution. The bind package never inspects
// library-internal types, it only ever calls these four operations.
type Adapter interface {
	// Parse validates raw wire data and converts it into the adapter's
	// typed value.
	Parse(raw any) (any, error)

	// Serialize converts a typed value produced by this adapter (or by a
	// handler) back into wire-shaped data.
	Serialize(value any) (any, error)

	// AcceptsShape reports whether Serialize would accept value. It is a
	// capability probe used for response-side union disambiguation and
	// must not mutate value.
	AcceptsShape(value any) bool

	// MediaType is the media type Serialize produces data for.
	MediaType() string
}

// Reflector is optionally implemented by adapters which can describe their
// accepted payload as a JSON Schema. The rest package uses it to publish
// OpenAPI documents for registered routes.
type Reflector interface {
	JSONSchema() (jsonschema.Schema, error)
}

// PayloadError wraps a validation library's rejection of a payload.
// It carries the library's own error so callers can report exactly why a
// candidate type turned the data down.
type PayloadError struct {
	Cause error
}

// Error implements the error interface.
func (e PayloadError) Error() string {
	return fmt.Sprintf("schema: invalid payload: %v", e.Cause)
}

// Unwrap returns the validation library's underlying error.
func (e PayloadError) Unwrap() error {
	return e.Cause
}

// Registry maps adapter identifiers to [Adapter] implementations. It is
// populated during startup configuration and read-only afterwards, so
// concurrent lookups require no locking.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry returns a [Registry] containing no adapters.
func NewRegistry() *Registry {
	return &Registry{
		adapters: make(map[string]Adapter),
	}
}

// Register adds an adapter under the given identifier. Registering the same
// identifier twice is a configuration mistake and returns an error.
func (r *Registry) Register(id string, a Adapter) error {
	if _, ok := r.adapters[id]; ok {
		return fmt.Errorf("schema: adapter already registered: %s", id)
	}

	r.adapters[id] = a
	return nil
}

// Lookup returns the adapter registered under id.
func (r *Registry) Lookup(id string) (Adapter, bool) {
	a, ok := r.adapters[id]
	return a, ok
}

// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"bytes"
	"encoding/json"
	"errors"

	santhosh "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/swaggest/jsonschema-go"
)

// Document is the typed value produced by a [DocumentAdapter]. Handlers
// receive the validated fields tagged with the adapter that accepted them,
// so dispatching on the matched union member is a plain field comparison.
type Document struct {
	Adapter string
	Fields  map[string]any
}

// DocumentAdapter is an [Adapter] which validates JSON objects against a
// compiled JSON Schema. It integrates schema-first validation libraries,
// where the schema exists as a document rather than as a Go type.
type DocumentAdapter struct {
	name     string
	raw      []byte
	compiled *santhosh.Schema
}

// DocumentFromJSON compiles the given JSON Schema document into a
// [DocumentAdapter]. The name tags every value the adapter produces and
// should match the identifier the adapter is registered under.
func DocumentFromJSON(name string, spec []byte) (*DocumentAdapter, error) {
	doc, err := santhosh.UnmarshalJSON(bytes.NewReader(spec))
	if err != nil {
		return nil, err
	}

	compiler := santhosh.NewCompiler()
	err = compiler.AddResource(name+".json", doc)
	if err != nil {
		return nil, err
	}

	compiled, err := compiler.Compile(name + ".json")
	if err != nil {
		return nil, err
	}

	return &DocumentAdapter{
		name:     name,
		raw:      spec,
		compiled: compiled,
	}, nil
}

// Parse implements the [Adapter] interface.
func (a *DocumentAdapter) Parse(raw any) (any, error) {
	if raw == nil {
		return nil, PayloadError{Cause: errors.New("empty payload")}
	}

	err := a.compiled.Validate(raw)
	if err != nil {
		return nil, PayloadError{Cause: err}
	}

	fields, ok := raw.(map[string]any)
	if !ok {
		return nil, PayloadError{Cause: errors.New("expected a JSON object")}
	}

	return Document{
		Adapter: a.name,
		Fields:  fields,
	}, nil
}

// Serialize implements the [Adapter] interface.
func (a *DocumentAdapter) Serialize(value any) (any, error) {
	fields, ok := documentFields(value)
	if !ok {
		return nil, PayloadError{Cause: errors.New("expected a document or a JSON object")}
	}

	err := a.compiled.Validate(map[string]any(fields))
	if err != nil {
		return nil, PayloadError{Cause: err}
	}

	return fields, nil
}

// AcceptsShape implements the [Adapter] interface.
func (a *DocumentAdapter) AcceptsShape(value any) bool {
	fields, ok := documentFields(value)
	if !ok {
		return false
	}

	return a.compiled.Validate(map[string]any(fields)) == nil
}

// MediaType implements the [Adapter] interface.
func (a *DocumentAdapter) MediaType() string {
	return "application/json"
}

// JSONSchema implements the [Reflector] interface.
func (a *DocumentAdapter) JSONSchema() (jsonschema.Schema, error) {
	var s jsonschema.Schema
	err := json.Unmarshal(a.raw, &s)
	if err != nil {
		return jsonschema.Schema{}, err
	}

	return s, nil
}

func documentFields(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case Document:
		return v.Fields, true
	case map[string]any:
		return v, true
	default:
		return nil, false
	}
}

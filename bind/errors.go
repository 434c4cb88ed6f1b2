// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package bind

import (
	"fmt"
	"strings"
)

// ConfigurationError reports an invalid route declaration: a path
// placeholder with no matching parameter, a reference to an unregistered
// adapter, or more than one body parameter. It is returned by [Inspect] at
// registration time and never surfaces per request.
type ConfigurationError struct {
	Method  string
	Pattern string
	Cause   error
}

// Error implements the error interface.
func (e ConfigurationError) Error() string {
	return fmt.Sprintf("bind: invalid route %s %s: %v", e.Method, e.Pattern, e.Cause)
}

// Unwrap returns the underlying cause.
func (e ConfigurationError) Unwrap() error {
	return e.Cause
}

// UnknownAdapterError reports a declared type referencing an adapter
// identifier that is not present in the registry.
type UnknownAdapterError struct {
	AdapterID string
}

// Error implements the error interface.
func (e UnknownAdapterError) Error() string {
	return fmt.Sprintf("unknown schema adapter: %s", e.AdapterID)
}

// MissingParameterError reports a required (non-optional) path or query
// value absent from a request.
type MissingParameterError struct {
	Name string
}

// Error implements the error interface.
func (e MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter: %s", e.Name)
}

// CandidateError records why one union member rejected the raw data.
type CandidateError struct {
	Type Expr
	Err  error
}

// UnionError is returned when every member of a union rejects the raw data.
// Candidates appear in declaration order so callers can report exactly why
// each alternative was turned down.
type UnionError struct {
	Candidates []CandidateError
}

// Error implements the error interface.
func (e UnionError) Error() string {
	ss := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		ss[i] = fmt.Sprintf("%s: %v", c.Type, c.Err)
	}
	return "no union member matched: " + strings.Join(ss, "; ")
}

// FieldError records the validation failure of a single declared parameter.
type FieldError struct {
	Name string
	Type Expr
	Err  error
}

// Unwrap returns the parameter's resolution error.
func (e FieldError) Unwrap() error {
	return e.Err
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Name, e.Type, e.Err)
}

// BindError aggregates every per-parameter failure of a request. The
// pipeline never short-circuits on the first failing parameter, so Fields
// holds the complete picture of invalid input in declaration order.
type BindError struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *BindError) Error() string {
	ss := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		ss[i] = f.Error()
	}
	return "bind: invalid request parameters: " + strings.Join(ss, "; ")
}

// SerializationError reports a handler return value which the declared
// return type cannot represent. It signals a contract mismatch between the
// handler implementation and its declaration, a server defect rather than
// a client input error.
type SerializationError struct {
	Type  Expr
	Value any
	Cause error
}

// Error implements the error interface.
func (e SerializationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("bind: cannot serialize %T as %s: %v", e.Value, e.Type, e.Cause)
	}
	return fmt.Sprintf("bind: cannot serialize %T as %s", e.Value, e.Type)
}

// Unwrap returns the underlying cause, if any.
func (e SerializationError) Unwrap() error {
	return e.Cause
}

// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package bind

import (
	"github.com/z5labs/loam/schema"
)

// Outcome is the success side of one resolution attempt: the typed value
// along with the concrete declaration member that produced it. Matched lets
// handlers dispatch on which union member actually accepted the data.
type Outcome struct {
	Value   any
	Matched Expr
}

// Resolver maps declared type expressions to concrete validation and
// serialization strategies. It is safe for concurrent use since the
// underlying registry is read-only after startup.
type Resolver struct {
	registry *schema.Registry
}

// NewResolver returns a [Resolver] backed by the given adapter registry.
func NewResolver(registry *schema.Registry) *Resolver {
	return &Resolver{
		registry: registry,
	}
}

// Resolve validates raw data against the declared type.
//
// Unions are tried strictly in declaration order and the first member that
// succeeds wins. If every member rejects the data, the returned error is a
// [UnionError] carrying each member's individual error in declaration
// order. Resolution is deterministic: the same raw input and the same
// declaration always select the same member.
func (r *Resolver) Resolve(expr Expr, raw any) (Outcome, error) {
	switch e := expr.(type) {
	case PrimitiveExpr:
		v, err := schema.Scalar(e.Kind).Parse(raw)
		if err != nil {
			return Outcome{}, err
		}

		return Outcome{Value: v, Matched: e}, nil
	case OptionalExpr:
		if raw == nil {
			return Outcome{Value: nil, Matched: e}, nil
		}

		return r.Resolve(e.Elem, raw)
	case SchemaExpr:
		adapter, ok := r.registry.Lookup(e.AdapterID)
		if !ok {
			return Outcome{}, UnknownAdapterError{AdapterID: e.AdapterID}
		}

		v, err := adapter.Parse(raw)
		if err != nil {
			return Outcome{}, err
		}

		return Outcome{Value: v, Matched: e}, nil
	case UnionExpr:
		candidates := make([]CandidateError, 0, len(e.Members))
		for _, m := range e.Members {
			out, err := r.Resolve(m, raw)
			if err == nil {
				return out, nil
			}

			candidates = append(candidates, CandidateError{Type: m, Err: err})
		}

		return Outcome{}, UnionError{Candidates: candidates}
	default:
		return Outcome{}, UnknownAdapterError{AdapterID: expr.String()}
	}
}

// Unresolve converts a handler result back into wire-shaped data for the
// declared return type, along with the media type of the adapter that
// accepted it.
//
// For unions the runtime value is probed against each member's accepted
// shape in declaration order and serialized with the first compatible
// adapter. A value no member accepts yields a [SerializationError]: the
// handler returned something its declared return type cannot represent.
func (r *Resolver) Unresolve(expr Expr, value any) (any, string, error) {
	switch e := expr.(type) {
	case PrimitiveExpr:
		adapter := schema.Scalar(e.Kind)
		if !adapter.AcceptsShape(value) {
			return nil, "", SerializationError{Type: e, Value: value}
		}

		raw, err := adapter.Serialize(value)
		if err != nil {
			return nil, "", SerializationError{Type: e, Value: value, Cause: err}
		}

		return raw, adapter.MediaType(), nil
	case OptionalExpr:
		if value == nil {
			return nil, "", nil
		}

		return r.Unresolve(e.Elem, value)
	case SchemaExpr:
		adapter, ok := r.registry.Lookup(e.AdapterID)
		if !ok {
			return nil, "", UnknownAdapterError{AdapterID: e.AdapterID}
		}

		if !adapter.AcceptsShape(value) {
			return nil, "", SerializationError{Type: e, Value: value}
		}

		raw, err := adapter.Serialize(value)
		if err != nil {
			return nil, "", SerializationError{Type: e, Value: value, Cause: err}
		}

		return raw, adapter.MediaType(), nil
	case UnionExpr:
		for _, m := range e.Members {
			if !r.acceptsShape(m, value) {
				continue
			}

			return r.Unresolve(m, value)
		}

		return nil, "", SerializationError{Type: e, Value: value}
	default:
		return nil, "", SerializationError{Type: expr, Value: value}
	}
}

// acceptsShape probes whether the declared type can represent the runtime
// value without performing the serialization.
func (r *Resolver) acceptsShape(expr Expr, value any) bool {
	switch e := expr.(type) {
	case PrimitiveExpr:
		return schema.Scalar(e.Kind).AcceptsShape(value)
	case OptionalExpr:
		if value == nil {
			return true
		}
		return r.acceptsShape(e.Elem, value)
	case SchemaExpr:
		adapter, ok := r.registry.Lookup(e.AdapterID)
		return ok && adapter.AcceptsShape(value)
	case UnionExpr:
		for _, m := range e.Members {
			if r.acceptsShape(m, value) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package bind resolves declared handler types against raw request data.
//
// Routes declare parameter and return types once, at registration, as
// [Expr] values. [Inspect] turns those declarations into an immutable
// [RouteBinding] and a [Pipeline] then binds each incoming request against
// it: raw values are extracted per parameter source, coerced or validated
// into typed values, and handler results are serialized back into
// wire-shaped data.
package bind

import (
	"strings"

	"github.com/z5labs/loam/schema"
)

// Expr is a declared type expression. It is one of [PrimitiveExpr],
// [OptionalExpr], [UnionExpr] or [SchemaExpr].
type Expr interface {
	// String renders the declaration for error reporting and OpenAPI
	// documentation.
	String() string

	sealedExpr()
}

// PrimitiveExpr declares a scalar type with a built-in coercion.
type PrimitiveExpr struct {
	Kind schema.Kind
}

func (PrimitiveExpr) sealedExpr() {}

// String implements the [Expr] interface.
func (e PrimitiveExpr) String() string {
	return e.Kind.String()
}

// String declares a textual parameter.
func String() Expr {
	return PrimitiveExpr{Kind: schema.String}
}

// Int declares an integer parameter. Textual captures are parsed and
// integral floats are accepted, fractional values are rejected.
func Int() Expr {
	return PrimitiveExpr{Kind: schema.Int}
}

// Float declares a floating point parameter.
func Float() Expr {
	return PrimitiveExpr{Kind: schema.Float}
}

// Bool declares a boolean parameter.
func Bool() Expr {
	return PrimitiveExpr{Kind: schema.Bool}
}

// OptionalExpr declares that a value may be absent. An absent raw value
// resolves to nil without ever consulting Elem.
type OptionalExpr struct {
	Elem Expr
}

func (OptionalExpr) sealedExpr() {}

// String implements the [Expr] interface.
func (e OptionalExpr) String() string {
	return "optional(" + e.Elem.String() + ")"
}

// Optional wraps elem so that an absent value is legal.
func Optional(elem Expr) Expr {
	return OptionalExpr{Elem: elem}
}

// UnionExpr declares an ordered set of alternative types. Member order is
// semantically meaningful: resolution tries members strictly in declaration
// order and the first success wins.
type UnionExpr struct {
	Members []Expr
}

func (UnionExpr) sealedExpr() {}

// String implements the [Expr] interface.
func (e UnionExpr) String() string {
	ss := make([]string, len(e.Members))
	for i, m := range e.Members {
		ss[i] = m.String()
	}
	return "union(" + strings.Join(ss, ", ") + ")"
}

// Union declares an ordered union of the given types. Directly nested
// unions are flattened in place so a union never contains another union,
// while the overall declaration order is preserved.
func Union(members ...Expr) Expr {
	flattened := make([]Expr, 0, len(members))
	for _, m := range members {
		u, ok := m.(UnionExpr)
		if !ok {
			flattened = append(flattened, m)
			continue
		}

		flattened = append(flattened, u.Members...)
	}

	return UnionExpr{Members: flattened}
}

// SchemaExpr declares a structured type validated by the adapter registered
// under AdapterID.
type SchemaExpr struct {
	AdapterID string
}

func (SchemaExpr) sealedExpr() {}

// String implements the [Expr] interface.
func (e SchemaExpr) String() string {
	return e.AdapterID
}

// Schema declares a structured type by adapter identifier.
func Schema(adapterID string) Expr {
	return SchemaExpr{AdapterID: adapterID}
}

// mentionsSchema reports whether the declaration references any schema
// adapter, directly or through optional/union wrappers. The signature
// inspector uses it to classify body parameters.
func mentionsSchema(e Expr) bool {
	switch v := e.(type) {
	case SchemaExpr:
		return true
	case OptionalExpr:
		return mentionsSchema(v.Elem)
	case UnionExpr:
		for _, m := range v.Members {
			if mentionsSchema(m) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// acceptsAbsence reports whether the declaration tolerates an absent raw
// value, directly or through a union member. The binding pipeline uses it
// to distinguish an optional omission from a missing required parameter.
func acceptsAbsence(e Expr) bool {
	switch v := e.(type) {
	case OptionalExpr:
		return true
	case UnionExpr:
		for _, m := range v.Members {
			if acceptsAbsence(m) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// adapterIDs collects every adapter identifier referenced by the
// declaration, in declaration order.
func adapterIDs(e Expr) []string {
	switch v := e.(type) {
	case SchemaExpr:
		return []string{v.AdapterID}
	case OptionalExpr:
		return adapterIDs(v.Elem)
	case UnionExpr:
		var ids []string
		for _, m := range v.Members {
			ids = append(ids, adapterIDs(m)...)
		}
		return ids
	default:
		return nil
	}
}

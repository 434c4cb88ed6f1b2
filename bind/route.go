// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package bind

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/z5labs/loam/schema"
)

// ParamSource identifies where a parameter's raw value is extracted from.
type ParamSource int

const (
	SourcePath ParamSource = iota
	SourceQuery
	SourceBody
)

// String implements the [fmt.Stringer] interface.
func (s ParamSource) String() string {
	switch s {
	case SourcePath:
		return "path"
	case SourceQuery:
		return "query"
	case SourceBody:
		return "body"
	default:
		return "unknown"
	}
}

// Param is a handler parameter declaration: a name and a declared type.
// The source is not declared, it is inferred by [Inspect].
type Param struct {
	Name string
	Type Expr
}

// ParamDescriptor is an immutable, classified parameter declaration.
type ParamDescriptor struct {
	Name   string
	Source ParamSource
	Type   Expr
}

// RouteBinding describes one route's parameter sources, declared types and
// return type. It is built once at registration by [Inspect] and shared
// read-only across every request for that route.
type RouteBinding struct {
	Method  string
	Pattern string

	// Params preserves declaration order, which is semantically
	// meaningful for binding and error reporting.
	Params []ParamDescriptor

	// Returns is nil when the handler declares no response body.
	Returns Expr
}

// Matches chi-style placeholders, including ones carrying a regex such as
// {id:[0-9]+}.
var placeholderPattern = regexp.MustCompile(`\{([^}:/]+)(?::[^}]*)?\}`)

// Inspect validates a route declaration against its URL pattern and the
// adapter registry, producing an immutable [RouteBinding].
//
// Each parameter is classified by a fixed rule: a name matching a path
// placeholder is a path parameter, a declared type mentioning a schema
// adapter is the body parameter, anything else is a query parameter. At
// most one body parameter is permitted.
//
// Inspect runs once per registered route at startup. Any error it returns
// is a [ConfigurationError]: a defect in the route declaration, never a
// per-request condition.
func Inspect(method, pattern string, params []Param, returns Expr, registry *schema.Registry) (*RouteBinding, error) {
	configErr := func(cause error) error {
		return ConfigurationError{
			Method:  method,
			Pattern: pattern,
			Cause:   cause,
		}
	}

	placeholders := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllStringSubmatch(pattern, -1) {
		placeholders[m[1]] = true
	}

	declared := make(map[string]bool, len(params))
	descriptors := make([]ParamDescriptor, 0, len(params))

	bodies := 0
	for _, p := range params {
		if declared[p.Name] {
			return nil, configErr(fmt.Errorf("parameter declared twice: %s", p.Name))
		}
		declared[p.Name] = true

		if err := checkAdapters(p.Type, registry); err != nil {
			return nil, configErr(err)
		}

		source := SourceQuery
		switch {
		case placeholders[p.Name]:
			source = SourcePath
		case mentionsSchema(p.Type):
			source = SourceBody
			bodies++
		}

		descriptors = append(descriptors, ParamDescriptor{
			Name:   p.Name,
			Source: source,
			Type:   p.Type,
		})
	}

	if bodies > 1 {
		return nil, configErr(errors.New("at most one body parameter is permitted"))
	}

	for name := range placeholders {
		if !declared[name] {
			return nil, configErr(fmt.Errorf("path placeholder has no declared parameter: %s", name))
		}
	}

	if returns != nil {
		if err := checkAdapters(returns, registry); err != nil {
			return nil, configErr(err)
		}
	}

	return &RouteBinding{
		Method:  method,
		Pattern: pattern,
		Params:  descriptors,
		Returns: returns,
	}, nil
}

func checkAdapters(e Expr, registry *schema.Registry) error {
	for _, id := range adapterIDs(e) {
		if _, ok := registry.Lookup(id); !ok {
			return UnknownAdapterError{AdapterID: id}
		}
	}
	return nil
}

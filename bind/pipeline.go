// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package bind

import (
	"github.com/z5labs/loam/schema"
)

// Source is the per-request raw data a router must expose to the binding
// pipeline: matched path captures, query values and the decoded request
// payload.
type Source interface {
	// PathValue returns the matched path capture for name.
	PathValue(name string) (string, bool)

	// QueryValue returns the query string value for name.
	QueryValue(name string) (string, bool)

	// Body returns the decoded request payload, or nil when the request
	// carries none. The pipeline calls Body at most once per request.
	Body() (any, error)
}

// Args holds the resolved handler arguments for one request, keyed by
// parameter name. It is created per request and discarded after the
// handler call.
type Args struct {
	values  map[string]any
	matched map[string]Expr
}

// Value returns the resolved value for the named parameter. Absent optional
// parameters resolve to nil.
func (a *Args) Value(name string) any {
	return a.values[name]
}

// Matched returns the concrete declaration member that produced the named
// parameter's value. For union-typed parameters this tags which member
// accepted the data, so handlers can dispatch without re-inspecting the
// value.
func (a *Args) Matched(name string) Expr {
	return a.matched[name]
}

// Pipeline binds requests against route bindings and serializes handler
// results. A single Pipeline is shared across all routes and requests.
type Pipeline struct {
	resolver *Resolver
}

// NewPipeline returns a [Pipeline] backed by the given adapter registry.
func NewPipeline(registry *schema.Registry) *Pipeline {
	return &Pipeline{
		resolver: NewResolver(registry),
	}
}

// Resolver returns the pipeline's type resolver.
func (p *Pipeline) Resolver() *Resolver {
	return p.resolver
}

// Bind extracts and resolves every declared parameter of the route from
// the request source.
//
// Failures are collected across all parameters before returning, so a
// single *[BindError] describes every invalid field at once. The handler
// is never invoked partially: any failure means no arguments are produced.
func (p *Pipeline) Bind(rb *RouteBinding, src Source) (*Args, error) {
	args := &Args{
		values:  make(map[string]any, len(rb.Params)),
		matched: make(map[string]Expr, len(rb.Params)),
	}

	var fields []FieldError

	// The payload is extracted at most once, regardless of how the body
	// parameter is declared.
	bodyRead := false
	var body any
	var bodyErr error

	for _, pd := range rb.Params {
		var raw any
		switch pd.Source {
		case SourcePath, SourceQuery:
			s, ok := lookupText(pd, src)
			if !ok {
				// Absence is legal whenever any declared alternative is
				// optional, not just a top-level optional. Resolving nil
				// selects that alternative.
				if !acceptsAbsence(pd.Type) {
					fields = append(fields, FieldError{
						Name: pd.Name,
						Type: pd.Type,
						Err:  MissingParameterError{Name: pd.Name},
					})
					continue
				}

				out, err := p.resolver.Resolve(pd.Type, nil)
				if err != nil {
					fields = append(fields, FieldError{
						Name: pd.Name,
						Type: pd.Type,
						Err:  err,
					})
					continue
				}

				args.values[pd.Name] = out.Value
				args.matched[pd.Name] = out.Matched
				continue
			}

			raw = s
		case SourceBody:
			if !bodyRead {
				body, bodyErr = src.Body()
				bodyRead = true
			}
			if bodyErr != nil {
				fields = append(fields, FieldError{
					Name: pd.Name,
					Type: pd.Type,
					Err:  bodyErr,
				})
				continue
			}

			raw = body
		}

		out, err := p.resolver.Resolve(pd.Type, raw)
		if err != nil {
			fields = append(fields, FieldError{
				Name: pd.Name,
				Type: pd.Type,
				Err:  err,
			})
			continue
		}

		args.values[pd.Name] = out.Value
		args.matched[pd.Name] = out.Matched
	}

	if len(fields) > 0 {
		return nil, &BindError{Fields: fields}
	}

	return args, nil
}

func lookupText(pd ParamDescriptor, src Source) (string, bool) {
	if pd.Source == SourcePath {
		return src.PathValue(pd.Name)
	}
	return src.QueryValue(pd.Name)
}

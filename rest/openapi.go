// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest

import (
	"net/http"
	"strconv"

	"github.com/z5labs/loam/bind"
	"github.com/z5labs/loam/schema"

	"github.com/swaggest/jsonschema-go"
	"github.com/swaggest/openapi-go/openapi3"
	"github.com/z5labs/sdk-go/ptr"
)

// operationSpec documents a route binding as an OpenAPI 3.0 operation.
// Parameter and body schemas are derived from the declared type
// expressions; unions become oneOf schemas.
func operationSpec(rb *bind.RouteBinding, registry *schema.Registry) (openapi3.Operation, error) {
	var op openapi3.Operation

	for _, pd := range rb.Params {
		js, err := exprJSONSchema(pd.Type, registry)
		if err != nil {
			return openapi3.Operation{}, err
		}

		var schemaOrRef openapi3.SchemaOrRef
		schemaOrRef.FromJSONSchema(js.ToSchemaOrBool())

		_, optional := pd.Type.(bind.OptionalExpr)

		switch pd.Source {
		case bind.SourcePath, bind.SourceQuery:
			in := openapi3.ParameterInQuery
			if pd.Source == bind.SourcePath {
				in = openapi3.ParameterInPath
			}

			op.Parameters = append(op.Parameters, openapi3.ParameterOrRef{
				Parameter: &openapi3.Parameter{
					Name:     pd.Name,
					In:       in,
					Required: ptr.Ref(pd.Source == bind.SourcePath || !optional),
					Schema:   &schemaOrRef,
				},
			})
		case bind.SourceBody:
			op.RequestBody = &openapi3.RequestBodyOrRef{
				RequestBody: &openapi3.RequestBody{
					Required: ptr.Ref(!optional),
					Content: map[string]openapi3.MediaType{
						"application/json": {
							Schema: &schemaOrRef,
						},
					},
				},
			}
		}
	}

	responses := make(map[string]openapi3.ResponseOrRef)
	responses[strconv.Itoa(http.StatusUnprocessableEntity)] = openapi3.ResponseOrRef{
		Response: &openapi3.Response{
			Description: "One or more request parameters failed validation.",
		},
	}

	if rb.Returns == nil {
		responses["200"] = openapi3.ResponseOrRef{
			Response: &openapi3.Response{
				Description: "Success with no response body.",
			},
		}
	} else {
		js, err := exprJSONSchema(rb.Returns, registry)
		if err != nil {
			return openapi3.Operation{}, err
		}

		var schemaOrRef openapi3.SchemaOrRef
		schemaOrRef.FromJSONSchema(js.ToSchemaOrBool())

		responses["200"] = openapi3.ResponseOrRef{
			Response: &openapi3.Response{
				Description: "Success.",
				Content: map[string]openapi3.MediaType{
					mediaTypeOf(rb.Returns, registry): {
						Schema: &schemaOrRef,
					},
				},
			},
		}

		if _, optional := rb.Returns.(bind.OptionalExpr); optional {
			responses["404"] = openapi3.ResponseOrRef{
				Response: &openapi3.Response{
					Description: "No value to return.",
				},
			}
		}
	}

	op.Responses = openapi3.Responses{
		MapOfResponseOrRefValues: responses,
	}

	return op, nil
}

func exprJSONSchema(e bind.Expr, registry *schema.Registry) (jsonschema.Schema, error) {
	switch v := e.(type) {
	case bind.PrimitiveExpr:
		var s jsonschema.Schema
		switch v.Kind {
		case schema.String:
			s.AddType(jsonschema.String)
		case schema.Int:
			s.AddType(jsonschema.Integer)
		case schema.Float:
			s.AddType(jsonschema.Number)
		case schema.Bool:
			s.AddType(jsonschema.Boolean)
		}
		return s, nil
	case bind.OptionalExpr:
		s, err := exprJSONSchema(v.Elem, registry)
		if err != nil {
			return jsonschema.Schema{}, err
		}

		s.AddType(jsonschema.Null)
		return s, nil
	case bind.SchemaExpr:
		adapter, ok := registry.Lookup(v.AdapterID)
		if !ok {
			return jsonschema.Schema{}, bind.UnknownAdapterError{AdapterID: v.AdapterID}
		}

		reflector, ok := adapter.(schema.Reflector)
		if !ok {
			return jsonschema.Schema{}, nil
		}

		return reflector.JSONSchema()
	case bind.UnionExpr:
		var s jsonschema.Schema
		for _, m := range v.Members {
			ms, err := exprJSONSchema(m, registry)
			if err != nil {
				return jsonschema.Schema{}, err
			}

			s.OneOf = append(s.OneOf, ms.ToSchemaOrBool())
		}
		return s, nil
	default:
		return jsonschema.Schema{}, nil
	}
}

// mediaTypeOf reports the media type the declared return type serializes
// to. Mixed unions fall back to the first member's adapter, matching the
// declaration-order preference used at serialization time.
func mediaTypeOf(e bind.Expr, registry *schema.Registry) string {
	switch v := e.(type) {
	case bind.PrimitiveExpr:
		return schema.Scalar(v.Kind).MediaType()
	case bind.OptionalExpr:
		return mediaTypeOf(v.Elem, registry)
	case bind.SchemaExpr:
		adapter, ok := registry.Lookup(v.AdapterID)
		if !ok {
			return "application/json"
		}
		return adapter.MediaType()
	case bind.UnionExpr:
		if len(v.Members) == 0 {
			return "application/json"
		}
		return mediaTypeOf(v.Members[0], registry)
	default:
		return "application/json"
	}
}

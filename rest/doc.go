// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package rest mounts the typed binding pipeline onto a chi router.
//
// # Overview
//
// The rest package wires the bind and schema packages into the HTTP
// request lifecycle:
//   - Operation declarations are inspected once at registration, producing
//     immutable route bindings
//   - Incoming requests are bound before handler execution; every invalid
//     parameter is reported in one 422 problem+json response
//   - Handler results are serialized against the declared return type; a
//     result the declaration cannot represent is a 500, never a client error
//   - Automatic OpenAPI 3.0 schema generation at GET /openapi.json
//   - Health check endpoints (liveness/readiness)
//   - OpenTelemetry instrumentation
//
// # Quick Start
//
// Creating a basic API:
//
//	registry := schema.NewRegistry()
//	registry.Register("user", schema.Struct[User]())
//
//	api := rest.NewApi("My API", "v1.0.0", registry)
//	http.ListenAndServe(":8080", api)
//
// # Adding Operations
//
// Use the Operation function to register HTTP operations:
//
//	getUser := rest.Operation(
//	    http.MethodGet,
//	    rest.BasePath("/users").Param("user_id"),
//	    getUserHandler,
//	    rest.Param("user_id", bind.Int()),
//	    rest.Param("verbose", bind.Optional(bind.Bool())),
//	    rest.Returns(bind.Optional(bind.Schema("user"))),
//	)
//	api := rest.NewApi("User Service", "v1.0.0", registry, getUser)
//
// Parameter sources are inferred, never declared: a parameter whose name
// matches a path placeholder binds from the path, a parameter whose type
// references a schema adapter binds from the request body, and everything
// else binds from the query string.
//
// # Union Types
//
// A parameter or return type may be declared as a union across adapters
// from unrelated validation libraries:
//
//	rest.Param("user", bind.Union(bind.Schema("user_v2"), bind.Schema("user_v1")))
//
// Members are tried in declaration order and the first one to accept the
// payload wins. Handlers receive the matched member alongside the value,
// so dispatching on the winning alternative is explicit:
//
//	switch args.Matched("user") {
//	case bind.Schema("user_v2"):
//	    ...
//	case bind.Schema("user_v1"):
//	    ...
//	}
package rest

// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/z5labs/loam"
	"github.com/z5labs/loam/bind"
	"github.com/z5labs/loam/health"
	"github.com/z5labs/loam/schema"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/openapi-go/openapi3"
)

// ApiOptions holds configuration values used when constructing an [Api]:
// the router, the OpenAPI specification, the adapter registry and the
// binding pipeline shared by every operation.
type ApiOptions struct {
	mux      *chi.Mux
	def      *openapi3.Spec
	registry *schema.Registry
	pipeline *bind.Pipeline

	readiness http.Handler
	liveness  http.Handler
}

// ApiOption is an interface for configuring an [Api].
//
// Common implementations include:
//   - [Operation] - registers HTTP operations
//   - [Readiness] - configures readiness probe endpoint
//   - [Liveness] - configures liveness probe endpoint
//   - [NotFound] - customizes 404 handling
//   - [MethodNotAllowed] - customizes 405 handling
type ApiOption interface {
	ApplyApiOption(*ApiOptions)
}

type apiOptionFunc func(*ApiOptions)

func (f apiOptionFunc) ApplyApiOption(ao *ApiOptions) {
	f(ao)
}

// Readiness configures a custom readiness probe endpoint at GET /health/readiness.
// Readiness probes indicate whether the application is ready to serve traffic.
func Readiness(m health.Monitor) ApiOption {
	return apiOptionFunc(func(ao *ApiOptions) {
		ao.readiness = healthHandler{monitor: m}
	})
}

// Liveness configures a custom liveness probe endpoint at GET /health/liveness.
// Liveness probes indicate whether the application is running and should be
// restarted if it becomes unresponsive.
func Liveness(m health.Monitor) ApiOption {
	return apiOptionFunc(func(ao *ApiOptions) {
		ao.liveness = healthHandler{monitor: m}
	})
}

// NotFound configures a custom handler for requests that don't match any
// registered routes. This overrides the default 404 Not Found behavior.
func NotFound(h http.Handler) ApiOption {
	return apiOptionFunc(func(ao *ApiOptions) {
		ao.mux.NotFound(h.ServeHTTP)
	})
}

// MethodNotAllowed configures a custom handler for requests to valid routes
// with unsupported HTTP methods. This overrides the default 405 Method Not
// Allowed behavior.
func MethodNotAllowed(h http.Handler) ApiOption {
	return apiOptionFunc(func(ao *ApiOptions) {
		ao.mux.MethodNotAllowed(h.ServeHTTP)
	})
}

// Api is an OpenAPI-compliant [http.Handler] whose operations bind typed
// request data before handler execution and serialize typed results after.
//
// # Standard Features
//
// Every Api automatically provides:
//   - OpenAPI 3.0 schema available at GET /openapi.json
//   - Default liveness probe at GET /health/liveness
//   - Default readiness probe at GET /health/readiness
//   - Standard 404 Not Found handling
//   - Standard 405 Method Not Allowed handling
type Api struct {
	router *chi.Mux
}

// NewApi creates a new [Api] with the specified title and version.
//
// The registry supplies the schema adapters referenced by operation type
// declarations. It must be fully populated before NewApi is called: route
// bindings are inspected against it at registration and it is never
// mutated afterwards.
//
// Example:
//
//	registry := schema.NewRegistry()
//	registry.Register("user", schema.Struct[User]())
//
//	api := rest.NewApi(
//	    "User Service",
//	    "v1.0.0",
//	    registry,
//	    rest.Operation(http.MethodGet, rest.BasePath("/users").Param("id"), getUser,
//	        rest.Param("id", bind.Int()),
//	        rest.Returns(bind.Optional(bind.Schema("user"))),
//	    ),
//	)
//	http.ListenAndServe(":8080", api)
func NewApi(title, version string, registry *schema.Registry, opts ...ApiOption) *Api {
	log := loam.Logger("github.com/z5labs/loam/rest")

	alive := &health.Binary{}
	alive.MarkHealthy()

	ao := &ApiOptions{
		mux: chi.NewMux(),
		def: &openapi3.Spec{
			Openapi: "3.0",
			Info: openapi3.Info{
				Title:   title,
				Version: version,
			},
		},
		registry:  registry,
		pipeline:  bind.NewPipeline(registry),
		readiness: healthHandler{monitor: alive},
		liveness:  healthHandler{monitor: alive},
	}
	for _, opt := range opts {
		opt.ApplyApiOption(ao)
	}

	ao.mux.Method(http.MethodGet, "/health/readiness", ao.readiness)
	ao.mux.Method(http.MethodGet, "/health/liveness", ao.liveness)

	ao.mux.Get("/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		enc := json.NewEncoder(w)
		err := enc.Encode(ao.def)
		if err == nil {
			return
		}
		log.ErrorContext(
			r.Context(),
			"failed to encode openapi schema to json",
			slog.Any("error", err),
		)
	})

	return &Api{
		router: ao.mux,
	}
}

// ServeHTTP implements the [http.Handler] interface.
// It delegates request handling to the configured router, which dispatches
// requests to the appropriate operation handlers based on method and path.
func (api *Api) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	api.router.ServeHTTP(w, req)
}

// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/z5labs/loam"
	"github.com/z5labs/loam/bind"

	"github.com/z5labs/sdk-go/try"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Handler is the application-side implementation of one operation. It
// receives fully resolved, already disambiguated arguments: union-typed
// parameters arrive tagged with the member that matched, so handler code
// dispatches on [bind.Args.Matched] instead of re-inspecting raw data.
type Handler interface {
	Handle(context.Context, *bind.Args) (any, error)
}

// HandlerFunc is an adapter to allow the use of ordinary functions
// as [Handler]s.
type HandlerFunc func(context.Context, *bind.Args) (any, error)

// Handle implements the [Handler] interface.
func (f HandlerFunc) Handle(ctx context.Context, args *bind.Args) (any, error) {
	return f(ctx, args)
}

// OperationOptions holds the declared signature for an HTTP operation
// registered with [Operation]: its parameters, return type and error
// handling.
type OperationOptions struct {
	params     []bind.Param
	returns    bind.Expr
	errHandler ErrorHandler
}

// OperationOption configures an operation created by [Operation].
type OperationOption func(*OperationOptions)

// Param declares a named, typed handler parameter. Declaration order is
// preserved and its source is inferred at registration: a name matching a
// path placeholder is a path parameter, a type referencing a schema
// adapter is the body parameter, anything else is a query parameter.
func Param(name string, t bind.Expr) OperationOption {
	return func(oo *OperationOptions) {
		oo.params = append(oo.params, bind.Param{
			Name: name,
			Type: t,
		})
	}
}

// Returns declares the operation's return type. Without it the handler
// result is ignored and the response body is left empty.
func Returns(t bind.Expr) OperationOption {
	return func(oo *OperationOptions) {
		oo.returns = t
	}
}

// OnError configures a custom [ErrorHandler] for an operation.
// If not specified, operations use a default error handler that logs errors
// and returns RFC 7807 problem responses.
func OnError(eh ErrorHandler) OperationOption {
	return func(oo *OperationOptions) {
		oo.errHandler = eh
	}
}

type operation struct {
	tracer     trace.Tracer
	errHandler ErrorHandler
	pipeline   *bind.Pipeline
	binding    *bind.RouteBinding
	handler    Handler
}

// Operation registers an HTTP operation (endpoint) with an [Api].
//
// At registration the declared signature is inspected once against the
// api's adapter registry, producing the immutable route binding shared by
// every request for this route. An invalid declaration (a placeholder with
// no matching parameter, an unknown adapter identifier, more than one body
// parameter) panics at startup rather than surfacing per request.
//
// Example:
//
//	createUser := rest.Operation(
//	    http.MethodPost,
//	    rest.BasePath("/users"),
//	    createUserHandler,
//	    rest.Param("user", bind.Union(bind.Schema("user_v2"), bind.Schema("user_v1"))),
//	    rest.Returns(bind.Schema("user_v2")),
//	)
//	api := rest.NewApi("User API", "v1.0.0", registry, createUser)
func Operation(method string, path Path, h Handler, opts ...OperationOption) ApiOption {
	return apiOptionFunc(func(ao *ApiOptions) {
		oo := &OperationOptions{
			errHandler: defaultErrorHandler(loam.LogHandler("rest")),
		}
		for _, opt := range opts {
			opt(oo)
		}

		endpoint := path.String()

		binding, err := bind.Inspect(method, endpoint, oo.params, oo.returns, ao.registry)
		if err != nil {
			panic(err)
		}

		op, err := operationSpec(binding, ao.registry)
		if err != nil {
			panic(err)
		}

		err = ao.def.AddOperation(method, endpoint, op)
		if err != nil {
			panic(err)
		}

		ao.mux.Method(method, endpoint, otelhttp.WithRouteTag(endpoint, &operation{
			tracer:     otel.Tracer("github.com/z5labs/loam/rest"),
			errHandler: oo.errHandler,
			pipeline:   ao.pipeline,
			binding:    binding,
			handler:    h,
		}))
	})
}

// ServeHTTP implements the [http.Handler] interface.
func (o *operation) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var err error
	defer func() {
		if err == nil {
			return
		}

		o.errHandler.OnError(ctx, w, err)
	}()
	defer try.Recover(&err)

	args, err := o.bindRequest(ctx, r)
	if err != nil {
		return
	}

	result, err := o.handler.Handle(ctx, args)
	if err != nil {
		return
	}

	err = o.writeResponse(ctx, w, result)
}

func (o *operation) bindRequest(ctx context.Context, r *http.Request) (*bind.Args, error) {
	_, span := o.tracer.Start(ctx, "operation.bindRequest")
	defer span.End()

	return o.pipeline.Bind(o.binding, &httpSource{r: r})
}

func (o *operation) writeResponse(ctx context.Context, w http.ResponseWriter, result any) error {
	_, span := o.tracer.Start(ctx, "operation.writeResponse")
	defer span.End()

	resp, err := o.pipeline.Respond(o.binding.Returns, result)
	if err != nil {
		return err
	}

	if resp.Body == nil {
		w.WriteHeader(resp.Status)
		return nil
	}

	w.Header().Set("Content-Type", resp.MediaType)
	w.WriteHeader(resp.Status)

	if strings.HasPrefix(resp.MediaType, "application/json") {
		enc := json.NewEncoder(w)
		return enc.Encode(resp.Body)
	}

	_, err = fmt.Fprintf(w, "%v", resp.Body)
	return err
}

// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/z5labs/loam/bind"
)

// HttpResponseWriter is an interface for errors that can write their own
// HTTP responses. When an error implementing this interface is returned
// from an operation handler, its WriteHttpResponse method is called to
// generate the HTTP response.
//
// This allows custom error types to control status codes and response bodies.
type HttpResponseWriter interface {
	WriteHttpResponse(context.Context, http.ResponseWriter)
}

// ErrorHandler handles errors that occur during request processing.
// The default error handler logs errors and returns RFC 7807 problem
// responses: 422 for binding failures, 500 for serialization faults and
// anything else.
//
// Custom error handlers can be configured per-operation using [OnError].
type ErrorHandler interface {
	OnError(context.Context, http.ResponseWriter, error)
}

// ErrorHandlerFunc is a function adapter that implements [ErrorHandler].
type ErrorHandlerFunc func(context.Context, http.ResponseWriter, error)

func (f ErrorHandlerFunc) OnError(ctx context.Context, w http.ResponseWriter, err error) {
	f(ctx, w, err)
}

func defaultErrorHandler(h slog.Handler) ErrorHandlerFunc {
	log := slog.New(h)

	return func(ctx context.Context, w http.ResponseWriter, err error) {
		log.ErrorContext(ctx, "sending error response", slog.Any("error", err))

		// Client input failures carry the complete per-parameter picture.
		var bindErr *bind.BindError
		if errors.As(err, &bindErr) {
			writeProblem(ctx, log, w, validationProblemOf(bindErr))
			return
		}

		// A handler returned a value its declared return type cannot
		// represent. This is a server defect, never a client error.
		var serErr bind.SerializationError
		if errors.As(err, &serErr) {
			writeProblem(ctx, log, w, ProblemDetail{
				Type:   "about:blank",
				Title:  "Response Serialization Failed",
				Status: http.StatusInternalServerError,
				Detail: "The handler returned a value its declared return type cannot represent.",
			})
			return
		}

		hrw, ok := err.(HttpResponseWriter)
		if ok {
			hrw.WriteHttpResponse(ctx, w)
			return
		}

		writeProblem(ctx, log, w, ProblemDetail{
			Type:   "about:blank",
			Title:  "Internal Server Error",
			Status: http.StatusInternalServerError,
			Detail: "An internal server error occurred.",
		})
	}
}

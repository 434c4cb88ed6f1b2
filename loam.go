// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package loam binds typed HTTP request data to handler arguments and typed
// handler results back to response bodies.
//
// Handlers declare parameter and return types once, at route registration.
// Types may be plain scalars, optionals, structured schemas backed by a
// validation library, or unions across several of them. The bind package
// resolves raw request data against those declarations, the schema package
// supplies the pluggable validation strategies, and the rest package mounts
// the whole pipeline onto a chi router.
package loam

import (
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
)

// Logger returns a [slog.Logger] which is backed by the
// OTel Logs Bridge API.
func Logger(name string) *slog.Logger {
	return otelslog.NewLogger(name)
}

// LogHandler returns a [slog.Handler] which is backed by the
// OTel Logs Bridge API.
func LogHandler(name string) slog.Handler {
	return otelslog.NewHandler(name)
}

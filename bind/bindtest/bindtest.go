// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package bindtest provides an in-memory [bind.Source] for exercising the
// binding pipeline without a HTTP server.
package bindtest

// Request is an in-memory request source. The zero value is a request with
// no captures, no query values and no payload.
type Request struct {
	Path    map[string]string
	Query   map[string]string
	Payload any

	// PayloadErr, when set, simulates a payload which could not be
	// decoded.
	PayloadErr error
}

// PathValue implements the [bind.Source] interface.
func (r *Request) PathValue(name string) (string, bool) {
	v, ok := r.Path[name]
	return v, ok
}

// QueryValue implements the [bind.Source] interface.
func (r *Request) QueryValue(name string) (string, bool) {
	v, ok := r.Query[name]
	return v, ok
}

// Body implements the [bind.Source] interface.
func (r *Request) Body() (any, error) {
	if r.PayloadErr != nil {
		return nil, r.PayloadErr
	}
	return r.Payload, nil
}

// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package bind

import (
	"net/http"
)

// Response is the wire-shaped result of serializing a handler return
// value. A nil Body means the response carries no body at all.
type Response struct {
	Status    int
	MediaType string
	Body      any
}

// Respond serializes a handler result against the declared return type.
//
// A nil return type means the handler declared no response body: the
// result is ignored and an empty 200 response is produced. A nil result
// for an optional return type produces an empty 404 response. Everything
// else is serialized by the matched adapter, which also selects the media
// type.
func (p *Pipeline) Respond(returns Expr, result any) (Response, error) {
	if returns == nil {
		return Response{Status: http.StatusOK}, nil
	}

	raw, mediaType, err := p.resolver.Unresolve(returns, result)
	if err != nil {
		return Response{}, err
	}

	if raw == nil {
		return Response{Status: http.StatusNotFound}, nil
	}

	return Response{
		Status:    http.StatusOK,
		MediaType: mediaType,
		Body:      raw,
	}, nil
}

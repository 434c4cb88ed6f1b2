// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/z5labs/sdk-go/try"
)

// InvalidContentTypeError is returned when a request carries a payload
// whose content type the operation does not consume.
type InvalidContentTypeError struct {
	ContentType string
}

// Error implements the error interface.
func (e InvalidContentTypeError) Error() string {
	return fmt.Sprintf("invalid content type: %s", e.ContentType)
}

// httpSource adapts a [http.Request] matched by chi into the raw data
// source consumed by the binding pipeline.
type httpSource struct {
	r *http.Request
}

// PathValue implements the [bind.Source] interface. The capture keys are
// checked directly so a matched-but-empty capture is not mistaken for an
// absent one.
func (s *httpSource) PathValue(name string) (string, bool) {
	rctx := chi.RouteContext(s.r.Context())
	if rctx == nil {
		return "", false
	}

	for i, k := range rctx.URLParams.Keys {
		if k == name {
			return rctx.URLParams.Values[i], true
		}
	}

	return "", false
}

// QueryValue implements the [bind.Source] interface.
func (s *httpSource) QueryValue(name string) (string, bool) {
	vs, ok := s.r.URL.Query()[name]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// Body implements the [bind.Source] interface. The payload is read and
// decoded once; an absent payload yields nil.
func (s *httpSource) Body() (_ any, err error) {
	defer try.Close(&err, s.r.Body)

	b, err := io.ReadAll(s.r.Body)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}

	contentType := s.r.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		return nil, InvalidContentTypeError{
			ContentType: contentType,
		}
	}

	var raw any
	err = json.Unmarshal(b, &raw)
	if err != nil {
		return nil, err
	}

	return raw, nil
}

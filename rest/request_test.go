// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chiRequest(t *testing.T, params map[string]string) *http.Request {
	t.Helper()

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestHttpSource_PathValue(t *testing.T) {
	t.Run("returns a matched capture", func(t *testing.T) {
		src := &httpSource{r: chiRequest(t, map[string]string{"user_id": "1"})}

		v, ok := src.PathValue("user_id")
		require.True(t, ok)
		assert.Equal(t, "1", v)
	})

	t.Run("distinguishes a matched empty capture from an absent one", func(t *testing.T) {
		src := &httpSource{r: chiRequest(t, map[string]string{"user_id": ""})}

		v, ok := src.PathValue("user_id")
		require.True(t, ok)
		assert.Empty(t, v)

		_, ok = src.PathValue("order_id")
		assert.False(t, ok)
	})

	t.Run("reports every capture absent outside a routed request", func(t *testing.T) {
		src := &httpSource{r: httptest.NewRequest(http.MethodGet, "/", nil)}

		_, ok := src.PathValue("user_id")
		assert.False(t, ok)
	})
}

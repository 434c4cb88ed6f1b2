// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package bind_test

import (
	"net/http"
	"testing"

	"github.com/z5labs/loam/bind"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	t.Run("classifies parameters by placeholder, schema and fallthrough", func(t *testing.T) {
		rb, err := bind.Inspect(
			http.MethodPost,
			"/users/{user_id}",
			[]bind.Param{
				{Name: "user_id", Type: bind.Int()},
				{Name: "verbose", Type: bind.Optional(bind.Bool())},
				{Name: "user", Type: bind.Schema("user_v1")},
			},
			nil,
			newUserRegistry(t),
		)
		require.NoError(t, err)

		require.Len(t, rb.Params, 3)
		assert.Equal(t, bind.SourcePath, rb.Params[0].Source)
		assert.Equal(t, bind.SourceQuery, rb.Params[1].Source)
		assert.Equal(t, bind.SourceBody, rb.Params[2].Source)
	})

	t.Run("a union mentioning a schema adapter binds from the body", func(t *testing.T) {
		rb, err := bind.Inspect(
			http.MethodPost,
			"/users",
			[]bind.Param{
				{Name: "user", Type: bind.Union(bind.Schema("user_v2"), bind.Schema("user_v1"))},
			},
			nil,
			newUserRegistry(t),
		)
		require.NoError(t, err)

		assert.Equal(t, bind.SourceBody, rb.Params[0].Source)
	})

	t.Run("a placeholder name wins over a schema mention", func(t *testing.T) {
		rb, err := bind.Inspect(
			http.MethodGet,
			"/users/{user}",
			[]bind.Param{
				{Name: "user", Type: bind.Schema("user_v1")},
			},
			nil,
			newUserRegistry(t),
		)
		require.NoError(t, err)

		assert.Equal(t, bind.SourcePath, rb.Params[0].Source)
	})

	t.Run("matches placeholders carrying a regex", func(t *testing.T) {
		rb, err := bind.Inspect(
			http.MethodGet,
			"/users/{user_id:[0-9]+}",
			[]bind.Param{
				{Name: "user_id", Type: bind.Int()},
			},
			nil,
			newUserRegistry(t),
		)
		require.NoError(t, err)

		assert.Equal(t, bind.SourcePath, rb.Params[0].Source)
	})

	t.Run("rejects a parameter declared twice", func(t *testing.T) {
		_, err := bind.Inspect(
			http.MethodGet,
			"/users",
			[]bind.Param{
				{Name: "verbose", Type: bind.Bool()},
				{Name: "verbose", Type: bind.Bool()},
			},
			nil,
			newUserRegistry(t),
		)

		var cerr bind.ConfigurationError
		require.ErrorAs(t, err, &cerr)
	})

	t.Run("rejects more than one body parameter", func(t *testing.T) {
		_, err := bind.Inspect(
			http.MethodPost,
			"/users",
			[]bind.Param{
				{Name: "user", Type: bind.Schema("user_v1")},
				{Name: "other", Type: bind.Schema("user_v2")},
			},
			nil,
			newUserRegistry(t),
		)

		var cerr bind.ConfigurationError
		require.ErrorAs(t, err, &cerr)
	})

	t.Run("rejects a placeholder with no declared parameter", func(t *testing.T) {
		_, err := bind.Inspect(
			http.MethodGet,
			"/users/{user_id}",
			nil,
			nil,
			newUserRegistry(t),
		)

		var cerr bind.ConfigurationError
		require.ErrorAs(t, err, &cerr)
	})

	t.Run("rejects a parameter referencing an unregistered adapter", func(t *testing.T) {
		_, err := bind.Inspect(
			http.MethodPost,
			"/users",
			[]bind.Param{
				{Name: "user", Type: bind.Schema("nope")},
			},
			nil,
			newUserRegistry(t),
		)

		var cerr bind.ConfigurationError
		require.ErrorAs(t, err, &cerr)

		var uerr bind.UnknownAdapterError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, "nope", uerr.AdapterID)
	})

	t.Run("rejects a return type referencing an unregistered adapter", func(t *testing.T) {
		_, err := bind.Inspect(
			http.MethodGet,
			"/users",
			nil,
			bind.Optional(bind.Schema("nope")),
			newUserRegistry(t),
		)

		var cerr bind.ConfigurationError
		require.ErrorAs(t, err, &cerr)
	})
}

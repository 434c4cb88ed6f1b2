// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalar_Parse(t *testing.T) {
	t.Run("coerces integral text into an int", func(t *testing.T) {
		v, err := Scalar(Int).Parse("42")
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("coerces integral floating point text into an int", func(t *testing.T) {
		v, err := Scalar(Int).Parse("42.0")
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("rejects fractional text for an int", func(t *testing.T) {
		_, err := Scalar(Int).Parse("1.5")

		var cerr CoercionError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, Int, cerr.Kind)
	})

	t.Run("rejects non-numeric text for an int", func(t *testing.T) {
		_, err := Scalar(Int).Parse("abc")

		var cerr CoercionError
		require.ErrorAs(t, err, &cerr)
	})

	t.Run("accepts an integral json number for an int", func(t *testing.T) {
		v, err := Scalar(Int).Parse(float64(7))
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("rejects a fractional json number for an int", func(t *testing.T) {
		_, err := Scalar(Int).Parse(1.5)

		var cerr CoercionError
		require.ErrorAs(t, err, &cerr)
	})

	t.Run("parses textual floats", func(t *testing.T) {
		v, err := Scalar(Float).Parse("1.5")
		require.NoError(t, err)
		assert.Equal(t, 1.5, v)
	})

	t.Run("parses textual bools", func(t *testing.T) {
		v, err := Scalar(Bool).Parse("true")
		require.NoError(t, err)
		assert.Equal(t, true, v)
	})

	t.Run("rejects non-boolean text for a bool", func(t *testing.T) {
		_, err := Scalar(Bool).Parse("yes please")

		var cerr CoercionError
		require.ErrorAs(t, err, &cerr)
	})

	t.Run("passes strings through unchanged", func(t *testing.T) {
		v, err := Scalar(String).Parse("hello")
		require.NoError(t, err)
		assert.Equal(t, "hello", v)
	})

	t.Run("rejects non-textual raw data for a string", func(t *testing.T) {
		_, err := Scalar(String).Parse(1.0)

		var cerr CoercionError
		require.ErrorAs(t, err, &cerr)
	})
}

func TestScalar_Serialize(t *testing.T) {
	t.Run("round-trips a parsed value", func(t *testing.T) {
		v, err := Scalar(Int).Parse("42")
		require.NoError(t, err)

		raw, err := Scalar(Int).Serialize(v)
		require.NoError(t, err)
		assert.Equal(t, 42, raw)
	})

	t.Run("rejects values of the wrong shape", func(t *testing.T) {
		_, err := Scalar(Bool).Serialize("true")

		var cerr CoercionError
		require.ErrorAs(t, err, &cerr)
	})
}

func TestScalar_AcceptsShape(t *testing.T) {
	t.Run("int accepts integral floats but not fractional ones", func(t *testing.T) {
		assert.True(t, Scalar(Int).AcceptsShape(float64(3)))
		assert.False(t, Scalar(Int).AcceptsShape(3.5))
	})

	t.Run("float accepts ints", func(t *testing.T) {
		assert.True(t, Scalar(Float).AcceptsShape(3))
	})

	t.Run("string only accepts strings", func(t *testing.T) {
		assert.True(t, Scalar(String).AcceptsShape("x"))
		assert.False(t, Scalar(String).AcceptsShape(1))
	})
}

// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest_test

import (
	"testing"

	"github.com/z5labs/loam/rest"

	"github.com/stretchr/testify/assert"
)

func TestPath(t *testing.T) {
	t.Run("joins static segments", func(t *testing.T) {
		p := rest.BasePath("/api").Segment("v1").Segment("users")
		assert.Equal(t, "/api/v1/users", p.String())
	})

	t.Run("renders parameters as placeholders", func(t *testing.T) {
		p := rest.BasePath("/users").Param("user_id").Segment("orders").Param("order_id")
		assert.Equal(t, "/users/{user_id}/orders/{order_id}", p.String())
	})
}

// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinary(t *testing.T) {
	t.Run("the zero value is unhealthy", func(t *testing.T) {
		var b Binary

		healthy, err := b.Healthy(context.Background())
		require.NoError(t, err)
		assert.False(t, healthy)
	})

	t.Run("transitions between states", func(t *testing.T) {
		var b Binary
		b.MarkHealthy()

		healthy, err := b.Healthy(context.Background())
		require.NoError(t, err)
		assert.True(t, healthy)

		b.MarkUnhealthy()

		healthy, err = b.Healthy(context.Background())
		require.NoError(t, err)
		assert.False(t, healthy)
	})
}

func TestAll(t *testing.T) {
	t.Run("is healthy only when every member is", func(t *testing.T) {
		var a, b Binary
		a.MarkHealthy()
		b.MarkHealthy()

		healthy, err := All{&a, &b}.Healthy(context.Background())
		require.NoError(t, err)
		assert.True(t, healthy)

		b.MarkUnhealthy()

		healthy, err = All{&a, &b}.Healthy(context.Background())
		require.NoError(t, err)
		assert.False(t, healthy)
	})

	t.Run("fails fast on an error", func(t *testing.T) {
		monitorErr := errors.New("probe failed")

		healthy, err := All{
			MonitorFunc(func(ctx context.Context) (bool, error) {
				return false, monitorErr
			}),
			MonitorFunc(func(ctx context.Context) (bool, error) {
				t.Fatal("should not be consulted")
				return true, nil
			}),
		}.Healthy(context.Background())

		require.ErrorIs(t, err, monitorErr)
		assert.False(t, healthy)
	})
}

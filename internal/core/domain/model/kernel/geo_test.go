package kernel_test

import (
	"testing"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid_coordinates", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(12.9716, 77.5946)

		require.NoError(t, err)
		assert.InDelta(t, 12.9716, p.Latitude(), 1e-9)
		assert.InDelta(t, 77.5946, p.Longitude(), 1e-9)
	})

	t.Run("boundary_values", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90, 180)
		require.NoError(t, err)

		_, err = kernel.NewGeoPoint(-90, -180)
		require.NoError(t, err)
	})

	t.Run("latitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(91, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("longitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -181)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, err := kernel.NewGeoPoint(10, 20)
	require.NoError(t, err)
	b, err := kernel.NewGeoPoint(10, 20)
	require.NoError(t, err)
	c, err := kernel.NewGeoPoint(10, 21)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

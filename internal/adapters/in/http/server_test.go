package http

import (
	"testing"

	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(v float64) *float64 { return &v }

func TestClientLocation_BothCoordinates(t *testing.T) {
	point, err := clientLocation(float(51.5237), float(-0.1586))
	require.NoError(t, err)
	require.NotNil(t, point)
	assert.InDelta(t, 51.5237, point.Latitude(), 0.0001)
	assert.InDelta(t, -0.1586, point.Longitude(), 0.0001)
}

func TestClientLocation_Absent(t *testing.T) {
	point, err := clientLocation(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, point)
}

func TestClientLocation_HalfPairRejected(t *testing.T) {
	_, err := clientLocation(float(51.5237), nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = clientLocation(nil, float(-0.1586))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestClientLocation_OutOfRangeRejected(t *testing.T) {
	_, err := clientLocation(float(120), float(-0.1586))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

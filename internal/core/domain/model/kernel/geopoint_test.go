package kernel_test

import (
	"math"
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create valid point", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(41.3275, 19.8187)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InDelta(t, 41.3275, p.Lat(), 1e-9)
		assert.InDelta(t, 19.8187, p.Lon(), 1e-9)
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90, 180)
		require.NoError(t, err)

		_, err = kernel.NewGeoPoint(-90, -180)
		require.NoError(t, err)
	})

	t.Run("should fail with latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(95, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -181)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with NaN coordinates", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(math.NaN(), math.NaN())

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p kernel.GeoPoint

		require.Error(t, p.Validate())
	})
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	t.Run("distance to itself is zero", func(t *testing.T) {
		p, _ := kernel.NewGeoPoint(41.3275, 19.8187)

		km, err := p.DistanceKm(p)

		require.NoError(t, err)
		assert.InDelta(t, 0, km, 1e-9)
	})

	t.Run("computes known great-circle distance", func(t *testing.T) {
		// Rome and Milan city centers are roughly 477 km apart.
		rome, _ := kernel.NewGeoPoint(41.9028, 12.4964)
		milan, _ := kernel.NewGeoPoint(45.4642, 9.1900)

		km, err := rome.DistanceKm(milan)

		require.NoError(t, err)
		assert.InDelta(t, 477, km, 5)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(41.9028, 12.4964)
		b, _ := kernel.NewGeoPoint(45.4642, 9.1900)

		ab, err := a.DistanceKm(b)
		require.NoError(t, err)
		ba, err := b.DistanceKm(a)
		require.NoError(t, err)

		assert.InDelta(t, ab, ba, 1e-9)
	})

	t.Run("one degree of latitude is about 111 km", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(0, 0)
		b, _ := kernel.NewGeoPoint(1, 0)

		km, err := a.DistanceKm(b)

		require.NoError(t, err)
		assert.InDelta(t, 111.19, km, 0.5)
	})

	t.Run("fails for unconstructed points", func(t *testing.T) {
		var invalid kernel.GeoPoint
		valid, _ := kernel.NewGeoPoint(1, 1)

		_, err := valid.DistanceKm(invalid)

		require.Error(t, err)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, _ := kernel.NewGeoPoint(41.3275, 19.8187)
	b, _ := kernel.NewGeoPoint(41.3275, 19.8187)
	c, _ := kernel.NewGeoPoint(42.0, 19.8187)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)
}

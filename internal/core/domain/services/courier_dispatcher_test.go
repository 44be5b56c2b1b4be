package services_test

import (
	"testing"

	"storefront/internal/core/domain/model/courier"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGeoPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()

	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)

	return p
}

func newTestCourier(
	t *testing.T, name string, status courier.Status, available bool, location *kernel.GeoPoint,
) *courier.Courier {
	t.Helper()

	c, err := courier.NewCourier(kernel.NewUUID(), name, status, available, location, 4.8, 120)
	require.NoError(t, err)

	return c
}

func TestCourierDispatcher_FindNearest(t *testing.T) {
	dispatcher := services.NewCourierDispatcher()
	pickup := mustGeoPoint(t, 41.3275, 19.8187)

	// One degree of latitude is roughly 111 km, so offsetting latitude
	// alone gives predictable distance ordering.
	farPoint := mustGeoPoint(t, pickup.Lat()+0.027, pickup.Lon())    // ~3.0 km
	nearPoint := mustGeoPoint(t, pickup.Lat()+0.0108, pickup.Lon())  // ~1.2 km
	remotePoint := mustGeoPoint(t, pickup.Lat()+0.0495, pickup.Lon()) // ~5.5 km

	t.Run("should pick the nearest dispatchable courier", func(t *testing.T) {
		far := newTestCourier(t, "far", courier.Active, true, &farPoint)
		near := newTestCourier(t, "near", courier.Active, true, &nearPoint)
		remote := newTestCourier(t, "remote", courier.Active, true, &remotePoint)

		got, err := dispatcher.FindNearest(pickup, []*courier.Courier{far, near, remote})

		require.NoError(t, err)
		assert.True(t, got.ID().IsEqual(near.ID()))
	})

	t.Run("should skip couriers that are not dispatchable", func(t *testing.T) {
		inactive := newTestCourier(t, "inactive", courier.Inactive, true, &nearPoint)
		suspended := newTestCourier(t, "suspended", courier.Suspended, true, &nearPoint)
		busy := newTestCourier(t, "busy", courier.Active, false, &nearPoint)
		noPosition := newTestCourier(t, "no position", courier.Active, true, nil)
		far := newTestCourier(t, "far", courier.Active, true, &remotePoint)

		got, err := dispatcher.FindNearest(pickup,
			[]*courier.Courier{inactive, suspended, busy, noPosition, far})

		require.NoError(t, err)
		assert.True(t, got.ID().IsEqual(far.ID()))
	})

	t.Run("should break ties in favor of the first candidate", func(t *testing.T) {
		first := newTestCourier(t, "first", courier.Active, true, &nearPoint)
		second := newTestCourier(t, "second", courier.Active, true, &nearPoint)

		got, err := dispatcher.FindNearest(pickup, []*courier.Courier{first, second})

		require.NoError(t, err)
		assert.True(t, got.ID().IsEqual(first.ID()))
	})

	t.Run("should fail when no candidates were supplied", func(t *testing.T) {
		_, err := dispatcher.FindNearest(pickup, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNoCourierAvailable)
	})

	t.Run("should fail when every candidate is undispatchable", func(t *testing.T) {
		offShift := newTestCourier(t, "off shift", courier.Inactive, false, &nearPoint)

		_, err := dispatcher.FindNearest(pickup, []*courier.Courier{offShift})

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNoCourierAvailable)
	})

	t.Run("should fail with invalid pickup point", func(t *testing.T) {
		var invalid kernel.GeoPoint
		near := newTestCourier(t, "near", courier.Active, true, &nearPoint)

		_, err := dispatcher.FindNearest(invalid, []*courier.Courier{near})

		require.Error(t, err)
	})

	t.Run("should fail with improperly constructed candidate", func(t *testing.T) {
		_, err := dispatcher.FindNearest(pickup, []*courier.Courier{{}})

		require.Error(t, err)
		assert.ErrorIs(t, err, courier.ErrCourierIsNotConstructed)
	})
}

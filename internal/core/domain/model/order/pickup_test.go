package order

import (
	"testing"
	"time"

	"laundromart/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocation(t *testing.T) kernel.GeoPoint {
	t.Helper()
	location, err := kernel.NewGeoPoint(13.7563, 100.5018)
	require.NoError(t, err)
	return location
}

func TestNewPickup(t *testing.T) {
	location := testLocation(t)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("immediate pickup", func(t *testing.T) {
		pickup, err := NewPickup(location, "12 Sukhumvit Rd", PickupNow, nil)
		require.NoError(t, err)
		assert.NoError(t, pickup.Validate())
		assert.Equal(t, PickupNow, pickup.Type())
		assert.Nil(t, pickup.At())
		assert.True(t, pickup.IsPriority())
	})

	t.Run("scheduled pickup", func(t *testing.T) {
		pickup, err := NewPickup(location, "12 Sukhumvit Rd", PickupSchedule, &at)
		require.NoError(t, err)
		require.NotNil(t, pickup.At())
		assert.True(t, pickup.At().Equal(at))
		assert.False(t, pickup.IsPriority())
	})

	t.Run("scheduled pickup requires a time", func(t *testing.T) {
		_, err := NewPickup(location, "12 Sukhumvit Rd", PickupSchedule, nil)
		assert.Error(t, err)
	})

	t.Run("immediate pickup forbids a time", func(t *testing.T) {
		_, err := NewPickup(location, "12 Sukhumvit Rd", PickupNow, &at)
		assert.Error(t, err)
	})

	t.Run("unconstructed location is rejected", func(t *testing.T) {
		_, err := NewPickup(kernel.GeoPoint{}, "12 Sukhumvit Rd", PickupNow, nil)
		assert.Error(t, err)
	})
}

func TestPickup_ValidateLeadTime(t *testing.T) {
	location := testLocation(t)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("immediate pickup always passes", func(t *testing.T) {
		pickup, err := NewPickup(location, "addr", PickupNow, nil)
		require.NoError(t, err)
		assert.NoError(t, pickup.ValidateLeadTime(now))
	})

	t.Run("exactly one hour out passes", func(t *testing.T) {
		at := now.Add(MinScheduleLead)
		pickup, err := NewPickup(location, "addr", PickupSchedule, &at)
		require.NoError(t, err)
		assert.NoError(t, pickup.ValidateLeadTime(now))
	})

	t.Run("under one hour fails", func(t *testing.T) {
		at := now.Add(MinScheduleLead - time.Minute)
		pickup, err := NewPickup(location, "addr", PickupSchedule, &at)
		require.NoError(t, err)
		assert.Error(t, pickup.ValidateLeadTime(now))
	})

	t.Run("past time fails", func(t *testing.T) {
		at := now.Add(-time.Hour)
		pickup, err := NewPickup(location, "addr", PickupSchedule, &at)
		require.NoError(t, err)
		assert.Error(t, pickup.ValidateLeadTime(now))
	})
}

func TestPickup_Validate(t *testing.T) {
	var pickup Pickup
	assert.ErrorIs(t, pickup.Validate(), ErrPickupIsNotConstructed)
}

func TestNewDelivery(t *testing.T) {
	location := testLocation(t)

	delivery, err := NewDelivery(location, "99 Rama IV Rd")
	require.NoError(t, err)
	assert.Equal(t, "99 Rama IV Rd", delivery.Address())
	assert.True(t, delivery.Location().IsEqual(location))

	_, err = NewDelivery(kernel.GeoPoint{}, "99 Rama IV Rd")
	assert.Error(t, err)
}

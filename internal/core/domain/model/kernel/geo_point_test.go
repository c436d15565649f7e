package kernel_test

import (
	"testing"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
	}{
		{"valid point", 13.7563, 100.5018, false},
		{"boundary north pole", 90, 0, false},
		{"boundary date line", 0, -180, false},
		{"latitude too high", 90.1, 0, true},
		{"latitude too low", -90.1, 0, true},
		{"longitude too high", 0, 180.1, true},
		{"longitude too low", 0, -180.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, err := kernel.NewGeoPoint(tt.latitude, tt.longitude)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.latitude, point.Latitude())
			assert.Equal(t, tt.longitude, point.Longitude())
		})
	}
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var point kernel.GeoPoint
		require.ErrorIs(t, point.Validate(), kernel.ErrGeoPointIsNotConstructed)
	})

	t.Run("constructed value is valid", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(0, 0)
		require.NoError(t, err)
		require.NoError(t, point.Validate())
	})
}

func TestGeoPoint_DistanceKmTo(t *testing.T) {
	t.Run("distance to self is zero", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(13.7563, 100.5018)
		require.NoError(t, err)

		distance, err := point.DistanceKmTo(point)
		require.NoError(t, err)
		assert.InDelta(t, 0, distance, 0.0001)
	})

	t.Run("known distance between city centers", func(t *testing.T) {
		bangkok, err := kernel.NewGeoPoint(13.7563, 100.5018)
		require.NoError(t, err)
		chiangMai, err := kernel.NewGeoPoint(18.7883, 98.9853)
		require.NoError(t, err)

		distance, err := bangkok.DistanceKmTo(chiangMai)
		require.NoError(t, err)
		assert.InDelta(t, 583, distance, 15)
	})

	t.Run("zero value operand fails", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(0, 0)
		require.NoError(t, err)

		var zero kernel.GeoPoint
		_, err = point.DistanceKmTo(zero)
		require.Error(t, err)
	})
}

func TestRole(t *testing.T) {
	t.Run("parses all wire values", func(t *testing.T) {
		for _, s := range []string{"customer", "rider", "employee", "admin"} {
			role, err := kernel.RoleFromString(s)
			require.NoError(t, err)
			require.NoError(t, role.Validate())
			assert.Equal(t, s, role.String())
		}
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := kernel.RoleFromString("superuser")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var role kernel.Role
		require.Error(t, role.Validate())
		assert.Equal(t, "unknown", role.String())
	})
}

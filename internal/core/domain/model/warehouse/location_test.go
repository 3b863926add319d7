package warehouse_test

import (
	"testing"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createValidLocation(t *testing.T, capacity float64) *warehouse.Location {
	t.Helper()
	location, err := warehouse.NewLocation(kernel.NewUUID(), "A-01-01", "Test Rack", capacity)
	require.NoError(t, err)
	require.NotNil(t, location)
	return location
}

func TestNewLocation(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create location with valid parameters", func(t *testing.T) {
		location, err := warehouse.NewLocation(validID, "A-01-01", "Main rack", 1000)

		require.NoError(t, err)
		assert.NotNil(t, location)
		assert.True(t, location.ID().IsEqual(validID))
		assert.Equal(t, "A-01-01", location.Code())
		assert.Equal(t, "Main rack", location.Description())
		assert.Equal(t, 1000.0, location.CapacityVolume())
		assert.Equal(t, 0.0, location.UsedVolume())
		assert.Equal(t, 1000.0, location.AvailableVolume())
		require.NoError(t, location.Validate())
	})

	t.Run("should return error for invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		location, err := warehouse.NewLocation(invalidID, "A-01-01", "", 1000)

		require.Error(t, err)
		assert.Nil(t, location)
		assert.Contains(t, err.Error(), kernel.ErrUUIDIsNotConstructed.Error())
	})

	t.Run("should return error for empty code", func(t *testing.T) {
		location, err := warehouse.NewLocation(validID, "", "", 1000)

		require.Error(t, err)
		assert.Nil(t, location)
		assert.Contains(t, err.Error(), "code is required")
	})

	t.Run("should return error for non-positive capacity", func(t *testing.T) {
		for _, capacity := range []float64{0, -100} {
			location, err := warehouse.NewLocation(validID, "A-01-01", "", capacity)

			require.Error(t, err)
			assert.Nil(t, location)
			assert.Contains(t, err.Error(), "capacityVolume is invalid")
		}
	})

	t.Run("should return aggregated errors for multiple invalid parameters", func(t *testing.T) {
		var invalidID kernel.UUID

		location, err := warehouse.NewLocation(invalidID, "", "", -1)

		require.Error(t, err)
		assert.Nil(t, location)
		assert.Contains(t, err.Error(), kernel.ErrUUIDIsNotConstructed.Error())
		assert.Contains(t, err.Error(), "code is required")
		assert.Contains(t, err.Error(), "capacityVolume is invalid")
	})
}

func TestRestoreLocation(t *testing.T) {
	t.Run("should restore location with used volume", func(t *testing.T) {
		location, err := warehouse.RestoreLocation(kernel.NewUUID(), "A-01-01", "", 1000, 250)

		require.NoError(t, err)
		assert.Equal(t, 250.0, location.UsedVolume())
		assert.Equal(t, 750.0, location.AvailableVolume())
	})

	t.Run("should restore full location", func(t *testing.T) {
		location, err := warehouse.RestoreLocation(kernel.NewUUID(), "A-01-01", "", 1000, 1000)

		require.NoError(t, err)
		assert.Equal(t, 0.0, location.AvailableVolume())
	})

	t.Run("should reject used volume above capacity", func(t *testing.T) {
		location, err := warehouse.RestoreLocation(kernel.NewUUID(), "A-01-01", "", 1000, 1001)

		require.Error(t, err)
		assert.Nil(t, location)
		assert.Contains(t, err.Error(), "usedVolume")
	})

	t.Run("should reject negative used volume", func(t *testing.T) {
		location, err := warehouse.RestoreLocation(kernel.NewUUID(), "A-01-01", "", 1000, -1)

		require.Error(t, err)
		assert.Nil(t, location)
	})
}

func TestLocationAllocate(t *testing.T) {
	t.Run("should accumulate allocations", func(t *testing.T) {
		location := createValidLocation(t, 1000)

		require.NoError(t, location.Allocate(300))
		require.NoError(t, location.Allocate(200))

		assert.Equal(t, 500.0, location.UsedVolume())
		assert.Equal(t, 500.0, location.AvailableVolume())
	})

	t.Run("should allow filling to exact capacity", func(t *testing.T) {
		location := createValidLocation(t, 1000)

		require.NoError(t, location.Allocate(1000))

		assert.Equal(t, 0.0, location.AvailableVolume())
		assert.False(t, location.HasAvailableSpace(0.1))
	})

	t.Run("should reject non-positive volume", func(t *testing.T) {
		location := createValidLocation(t, 1000)

		for _, volume := range []float64{0, -10} {
			err := location.Allocate(volume)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "volume is invalid")
			assert.Equal(t, 0.0, location.UsedVolume())
		}
	})

	t.Run("should reject allocation over capacity without mutating", func(t *testing.T) {
		location := createValidLocation(t, 1000)
		require.NoError(t, location.Allocate(900))

		err := location.Allocate(101)

		require.Error(t, err)
		assert.ErrorIs(t, err, warehouse.ErrInsufficientCapacity)
		assert.Contains(t, err.Error(), location.Code())
		assert.Equal(t, 900.0, location.UsedVolume())
	})
}

func TestLocationRelease(t *testing.T) {
	t.Run("should free allocated volume", func(t *testing.T) {
		location := createValidLocation(t, 1000)
		require.NoError(t, location.Allocate(600))

		require.NoError(t, location.Release(200))

		assert.Equal(t, 400.0, location.UsedVolume())
	})

	t.Run("should allow releasing everything", func(t *testing.T) {
		location := createValidLocation(t, 1000)
		require.NoError(t, location.Allocate(600))

		require.NoError(t, location.Release(600))

		assert.Equal(t, 0.0, location.UsedVolume())
	})

	t.Run("should reject non-positive volume", func(t *testing.T) {
		location := createValidLocation(t, 1000)
		require.NoError(t, location.Allocate(600))

		err := location.Release(0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "volume is invalid")
		assert.Equal(t, 600.0, location.UsedVolume())
	})

	t.Run("should reject over-release without mutating", func(t *testing.T) {
		location := createValidLocation(t, 1000)
		require.NoError(t, location.Allocate(100))

		err := location.Release(101)

		require.Error(t, err)
		assert.ErrorIs(t, err, warehouse.ErrOverRelease)
		assert.Equal(t, 100.0, location.UsedVolume())
	})
}

func TestLocationValidate(t *testing.T) {
	t.Run("should fail for nil location", func(t *testing.T) {
		var location *warehouse.Location

		assert.ErrorIs(t, location.Validate(), warehouse.ErrLocationIsNotConstructed)
	})

	t.Run("should fail for zero-value location", func(t *testing.T) {
		var location warehouse.Location

		assert.ErrorIs(t, location.Validate(), warehouse.ErrLocationIsNotConstructed)
	})
}

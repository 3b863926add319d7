package order_test

import (
	"testing"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createValidItem(t *testing.T, orderedQuantity float64) *order.Item {
	t.Helper()
	item, err := order.NewItem(
		kernel.NewUUID(),
		kernel.NewUUID(),
		orderedQuantity,
		9.99,
		"Test Item",
		nil,
	)
	require.NoError(t, err)
	require.NotNil(t, item)
	return item
}

func TestNewItem(t *testing.T) {
	validID := kernel.NewUUID()
	validProductID := kernel.NewUUID()

	t.Run("should create item with valid parameters", func(t *testing.T) {
		locationID := kernel.NewUUID()

		item, err := order.NewItem(validID, validProductID, 10, 2.5, "Bolts M6", &locationID)

		require.NoError(t, err)
		assert.NotNil(t, item)
		assert.True(t, item.ID().IsEqual(validID))
		assert.True(t, item.ProductID().IsEqual(validProductID))
		assert.Equal(t, "Bolts M6", item.Description())
		assert.Equal(t, 10.0, item.OrderedQuantity())
		assert.Equal(t, 0.0, item.ReceivedQuantity())
		assert.Equal(t, 2.5, item.UnitPrice())
		require.NotNil(t, item.LocationID())
		assert.True(t, item.LocationID().IsEqual(locationID))
		assert.Equal(t, order.CompletionNone, item.Completion())
		require.NoError(t, item.Validate())
	})

	t.Run("should allow nil location", func(t *testing.T) {
		item, err := order.NewItem(validID, validProductID, 10, 2.5, "", nil)

		require.NoError(t, err)
		assert.Nil(t, item.LocationID())
	})

	t.Run("should allow zero unit price", func(t *testing.T) {
		item, err := order.NewItem(validID, validProductID, 10, 0, "free sample", nil)

		require.NoError(t, err)
		assert.Equal(t, 0.0, item.LineTotal())
	})

	t.Run("should return error for invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		item, err := order.NewItem(invalidID, validProductID, 10, 2.5, "", nil)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), kernel.ErrUUIDIsNotConstructed.Error())
	})

	t.Run("should return error for non-positive quantity", func(t *testing.T) {
		for _, quantity := range []float64{0, -1} {
			item, err := order.NewItem(validID, validProductID, quantity, 2.5, "", nil)

			require.Error(t, err)
			assert.Nil(t, item)
			assert.Contains(t, err.Error(), "orderedQuantity is invalid")
		}
	})

	t.Run("should return error for negative unit price", func(t *testing.T) {
		item, err := order.NewItem(validID, validProductID, 10, -0.01, "", nil)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "unitPrice is invalid")
	})

	t.Run("should return aggregated errors for multiple invalid parameters", func(t *testing.T) {
		var invalidID kernel.UUID

		item, err := order.NewItem(invalidID, validProductID, -5, -1, "", nil)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), kernel.ErrUUIDIsNotConstructed.Error())
		assert.Contains(t, err.Error(), "orderedQuantity is invalid")
		assert.Contains(t, err.Error(), "unitPrice is invalid")
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("should restore item with receiving progress", func(t *testing.T) {
		item, err := order.RestoreItem(
			kernel.NewUUID(), kernel.NewUUID(), 10, 4, 2.5, "Bolts M6", nil,
		)

		require.NoError(t, err)
		assert.Equal(t, 4.0, item.ReceivedQuantity())
		assert.Equal(t, order.CompletionPartial, item.Completion())
	})

	t.Run("should restore fully received item", func(t *testing.T) {
		item, err := order.RestoreItem(
			kernel.NewUUID(), kernel.NewUUID(), 10, 10, 2.5, "", nil,
		)

		require.NoError(t, err)
		assert.Equal(t, order.CompletionComplete, item.Completion())
	})

	t.Run("should reject received quantity above ordered", func(t *testing.T) {
		item, err := order.RestoreItem(
			kernel.NewUUID(), kernel.NewUUID(), 10, 11, 2.5, "", nil,
		)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "receivedQuantity")
	})

	t.Run("should reject negative received quantity", func(t *testing.T) {
		item, err := order.RestoreItem(
			kernel.NewUUID(), kernel.NewUUID(), 10, -1, 2.5, "", nil,
		)

		require.Error(t, err)
		assert.Nil(t, item)
	})
}

func TestItemReceive(t *testing.T) {
	t.Run("should accumulate partial receipts", func(t *testing.T) {
		item := createValidItem(t, 10)

		completion, err := item.Receive(3)
		require.NoError(t, err)
		assert.Equal(t, order.CompletionPartial, completion)
		assert.Equal(t, 3.0, item.ReceivedQuantity())

		completion, err = item.Receive(4)
		require.NoError(t, err)
		assert.Equal(t, order.CompletionPartial, completion)
		assert.Equal(t, 7.0, item.ReceivedQuantity())
	})

	t.Run("should complete when receipts reach ordered quantity", func(t *testing.T) {
		item := createValidItem(t, 10)

		completion, err := item.Receive(10)

		require.NoError(t, err)
		assert.Equal(t, order.CompletionComplete, completion)
		assert.Equal(t, 10.0, item.ReceivedQuantity())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		item := createValidItem(t, 10)

		for _, quantity := range []float64{0, -3} {
			_, err := item.Receive(quantity)

			require.Error(t, err)
			assert.ErrorIs(t, err, order.ErrQuantityIsInvalid)
			assert.Equal(t, 0.0, item.ReceivedQuantity())
		}
	})

	t.Run("should reject over-receipt without mutating", func(t *testing.T) {
		item := createValidItem(t, 10)
		_, err := item.Receive(8)
		require.NoError(t, err)

		_, err = item.Receive(3)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOverReceipt)
		assert.Equal(t, 8.0, item.ReceivedQuantity())
		assert.Equal(t, order.CompletionPartial, item.Completion())
	})

	t.Run("should reject any receipt against a complete item", func(t *testing.T) {
		item := createValidItem(t, 5)
		_, err := item.Receive(5)
		require.NoError(t, err)

		_, err = item.Receive(1)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOverReceipt)
		assert.Equal(t, 5.0, item.ReceivedQuantity())
	})
}

func TestItemLineTotal(t *testing.T) {
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 4, 2.5, "", nil)
	require.NoError(t, err)

	assert.Equal(t, 10.0, item.LineTotal())

	// Receiving progress never changes the line total.
	_, err = item.Receive(2)
	require.NoError(t, err)
	assert.Equal(t, 10.0, item.LineTotal())
}

func TestItemValidate(t *testing.T) {
	t.Run("should fail for nil item", func(t *testing.T) {
		var item *order.Item

		assert.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})

	t.Run("should fail for zero-value item", func(t *testing.T) {
		var item order.Item

		assert.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

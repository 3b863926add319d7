package services_test

import (
	"testing"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/core/domain/model/warehouse"
	"procurement/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createProduct(t *testing.T, unitVolume *float64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), "SKU-001", "Bolts M6", "", unitVolume, "box", 12.5)
	require.NoError(t, err)
	return p
}

func createLocation(t *testing.T, capacity float64) *warehouse.Location {
	t.Helper()
	location, err := warehouse.NewLocation(kernel.NewUUID(), "A-01-01", "", capacity)
	require.NoError(t, err)
	return location
}

func createOrderWithItem(t *testing.T, productID kernel.UUID, orderedQuantity float64) *order.PurchaseOrder {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), productID, orderedQuantity, 2.5, "", nil)
	require.NoError(t, err)
	po, err := order.NewPurchaseOrder(
		kernel.NewUUID(), "PO-1001", kernel.NewUUID(),
		time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), nil, order.Issued,
		[]*order.Item{item},
	)
	require.NoError(t, err)
	return po
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestGoodsReceiptServiceReceive(t *testing.T) {
	now := time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)
	svc := services.NewGoodsReceiptService()

	t.Run("should record receipt and allocate footprint", func(t *testing.T) {
		prod := createProduct(t, floatPtr(0.5))
		po := createOrderWithItem(t, prod.ID(), 10)
		location := createLocation(t, 100)

		receipt, err := svc.Receive(po, po.Items()[0].ID(), 10, prod, location, now)

		require.NoError(t, err)
		require.NotNil(t, receipt)
		assert.Equal(t, 5.0, receipt.AllocatedVolume)
		assert.Equal(t, 5.0, location.UsedVolume())
		assert.Equal(t, 10.0, receipt.Item.ReceivedQuantity())
		assert.Equal(t, order.Received, po.Status())
	})

	t.Run("should skip allocation for product without unit volume", func(t *testing.T) {
		prod := createProduct(t, nil)
		po := createOrderWithItem(t, prod.ID(), 10)
		location := createLocation(t, 100)

		receipt, err := svc.Receive(po, po.Items()[0].ID(), 4, prod, location, now)

		require.NoError(t, err)
		assert.Equal(t, 0.0, receipt.AllocatedVolume)
		assert.Equal(t, 0.0, location.UsedVolume())
		assert.Equal(t, order.PartiallyReceived, po.Status())
	})

	t.Run("should skip allocation when no location is given", func(t *testing.T) {
		prod := createProduct(t, floatPtr(0.5))
		po := createOrderWithItem(t, prod.ID(), 10)

		receipt, err := svc.Receive(po, po.Items()[0].ID(), 4, prod, nil, now)

		require.NoError(t, err)
		assert.Equal(t, 0.0, receipt.AllocatedVolume)
	})

	t.Run("should reject receipt when location is full, leaving order untouched", func(t *testing.T) {
		prod := createProduct(t, floatPtr(10))
		po := createOrderWithItem(t, prod.ID(), 10)
		location := createLocation(t, 50)

		receipt, err := svc.Receive(po, po.Items()[0].ID(), 10, prod, location, now)

		require.Error(t, err)
		assert.Nil(t, receipt)
		assert.ErrorIs(t, err, warehouse.ErrInsufficientCapacity)
		assert.Equal(t, order.Issued, po.Status())
		assert.Equal(t, 0.0, po.Items()[0].ReceivedQuantity())
		assert.Equal(t, 0.0, location.UsedVolume())
	})

	t.Run("should release reserved footprint when the order rejects the receipt", func(t *testing.T) {
		prod := createProduct(t, floatPtr(1))
		po := createOrderWithItem(t, prod.ID(), 5)
		location := createLocation(t, 100)

		// Over-receipt: the item only has 5 outstanding.
		receipt, err := svc.Receive(po, po.Items()[0].ID(), 6, prod, location, now)

		require.Error(t, err)
		assert.Nil(t, receipt)
		assert.ErrorIs(t, err, order.ErrOverReceipt)
		assert.Equal(t, 0.0, location.UsedVolume())
	})

	t.Run("should reject receipt against terminal order", func(t *testing.T) {
		prod := createProduct(t, nil)
		po := createOrderWithItem(t, prod.ID(), 5)
		require.NoError(t, po.Cancel())

		receipt, err := svc.Receive(po, po.Items()[0].ID(), 1, prod, nil, now)

		require.Error(t, err)
		assert.Nil(t, receipt)
		assert.ErrorIs(t, err, order.ErrIllegalTransition)
	})

	t.Run("should reject unconstructed product", func(t *testing.T) {
		po := createOrderWithItem(t, kernel.NewUUID(), 5)

		receipt, err := svc.Receive(po, po.Items()[0].ID(), 1, nil, nil, now)

		require.Error(t, err)
		assert.Nil(t, receipt)
		assert.ErrorIs(t, err, product.ErrProductIsNotConstructed)
	})
}

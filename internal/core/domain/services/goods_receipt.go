package services

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/core/domain/model/warehouse"
)

// GoodsReceiptService is a domain service that coordinates receiving goods
// against a purchase order line item together with warehouse capacity
// accounting. It spans the order and warehouse aggregates, which is why
// neither aggregate owns the workflow.
//
// Key responsibilities:
//   - Validating the order, product, and location before any mutation
//   - Reserving warehouse capacity for the received goods first, so an
//     insufficient-capacity rejection leaves the order untouched
//   - Recording the receipt on the order and recomputing its status
//
// Business rules:
//   - The capacity footprint is quantity * product unit volume; products
//     without a known unit volume never consume capacity
//   - Capacity allocation and order mutation succeed or fail together;
//     the transaction boundary around the service call makes it atomic
//
// Example usage:
//
//	svc := services.NewGoodsReceiptService()
//	receipt, err := svc.Receive(po, itemID, 25, boltsProduct, rackLocation, time.Now())
//	if errors.Is(err, warehouse.ErrInsufficientCapacity) {
//	    // The rack cannot hold the delivery; nothing was recorded
//	    return
//	}
type GoodsReceiptService struct{}

// NewGoodsReceiptService creates a new GoodsReceiptService instance.
func NewGoodsReceiptService() GoodsReceiptService {
	return GoodsReceiptService{}
}

// Receipt describes the outcome of a successful goods receipt.
type Receipt struct {
	// Item is the updated line item after the receipt was recorded.
	Item *order.Item

	// AllocatedVolume is the warehouse volume reserved at the location,
	// zero when no location was involved or the product has no unit volume.
	AllocatedVolume float64
}

// Receive records the arrival of a quantity against one item of the given
// purchase order and reserves the corresponding volume at the destination
// location.
//
// Parameters:
//   - po: The purchase order being received against (must be valid)
//   - itemID: The line item the goods belong to
//   - quantity: The received quantity (must be greater than 0)
//   - prod: The product being received, used to compute the capacity footprint
//   - location: The destination location, nil when the item has no destination
//   - now: The receipt timestamp, used for the delivery date on full receipt
//
// Returns the receipt outcome, or an error from order or warehouse rules.
// Capacity is allocated before the order is mutated, so a capacity rejection
// never leaves a half-applied receipt.
func (g GoodsReceiptService) Receive(
	po *order.PurchaseOrder,
	itemID kernel.UUID,
	quantity float64,
	prod *product.Product,
	location *warehouse.Location,
	now time.Time,
) (*Receipt, error) {
	if err := po.Validate(); err != nil {
		return nil, err
	}
	if err := prod.Validate(); err != nil {
		return nil, err
	}

	footprint := prod.Footprint(quantity)

	if location != nil && footprint > 0 {
		if err := location.Validate(); err != nil {
			return nil, err
		}
		if err := location.Allocate(footprint); err != nil {
			return nil, err
		}
	} else {
		footprint = 0
	}

	item, err := po.ReceiveItem(itemID, quantity, now)
	if err != nil {
		// Roll the reservation back so a failed receipt leaves the
		// location ledger unchanged within this unit of work.
		if footprint > 0 {
			_ = location.Release(footprint)
		}
		return nil, err
	}

	return &Receipt{Item: item, AllocatedVolume: footprint}, nil
}

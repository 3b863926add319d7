package order

import (
	"errors"
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// Domain errors for item receiving.
var (
	// ErrQuantityIsInvalid is returned when a receive call carries a quantity
	// that is zero or negative.
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")

	// ErrOverReceipt is returned when a receive call would push the received
	// quantity above the ordered quantity. Over-receipt is rejected outright
	// rather than clamped; clamping would hide supplier or data errors.
	ErrOverReceipt = errors.New("received quantity would exceed ordered quantity")

	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")
)

// Completion describes how far a single line item has progressed toward
// being fully received.
type Completion int

const (
	// CompletionNone means nothing has been received for the item yet.
	CompletionNone Completion = iota

	// CompletionPartial means some, but not all, of the ordered quantity arrived.
	CompletionPartial

	// CompletionComplete means the received quantity equals the ordered quantity.
	CompletionComplete
)

// String returns the human-readable name of the completion state.
func (c Completion) String() string {
	switch c {
	case CompletionPartial:
		return "Partial"
	case CompletionComplete:
		return "Complete"
	default:
		return "None"
	}
}

// Item is one product entry within a purchase order. It owns the
// ordered-versus-received quantity bookkeeping for that product:
// the received quantity only ever grows, and never beyond the ordered
// quantity. The unit price is snapshotted at order time, so later product
// price changes do not retroactively affect existing orders.
//
// Items are owned exclusively by their purchase order and cannot outlive it.
type Item struct {
	// id uniquely identifies the line item
	id kernel.UUID

	// productID references the product being purchased
	productID kernel.UUID

	// description is an optional item-specific note
	description string

	// orderedQuantity is how much was ordered (always > 0)
	orderedQuantity float64

	// receivedQuantity is how much has arrived so far (0 ≤ received ≤ ordered)
	receivedQuantity float64

	// unitPrice is the price per unit at order time (≥ 0)
	unitPrice float64

	// locationID is the suggested destination warehouse location, nil if none
	locationID *kernel.UUID

	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// NewItem creates a fresh line item with no receiving progress.
//
// Parameters:
//   - id: Unique identifier for the item (must be valid UUID)
//   - productID: Product reference (must be valid UUID)
//   - orderedQuantity: Quantity ordered (must be greater than 0)
//   - unitPrice: Price per unit snapshotted at order time (must be ≥ 0)
//   - description: Optional item note (may be empty)
//   - locationID: Optional destination warehouse location
//
// Returns the item, or an aggregated validation error if any parameter is invalid.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	orderedQuantity float64,
	unitPrice float64,
	description string,
	locationID *kernel.UUID,
) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setOrderedQuantity(orderedQuantity),
		item.setUnitPrice(unitPrice),
		item.setLocationID(locationID),
	); err != nil {
		return nil, err
	}

	item.description = description
	return item, nil
}

// RestoreItem reconstructs a line item from persistent storage, including
// its receiving progress. The restored item behaves identically to one that
// accumulated the same receipts through Receive calls.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	orderedQuantity float64,
	receivedQuantity float64,
	unitPrice float64,
	description string,
	locationID *kernel.UUID,
) (*Item, error) {
	item, err := NewItem(id, productID, orderedQuantity, unitPrice, description, locationID)
	if err != nil {
		return nil, err
	}

	if receivedQuantity < 0 || receivedQuantity > orderedQuantity {
		return nil, errs.NewValueIsOutOfRangeError(
			"receivedQuantity", receivedQuantity, 0, orderedQuantity,
		)
	}

	item.receivedQuantity = receivedQuantity
	return item, nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the referenced product's identifier.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Description returns the optional item note.
func (i *Item) Description() string {
	return i.description
}

// OrderedQuantity returns how much of the product was ordered.
func (i *Item) OrderedQuantity() float64 {
	return i.orderedQuantity
}

// ReceivedQuantity returns how much of the product has arrived so far.
func (i *Item) ReceivedQuantity() float64 {
	return i.receivedQuantity
}

// UnitPrice returns the per-unit price snapshotted at order time.
func (i *Item) UnitPrice() float64 {
	return i.unitPrice
}

// LocationID returns the suggested destination warehouse location,
// or nil if the item has none.
func (i *Item) LocationID() *kernel.UUID {
	return i.locationID
}

// LineTotal returns the monetary value of the line: orderedQuantity * unitPrice.
// The total reflects what was ordered, not what was received.
func (i *Item) LineTotal() float64 {
	return i.orderedQuantity * i.unitPrice
}

// Completion returns the item's current completion state.
func (i *Item) Completion() Completion {
	switch {
	case i.receivedQuantity == 0:
		return CompletionNone
	case i.receivedQuantity >= i.orderedQuantity:
		return CompletionComplete
	default:
		return CompletionPartial
	}
}

// Receive records the arrival of the given quantity against this item.
//
// Business rules enforced:
//   - quantity must be greater than 0 (ErrQuantityIsInvalid)
//   - received + quantity must not exceed ordered (ErrOverReceipt)
//
// On failure the item is left unchanged. On success the received quantity
// is incremented and the item's new completion state is returned.
func (i *Item) Receive(quantity float64) (Completion, error) {
	if quantity <= 0 {
		return CompletionNone, fmt.Errorf("%w: got %v", ErrQuantityIsInvalid, quantity)
	}

	if i.receivedQuantity+quantity > i.orderedQuantity {
		return i.Completion(), fmt.Errorf(
			"%w: ordered %v, already received %v, attempted %v",
			ErrOverReceipt, i.orderedQuantity, i.receivedQuantity, quantity,
		)
	}

	i.receivedQuantity += quantity
	return i.Completion(), nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setOrderedQuantity(orderedQuantity float64) error {
	if orderedQuantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderedQuantity is invalid",
			fmt.Errorf("%v is not greater than 0", orderedQuantity),
		)
	}
	i.orderedQuantity = orderedQuantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice is invalid",
			fmt.Errorf("%v is negative", unitPrice),
		)
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setLocationID(locationID *kernel.UUID) error {
	if locationID != nil {
		if err := locationID.Validate(); err != nil {
			return err
		}
	}
	i.locationID = locationID
	return nil
}

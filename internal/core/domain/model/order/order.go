package order

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var (
	// ErrPurchaseOrderIsNotConstructed is returned when a PurchaseOrder instance
	// was not created through one of its constructors.
	ErrPurchaseOrderIsNotConstructed = errors.New(
		"PurchaseOrder must be created via NewPurchaseOrder or RestorePurchaseOrder constructor",
	)

	// ErrItemsAreRequired is returned when attempting to create or replace
	// the item collection with an empty one. An order without items has no
	// receivable content and would be trivially complete.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")

	// ErrOrderDateIsRequired is returned when the order date is the zero time.
	ErrOrderDateIsRequired = errs.NewValueIsRequiredError("orderDate")
)

// PurchaseOrder is the aggregate root for procurement from a single supplier.
// It owns an ordered collection of line items and derives its status, total
// amount, and fully-received flag from them.
//
// PurchaseOrder maintains these invariants:
//   - every item satisfies 0 ≤ receivedQuantity ≤ orderedQuantity
//   - totalAmount is always the sum of orderedQuantity * unitPrice over items;
//     callers can never set it directly
//   - fullyReceived is true exactly when status is Received
//   - deliveryDate is set only when the order becomes fully received
//   - Received and Canceled are terminal; recomputing status never leaves them
//
// Items are owned exclusively by the order: they are attached at creation or
// through ReplaceItems, and deleting the order deletes its items.
type PurchaseOrder struct {
	// id is the unique identifier for the purchase order
	id kernel.UUID

	// code is an optional human-readable order number, unique when present
	code string

	// supplierID references the supplier this order was placed with
	supplierID kernel.UUID

	// orderDate is when the order was placed; never zero
	orderDate time.Time

	// expectedDate is the optional forecast delivery date
	expectedDate *time.Time

	// deliveryDate is the actual delivery date; set only on full receipt
	deliveryDate *time.Time

	// status is the current state in the order lifecycle
	status Status

	// totalAmount is the derived monetary total of all items
	totalAmount float64

	// fullyReceived mirrors status == Received
	fullyReceived bool

	// items is the owned collection of line items
	items []*Item

	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewPurchaseOrder creates a new purchase order with no receiving progress.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - code: Optional human-readable order number (may be empty)
//   - supplierID: Supplier reference (must be valid UUID)
//   - orderDate: When the order was placed (must not be zero)
//   - expectedDate: Optional forecast delivery date
//   - status: Initial status, Draft or Issued
//   - items: Line items, at least one
//
// The total amount is computed from the items; it is never supplied by callers.
func NewPurchaseOrder(
	id kernel.UUID,
	code string,
	supplierID kernel.UUID,
	orderDate time.Time,
	expectedDate *time.Time,
	status Status,
	items []*Item,
) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		po.setID(id),
		po.setSupplierID(supplierID),
		po.setOrderDate(orderDate),
		po.setInitialStatus(status),
		po.setItems(items),
	); err != nil {
		return nil, err
	}

	po.code = code
	po.expectedDate = expectedDate
	po.recalculateTotal()
	return po, nil
}

// RestorePurchaseOrder reconstructs a purchase order from persistent storage,
// including receiving progress and terminal states.
//
// The derived fields are recomputed rather than trusted: totalAmount comes from
// the restored items and fullyReceived from the restored status, so a stored
// row can never resurrect an inconsistent aggregate.
func RestorePurchaseOrder(
	id kernel.UUID,
	code string,
	supplierID kernel.UUID,
	orderDate time.Time,
	expectedDate *time.Time,
	deliveryDate *time.Time,
	status Status,
	items []*Item,
) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		po.setID(id),
		po.setSupplierID(supplierID),
		po.setOrderDate(orderDate),
		status.Validate(),
		po.setItems(items),
	); err != nil {
		return nil, err
	}

	po.code = code
	po.expectedDate = expectedDate
	po.deliveryDate = deliveryDate
	po.status = status
	po.fullyReceived = status == Received
	po.recalculateTotal()
	return po, nil
}

// ID returns the order's unique identifier.
func (o *PurchaseOrder) ID() kernel.UUID {
	return o.id
}

// Code returns the optional human-readable order number.
func (o *PurchaseOrder) Code() string {
	return o.code
}

// SupplierID returns the supplier reference.
func (o *PurchaseOrder) SupplierID() kernel.UUID {
	return o.supplierID
}

// OrderDate returns when the order was placed.
func (o *PurchaseOrder) OrderDate() time.Time {
	return o.orderDate
}

// ExpectedDate returns the forecast delivery date, or nil if none was given.
func (o *PurchaseOrder) ExpectedDate() *time.Time {
	return o.expectedDate
}

// DeliveryDate returns the actual delivery date, or nil while the order
// is not fully received.
func (o *PurchaseOrder) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// Status returns the current status of the order.
func (o *PurchaseOrder) Status() Status {
	return o.status
}

// TotalAmount returns the derived monetary total: the sum of
// orderedQuantity * unitPrice over all items. Receiving progress
// never changes the total.
func (o *PurchaseOrder) TotalAmount() float64 {
	return o.totalAmount
}

// FullyReceived reports whether every item has been fully received.
func (o *PurchaseOrder) FullyReceived() bool {
	return o.fullyReceived
}

// Items returns the order's line items.
func (o *PurchaseOrder) Items() []*Item {
	return o.items
}

// Item returns the line item with the given id, or an ObjectNotFoundError
// if the id does not belong to this order.
func (o *PurchaseOrder) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("itemId", itemID.String())
}

// IsEqual compares two purchase orders by their unique identifiers.
func (o *PurchaseOrder) IsEqual(other *PurchaseOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ReceiveItem records the arrival of a quantity against one of the order's
// items and recomputes the order status from the aggregate receiving state.
//
// Business rules enforced:
//   - the order must not be Received or Canceled (ErrIllegalTransition)
//   - the item must belong to this order (ObjectNotFoundError)
//   - the quantity must be valid and must not over-receive the item
//     (ErrQuantityIsInvalid, ErrOverReceipt)
//
// When the receipt completes the last outstanding item, the order becomes
// Received, the delivery date is set to now, and fullyReceived flips to true.
// Otherwise the order is PartiallyReceived.
//
// Returns the updated item so callers can inspect its destination location
// and completion state.
func (o *PurchaseOrder) ReceiveItem(itemID kernel.UUID, quantity float64, now time.Time) (*Item, error) {
	if err := o.status.ValidateReceive(); err != nil {
		return nil, err
	}

	item, err := o.Item(itemID)
	if err != nil {
		return nil, err
	}

	if _, err = item.Receive(quantity); err != nil {
		return nil, err
	}

	o.recomputeStatus(now)
	return item, nil
}

// RecomputeStatus re-derives the order status from the current item
// collection. It is a pure function of the items and is idempotent:
// recomputing twice in a row yields the same status both times.
//
// Terminal states are never overwritten; in particular a Canceled order
// stays Canceled regardless of its items' receiving state.
func (o *PurchaseOrder) RecomputeStatus(now time.Time) {
	o.recomputeStatus(now)
}

// Issue transitions a Draft order to Issued, freezing its ordered quantities.
func (o *PurchaseOrder) Issue() error {
	newStatus, err := o.status.Issue()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel explicitly cancels the order.
//
// Cancellation is allowed from any non-terminal status and wins over
// receiving state: a canceled order rejects further receipts, and
// recomputing status never un-cancels it.
func (o *PurchaseOrder) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// ReplaceItems swaps the entire item collection for a new one and
// recalculates the total amount.
//
// Replacement is only legal while the order is Draft or Issued with no
// receiving progress: any item with a received quantity greater than zero
// blocks replacement (ErrIllegalTransition). On success the order's status
// is reset to Issued.
func (o *PurchaseOrder) ReplaceItems(items []*Item) error {
	if o.status != Draft && o.status != Issued {
		return ErrIllegalTransition
	}

	for _, item := range o.items {
		if item.ReceivedQuantity() > 0 {
			return ErrIllegalTransition
		}
	}

	if err := o.setItems(items); err != nil {
		return err
	}

	o.status = Issued
	o.recalculateTotal()
	return nil
}

// Validate ensures the PurchaseOrder instance was properly constructed.
func (o *PurchaseOrder) Validate() error {
	if o == nil {
		return ErrPurchaseOrderIsNotConstructed
	}
	return o.guard.Validate(ErrPurchaseOrderIsNotConstructed)
}

// recomputeStatus derives the order status from item completion states.
func (o *PurchaseOrder) recomputeStatus(now time.Time) {
	if o.status.IsTerminal() {
		return
	}

	allComplete := true
	anyProgress := false
	for _, item := range o.items {
		switch item.Completion() {
		case CompletionComplete:
			anyProgress = true
		case CompletionPartial:
			anyProgress = true
			allComplete = false
		default:
			allComplete = false
		}
	}

	switch {
	case allComplete:
		o.status = Received
		o.fullyReceived = true
		delivered := now
		o.deliveryDate = &delivered
	case anyProgress:
		o.status = PartiallyReceived
	}
}

// recalculateTotal re-derives the monetary total from the item collection.
// The total reflects ordered quantities only; received quantities affect
// fulfillment status, never the invoice total.
func (o *PurchaseOrder) recalculateTotal() {
	total := 0.0
	for _, item := range o.items {
		total += item.LineTotal()
	}
	o.totalAmount = total
}

func (o *PurchaseOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *PurchaseOrder) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	o.supplierID = supplierID
	return nil
}

func (o *PurchaseOrder) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return ErrOrderDateIsRequired
	}
	o.orderDate = orderDate
	return nil
}

// setInitialStatus restricts freshly created orders to Draft or Issued.
func (o *PurchaseOrder) setInitialStatus(status Status) error {
	if status != Draft && status != Issued {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			errors.New("a new purchase order must start as DRAFT or ISSUED"),
		)
	}
	o.status = status
	return nil
}

func (o *PurchaseOrder) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

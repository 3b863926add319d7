package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var (
	ErrCreatePurchaseOrderCommandIsNotConstructed = errors.New(
		"CreatePurchaseOrderCommand must be created via NewCreatePurchaseOrderCommand constructor",
	)
	ErrOrderDateIsRequired = errors.New("orderDate is required")
	ErrItemsAreRequired    = errors.New("at least one item is required")
	ErrQuantityIsInvalid   = errors.New("quantity must be greater than 0")
	ErrUnitPriceIsInvalid  = errors.New("unitPrice must not be negative")
)

// ItemInput carries one requested order line. The unit price is optional:
// when nil, the handler snapshots the product's default price instead.
type ItemInput struct {
	ProductID   kernel.UUID
	Quantity    float64
	UnitPrice   *float64
	Description string
	LocationID  *kernel.UUID
}

// CreatePurchaseOrderCommand represents a request to create a new purchase
// order with its line items.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreatePurchaseOrderCommand(orderID, "PO-1001", supplierID,
//	    time.Now(), nil, false, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreatePurchaseOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	code         string
	supplierID   kernel.UUID
	orderDate    time.Time
	expectedDate *time.Time
	asDraft      bool
	items        []ItemInput

	guard guard.ConstructorGuard
}

// NewCreatePurchaseOrderCommand creates a command to register a new purchase order.
// Validates identifiers, the order date, and every item's product reference,
// quantity, and unit price. Returns an aggregated error if any validation fails.
func NewCreatePurchaseOrderCommand(
	orderID kernel.UUID,
	code string,
	supplierID kernel.UUID,
	orderDate time.Time,
	expectedDate *time.Time,
	asDraft bool,
	items []ItemInput,
) (CreatePurchaseOrderCommand, error) {
	orderCommand := CreatePurchaseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setSupplierID(supplierID),
		orderCommand.setOrderDate(orderDate),
		orderCommand.setItems(items),
	); err != nil {
		return CreatePurchaseOrderCommand{}, err
	}

	orderCommand.code = code
	orderCommand.expectedDate = expectedDate
	orderCommand.asDraft = asDraft
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePurchaseOrderCommandIsNotConstructed if validation fails.
func (c CreatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreatePurchaseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Code returns the optional human-readable order number.
func (c CreatePurchaseOrderCommand) Code() string {
	return c.code
}

// SupplierID returns the supplier the order is placed with.
func (c CreatePurchaseOrderCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// OrderDate returns when the order is placed.
func (c CreatePurchaseOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// ExpectedDate returns the optional forecast delivery date.
func (c CreatePurchaseOrderCommand) ExpectedDate() *time.Time {
	return c.expectedDate
}

// AsDraft reports whether the order should start in Draft rather than Issued.
func (c CreatePurchaseOrderCommand) AsDraft() bool {
	return c.asDraft
}

// Items returns the requested order lines.
func (c CreatePurchaseOrderCommand) Items() []ItemInput {
	return c.items
}

func (c *CreatePurchaseOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreatePurchaseOrderCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}

func (c *CreatePurchaseOrderCommand) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return ErrOrderDateIsRequired
	}

	c.orderDate = orderDate
	return nil
}

func (c *CreatePurchaseOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
		if item.UnitPrice != nil && *item.UnitPrice < 0 {
			return ErrUnitPriceIsInvalid
		}
		if item.LocationID != nil {
			if err := item.LocationID.Validate(); err != nil {
				return err
			}
		}
	}

	c.items = items
	return nil
}

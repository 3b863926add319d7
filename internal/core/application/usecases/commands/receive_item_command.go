package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrReceiveItemCommandIsNotConstructed = errors.New(
	"ReceiveItemCommand must be created via NewReceiveItemCommand constructor",
)

// ReceiveItemCommand represents a request to record the arrival of goods
// against one line item of a purchase order.
//
// Example:
//
//	cmd, err := NewReceiveItemCommand(orderID, itemID, 25)
//	if err != nil {
//	    return fmt.Errorf("invalid receipt data: %w", err)
//	}
//
//	handler := NewReceiveItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to record receipt: %w", err)
//	}
type ReceiveItemCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemID   kernel.UUID
	quantity float64

	guard guard.ConstructorGuard
}

// NewReceiveItemCommand creates a command to record a goods receipt.
// Validates that both identifiers are valid and the quantity is positive.
func NewReceiveItemCommand(orderID, itemID kernel.UUID, quantity float64) (ReceiveItemCommand, error) {
	receiveCommand := ReceiveItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		receiveCommand.setOrderID(orderID),
		receiveCommand.setItemID(itemID),
		receiveCommand.setQuantity(quantity),
	); err != nil {
		return ReceiveItemCommand{}, err
	}

	return receiveCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReceiveItemCommandIsNotConstructed if validation fails.
func (c ReceiveItemCommand) Validate() error {
	return c.guard.Validate(ErrReceiveItemCommandIsNotConstructed)
}

// OrderID returns the purchase order being received against.
func (c ReceiveItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the line item the goods belong to.
func (c ReceiveItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the received quantity.
func (c ReceiveItemCommand) Quantity() float64 {
	return c.quantity
}

func (c *ReceiveItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReceiveItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *ReceiveItemCommand) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

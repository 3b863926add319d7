package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrDeletePurchaseOrderCommandIsNotConstructed = errors.New(
	"DeletePurchaseOrderCommand must be created via NewDeletePurchaseOrderCommand constructor",
)

// DeletePurchaseOrderCommand represents a request to remove a purchase order
// and its items. Stock movements recorded against the order stay in the log.
type DeletePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeletePurchaseOrderCommand creates a command to delete the given order.
func NewDeletePurchaseOrderCommand(orderID kernel.UUID) (DeletePurchaseOrderCommand, error) {
	deleteCommand := DeletePurchaseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deleteCommand.setOrderID(orderID); err != nil {
		return DeletePurchaseOrderCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeletePurchaseOrderCommandIsNotConstructed)
}

// OrderID returns the purchase order to delete.
func (c DeletePurchaseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *DeletePurchaseOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

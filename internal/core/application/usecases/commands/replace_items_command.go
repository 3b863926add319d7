package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrReplaceItemsCommandIsNotConstructed = errors.New(
	"ReplaceItemsCommand must be created via NewReplaceItemsCommand constructor",
)

// ReplaceItemsCommand represents a request to swap a purchase order's entire
// item collection for a new one. Only orders without receiving progress
// accept replacement.
type ReplaceItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	items   []ItemInput

	guard guard.ConstructorGuard
}

// NewReplaceItemsCommand creates a command to replace the order's items.
// The item inputs follow the same validation rules as order creation.
func NewReplaceItemsCommand(orderID kernel.UUID, items []ItemInput) (ReplaceItemsCommand, error) {
	replaceCommand := ReplaceItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		replaceCommand.setOrderID(orderID),
		replaceCommand.setItems(items),
	); err != nil {
		return ReplaceItemsCommand{}, err
	}

	return replaceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceItemsCommand) Validate() error {
	return c.guard.Validate(ErrReplaceItemsCommandIsNotConstructed)
}

// OrderID returns the purchase order whose items are replaced.
func (c ReplaceItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the replacement order lines.
func (c ReplaceItemsCommand) Items() []ItemInput {
	return c.items
}

func (c *ReplaceItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReplaceItemsCommand) setItems(items []ItemInput) error {
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

package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrIssueOrderCommandIsNotConstructed = errors.New(
	"IssueOrderCommand must be created via NewIssueOrderCommand constructor",
)

// IssueOrderCommand represents a request to issue a draft purchase order
// to its supplier, freezing the ordered quantities.
type IssueOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewIssueOrderCommand creates a command to issue the given draft order.
func NewIssueOrderCommand(orderID kernel.UUID) (IssueOrderCommand, error) {
	issueCommand := IssueOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := issueCommand.setOrderID(orderID); err != nil {
		return IssueOrderCommand{}, err
	}

	return issueCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c IssueOrderCommand) Validate() error {
	return c.guard.Validate(ErrIssueOrderCommandIsNotConstructed)
}

// OrderID returns the purchase order to issue.
func (c IssueOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *IssueOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

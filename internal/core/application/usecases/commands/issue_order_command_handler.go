package commands

import (
	"context"
)

// IssueOrderCommandHandler moves a draft order to Issued.
type IssueOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewIssueOrderCommandHandler creates a handler for issuing draft orders.
func NewIssueOrderCommandHandler(uowFactory OrderUoWFactory) IssueOrderCommandHandler {
	return IssueOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the issue command.
func (h IssueOrderCommandHandler) Handle(ctx context.Context, cmd IssueOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.PurchaseOrderRepository()
	po, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = po.Issue(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, po); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

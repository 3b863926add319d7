package commands

import (
	"context"

	"procurement/internal/core/domain/model/supplier"
)

// CreateSupplierCommandHandler registers new suppliers.
type CreateSupplierCommandHandler struct {
	uowFactory SupplierUoWFactory
}

// NewCreateSupplierCommandHandler creates a handler for supplier registration.
func NewCreateSupplierCommandHandler(uowFactory SupplierUoWFactory) CreateSupplierCommandHandler {
	return CreateSupplierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the supplier creation command.
func (h CreateSupplierCommandHandler) Handle(ctx context.Context, cmd CreateSupplierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sup, err := supplier.NewSupplier(
		cmd.SupplierID(), cmd.Name(), cmd.TaxID(), cmd.Email(), cmd.Address(), cmd.Notes(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SupplierRepository().Add(ctx, sup); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

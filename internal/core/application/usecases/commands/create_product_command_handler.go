package commands

import (
	"context"

	"procurement/internal/core/domain/model/product"
)

// CreateProductCommandHandler registers new catalog products.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product registration.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	prod, err := product.NewProduct(
		cmd.ProductID(), cmd.SKU(), cmd.Name(), cmd.Description(),
		cmd.UnitVolume(), cmd.Unit(), cmd.DefaultPrice(),
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

	if err = uow.ProductRepository().Add(ctx, prod); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

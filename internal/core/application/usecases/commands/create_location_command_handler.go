package commands

import (
	"context"

	"procurement/internal/core/domain/model/warehouse"
)

// CreateLocationCommandHandler registers new warehouse locations.
type CreateLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewCreateLocationCommandHandler creates a handler for location registration.
func NewCreateLocationCommandHandler(uowFactory LocationUoWFactory) CreateLocationCommandHandler {
	return CreateLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location creation command.
func (h CreateLocationCommandHandler) Handle(ctx context.Context, cmd CreateLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	location, err := warehouse.NewLocation(
		cmd.LocationID(), cmd.Code(), cmd.Description(), cmd.CapacityVolume(),
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

	if err = uow.LocationRepository().Add(ctx, location); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"fmt"
)

// AddCourierStorageCommandHandler gives an existing courier one more storage place.
type AddCourierStorageCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewAddCourierStorageCommandHandler opens a courier unit of work per call.
func NewAddCourierStorageCommandHandler(uowFactory CourierUoWFactory) AddCourierStorageCommandHandler {
	return AddCourierStorageCommandHandler{uowFactory: uowFactory}
}

// Handle loads the courier, adds the place and saves it in one transaction.
// An unknown courier yields errs.ErrObjectNotFound.
func (h AddCourierStorageCommandHandler) Handle(ctx context.Context, cmd AddCourierStorageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.CourierRepository()
	c, err := repo.GetByID(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = c.AddStoragePlace(cmd.Name(), cmd.TotalVolume()); err != nil {
		return fmt.Errorf("courier %s: %w", c.ID(), err)
	}
	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

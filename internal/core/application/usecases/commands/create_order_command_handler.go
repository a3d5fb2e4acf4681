package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// CreateOrderCommandHandler geocodes and stores new orders.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	geoClient  ports.GeoClient
}

// NewCreateOrderCommandHandler resolves streets with geoClient.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, geoClient ports.GeoClient) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		geoClient:  geoClient,
	}
}

// Handle registers a new order. Repeating the command with an id that already
// exists succeeds without changing anything, so intake can be retried safely.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	_, err := orderRepo.GetByID(ctx, cmd.OrderID())
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	location, err := h.geoClient.GetLocation(ctx, cmd.Street())
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), location, cmd.Volume())
	if err != nil {
		return err
	}

	err = orderRepo.Add(ctx, o)
	if errors.Is(err, errs.ErrObjectExists) {
		return nil
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

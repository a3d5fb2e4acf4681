package commands

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrNoAvailableCouriers is returned when an order waits but no courier has a free place.
	ErrNoAvailableCouriers = errors.New("no available couriers")
	// ErrNoAvailableOrders signals that no created order is left to match.
	ErrNoAvailableOrders = errors.New("no available orders")
)

// AssignOrdersResult describes what one assign tick did.
type AssignOrdersResult struct {
	// Assigned is the number of orders matched with a courier.
	Assigned int
}

// AssignOrdersCommandHandler matches waiting orders with couriers, one
// transaction per order.
type AssignOrdersCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.OrderDispatcher
}

// NewAssignOrdersCommandHandler picks winners with dispatcher.
func NewAssignOrdersCommandHandler(uowFactory UoWFactory, dispatcher services.OrderDispatcher) AssignOrdersCommandHandler {
	return AssignOrdersCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle matches up to BatchSize orders, oldest first. Having no waiting order
// is not an error. Having waiting orders but no courier with free capacity fails
// with ErrNoAvailableCouriers unless some order was already matched in this tick.
func (h AssignOrdersCommandHandler) Handle(ctx context.Context, cmd AssignOrdersCommand) (AssignOrdersResult, error) {
	var result AssignOrdersResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	for result.Assigned < cmd.BatchSize() {
		err := h.assignOne(ctx)
		if errors.Is(err, ErrNoAvailableOrders) {
			return result, nil
		}
		if errors.Is(err, ErrNoAvailableCouriers) && result.Assigned > 0 {
			return result, nil
		}
		if err != nil {
			return result, err
		}
		result.Assigned++
	}

	return result, nil
}

func (h AssignOrdersCommandHandler) assignOne(ctx context.Context) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	o, err := orderRepo.GetOldestCreated(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoAvailableOrders
	}
	if err != nil {
		return err
	}

	couriers, err := courierRepo.GetAllWithFreeCapacity(ctx)
	if err != nil {
		return err
	}
	if len(couriers) == 0 {
		return fmt.Errorf("%w: order %s is waiting", ErrNoAvailableCouriers, o.ID())
	}

	winner, err := h.dispatcher.Dispatch(o, couriers)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}
	if err = courierRepo.Update(ctx, winner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

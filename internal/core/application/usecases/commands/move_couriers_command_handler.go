package commands

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// ErrInvalidState is returned when orders and couriers loaded in one tick
// contradict each other. The whole tick is rolled back.
var ErrInvalidState = errs.ErrStateIsInvalid

// MoveCouriersResult describes what one move tick did.
type MoveCouriersResult struct {
	// Moved counts orders whose courier took a step.
	Moved int
	// Completed counts orders delivered in this tick.
	Completed int
	// Failed counts orders skipped because of an error.
	Failed int
}

// MoveCouriersCommandHandler advances couriers toward their orders in one transaction per tick.
type MoveCouriersCommandHandler struct {
	uowFactory UoWFactory
}

// NewMoveCouriersCommandHandler opens a unit of work per tick.
func NewMoveCouriersCommandHandler(uowFactory UoWFactory) MoveCouriersCommandHandler {
	return MoveCouriersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the courier of every assigned order one step toward the order
// and completes the orders whose courier arrived. A courier carrying several
// orders moves once per order.
//
// A failure of a single order skips that order and is reported in the joined
// error after the rest of the tick is committed. An assigned order without a
// courier, or with a courier that does not exist, aborts the tick with
// ErrInvalidState and nothing is saved.
func (h MoveCouriersCommandHandler) Handle(ctx context.Context, cmd MoveCouriersCommand) (MoveCouriersResult, error) {
	var result MoveCouriersResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	orders, err := orderRepo.GetAllAssigned(ctx)
	if err != nil {
		return result, err
	}
	if len(orders) == 0 {
		return result, nil
	}

	couriers, err := h.loadCouriers(ctx, courierRepo.GetByID, orders)
	if err != nil {
		return result, err
	}

	var (
		itemErrs []error
		touched  []*courier.Courier
		seen     = make(map[kernel.UUID]struct{}, len(couriers))
	)
	for _, o := range orders {
		c := couriers[*o.CourierID()]
		if _, ok := seen[c.ID()]; !ok {
			seen[c.ID()] = struct{}{}
			touched = append(touched, c)
		}

		completed, err := h.step(o, c)
		if err != nil {
			result.Failed++
			itemErrs = append(itemErrs, fmt.Errorf("order %s: %w", o.ID(), err))
			continue
		}

		result.Moved++
		if !completed {
			continue
		}

		result.Completed++
		if err = orderRepo.Update(ctx, o); err != nil {
			return MoveCouriersResult{}, err
		}
	}

	for _, c := range touched {
		if err = courierRepo.Update(ctx, c); err != nil {
			return MoveCouriersResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return MoveCouriersResult{}, err
	}

	return result, errors.Join(itemErrs...)
}

// loadCouriers resolves the courier of each order once, so that every order
// sees the effects of earlier moves of a shared courier. Couriers are fetched
// in id order, the same order GetAllWithFreeCapacity locks them in.
func (h MoveCouriersCommandHandler) loadCouriers(
	ctx context.Context,
	getByID func(context.Context, kernel.UUID) (*courier.Courier, error),
	orders []*order.Order,
) (map[kernel.UUID]*courier.Courier, error) {
	ownerOf := make(map[kernel.UUID]kernel.UUID)
	ids := make([]kernel.UUID, 0, len(orders))

	for _, o := range orders {
		courierID := o.CourierID()
		if courierID == nil {
			return nil, fmt.Errorf("%w: order %s is assigned without a courier",
				ErrInvalidState, o.ID())
		}
		if _, ok := ownerOf[*courierID]; ok {
			continue
		}
		ownerOf[*courierID] = o.ID()
		ids = append(ids, *courierID)
	}

	slices.SortFunc(ids, func(a, b kernel.UUID) int {
		return strings.Compare(a.String(), b.String())
	})

	couriers := make(map[kernel.UUID]*courier.Courier, len(ids))
	for _, id := range ids {
		c, err := getByID(ctx, id)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: order %s is assigned to missing courier %s",
				ErrInvalidState, ownerOf[id], id)
		}
		if err != nil {
			return nil, err
		}
		couriers[id] = c
	}

	return couriers, nil
}

// step moves c toward o and completes o when c arrives.
func (h MoveCouriersCommandHandler) step(o *order.Order, c *courier.Courier) (bool, error) {
	if err := c.Move(o.Location()); err != nil {
		return false, err
	}

	arrived, err := c.Location().IsEqual(o.Location())
	if err != nil || !arrived {
		return false, err
	}

	if err = o.Complete(); err != nil {
		return false, err
	}
	if err = c.CompleteOrder(o); err != nil {
		return false, err
	}

	return true, nil
}

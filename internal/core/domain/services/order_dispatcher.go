package services

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrSuitableCourierNotFound is returned when no candidate can take the order.
	ErrSuitableCourierNotFound = errors.New("suitable courier not found")

	// ErrCouriersAreEmpty is returned for an empty candidate list.
	ErrCouriersAreEmpty = errs.NewValueIsInvalidErrorWithCause("couriers", errors.New("candidate list is empty"))
)

// OrderDispatcher matches one order with the courier that reaches it first.
// It is a stateless domain service and is safe for concurrent use.
//
// Key responsibilities:
//   - Filtering couriers down to those able to take the order
//   - Ranking the candidates by travel time to the order location
//   - Assigning the order and storing it with the winner
//
// Business rules:
//   - Travel time is Manhattan distance divided by courier speed
//   - Ties go to the courier that comes first in the input
//   - ErrSuitableCourierNotFound is returned when nobody fits, nothing is changed then
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	winner, err := dispatcher.Dispatch(o, couriers)
//	if errors.Is(err, services.ErrSuitableCourierNotFound) {
//	    // Leave the order in the Created status for the next tick
//	}
//	// o is Assigned to winner and stored in its first fitting place
type OrderDispatcher struct{}

// NewOrderDispatcher returns a ready OrderDispatcher.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch selects, among the couriers that can take the order, the one with the
// smallest travel time to the order location. On equal time the courier that
// comes first in couriers wins. The order is then assigned to the winner and
// stored in the winner's first fitting storage place.
func (d OrderDispatcher) Dispatch(o *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("order", err)
	}
	if len(couriers) == 0 {
		return nil, ErrCouriersAreEmpty
	}

	winner, err := d.findFastest(o, couriers)
	if err != nil {
		return nil, err
	}

	if err = o.Assign(winner.ID()); err != nil {
		return nil, err
	}
	if err = winner.TakeOrder(o); err != nil {
		return nil, err
	}

	return winner, nil
}

func (d OrderDispatcher) findFastest(o *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	var (
		best     *courier.Courier
		bestTime float64
	)

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		ok, err := c.CanTakeOrder(o)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		t, err := c.CalculateTimeToLocation(o.Location())
		if err != nil {
			return nil, err
		}

		if best == nil || t < bestTime {
			best, bestTime = c, t
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: order %s, %d candidates", ErrSuitableCourierNotFound, o.ID(), len(couriers))
	}

	return best, nil
}

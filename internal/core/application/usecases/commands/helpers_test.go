package commands_test

import (
	"context"
	"testing"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/require"
)

func loc(t *testing.T, x, y kernel.Coordinate) kernel.Location {
	t.Helper()
	l, err := kernel.NewLocation(x, y)
	require.NoError(t, err)
	return l
}

func newCourier(t *testing.T, speed int, at kernel.Location) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "Courier", speed, at)
	require.NoError(t, err)
	return c
}

func newOrder(t *testing.T, volume int, at kernel.Location) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), at, volume)
	require.NoError(t, err)
	return o
}

// assignedPair returns an order already dispatched to c.
func assignedPair(t *testing.T, c *courier.Courier, at kernel.Location) *order.Order {
	t.Helper()
	o := newOrder(t, 1, at)
	require.NoError(t, o.Assign(c.ID()))
	require.NoError(t, c.TakeOrder(o))
	return o
}

// newTxUoW prepares a unit of work that is begun once and always rolled back by defer.
func newTxUoW(ctx context.Context, orders ports.OrderRepository, couriers ports.CourierRepository) *MockUoW {
	u := new(MockUoW)
	u.On("Begin", ctx).Return(nil).Once()
	if orders != nil {
		u.On("OrderRepository").Return(orders)
	}
	if couriers != nil {
		u.On("CourierRepository").Return(couriers)
	}
	u.On("Rollback", ctx).Return(nil)
	return u
}

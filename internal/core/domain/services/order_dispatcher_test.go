package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loc(t *testing.T, x, y kernel.Coordinate) kernel.Location {
	t.Helper()
	l, err := kernel.NewLocation(x, y)
	require.NoError(t, err)
	return l
}

func newCourier(t *testing.T, name string, speed int, at kernel.Location) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), name, speed, at)
	require.NoError(t, err)
	return c
}

func newOrder(t *testing.T, volume int, at kernel.Location) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), at, volume)
	require.NoError(t, err)
	return o
}

func assertAssigned(t *testing.T, o *order.Order, c *courier.Courier) {
	t.Helper()
	assert.Equal(t, order.StatusAssigned, o.Status())
	require.NotNil(t, o.CourierID())
	assert.Equal(t, c.ID(), *o.CourierID())

	held := false
	for _, place := range c.StoragePlaces() {
		held = held || place.Holds(o.ID())
	}
	assert.True(t, held, "winner must store the order")
}

func TestOrderDispatcher_PicksNearestAtEqualSpeed(t *testing.T) {
	// Given
	o := newOrder(t, 5, loc(t, 5, 5))
	far := newCourier(t, "far", 1, loc(t, 5, 7))
	near := newCourier(t, "near", 1, loc(t, 5, 5))
	mid := newCourier(t, "mid", 1, loc(t, 6, 5))

	// When
	winner, err := services.NewOrderDispatcher().Dispatch(o, []*courier.Courier{far, near, mid})

	// Then
	require.NoError(t, err)
	assert.True(t, winner.IsEqual(near))
	assertAssigned(t, o, near)
}

func TestOrderDispatcher_PicksFastestAtEqualDistance(t *testing.T) {
	o := newOrder(t, 5, loc(t, 4, 4))
	slow := newCourier(t, "slow", 1, loc(t, 6, 6))
	medium := newCourier(t, "medium", 2, loc(t, 6, 6))
	fast := newCourier(t, "fast", 3, loc(t, 6, 6))

	winner, err := services.NewOrderDispatcher().Dispatch(o, []*courier.Courier{slow, medium, fast})

	require.NoError(t, err)
	assert.True(t, winner.IsEqual(fast))
	assertAssigned(t, o, fast)

	time, err := winner.CalculateTimeToLocation(o.Location())
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3.0, time, 1e-9)
}

func TestOrderDispatcher_FirstCourierWinsTie(t *testing.T) {
	o := newOrder(t, 5, loc(t, 2, 2))
	a := newCourier(t, "A", 1, loc(t, 1, 1))
	b := newCourier(t, "B", 1, loc(t, 3, 3))

	winner, err := services.NewOrderDispatcher().Dispatch(o, []*courier.Courier{a, b})

	require.NoError(t, err)
	assert.True(t, winner.IsEqual(a))
	time, err := winner.CalculateTimeToLocation(o.Location())
	require.NoError(t, err)
	assert.InDelta(t, 2.0, time, 1e-9)

	o2 := newOrder(t, 5, loc(t, 2, 2))
	a2 := newCourier(t, "A", 1, loc(t, 1, 1))
	b2 := newCourier(t, "B", 1, loc(t, 3, 3))

	winner, err = services.NewOrderDispatcher().Dispatch(o2, []*courier.Courier{b2, a2})

	require.NoError(t, err)
	assert.True(t, winner.IsEqual(b2), "order of the input decides ties")
}

func TestOrderDispatcher_SkipsCouriersThatCannotTakeOrder(t *testing.T) {
	o := newOrder(t, 8, loc(t, 5, 5))

	busy := newCourier(t, "busy", 5, loc(t, 5, 5))
	require.NoError(t, busy.TakeOrder(newOrder(t, 1, loc(t, 9, 9))))

	small, err := courier.RestoreCourier(kernel.NewUUID(), "small", 5, loc(t, 5, 6), []*courier.StoragePlace{
		mustPlace(t, "Pouch", 3),
	})
	require.NoError(t, err)

	free := newCourier(t, "free", 1, loc(t, 1, 1))

	winner, err := services.NewOrderDispatcher().Dispatch(o, []*courier.Courier{busy, small, free})

	require.NoError(t, err)
	assert.True(t, winner.IsEqual(free))
	assertAssigned(t, o, free)
}

func TestOrderDispatcher_Errors(t *testing.T) {
	t.Run("missing order", func(t *testing.T) {
		c := newCourier(t, "c", 1, kernel.MinLocation())

		winner, err := services.NewOrderDispatcher().Dispatch(nil, []*courier.Courier{c})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, winner)
	})

	t.Run("no candidates", func(t *testing.T) {
		o := newOrder(t, 1, kernel.MinLocation())

		winner, err := services.NewOrderDispatcher().Dispatch(o, nil)

		require.ErrorIs(t, err, services.ErrCouriersAreEmpty)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, winner)
		assert.Equal(t, order.StatusCreated, o.Status())
	})

	t.Run("nobody fits", func(t *testing.T) {
		o := newOrder(t, 11, kernel.MinLocation())
		c := newCourier(t, "c", 1, kernel.MinLocation())

		winner, err := services.NewOrderDispatcher().Dispatch(o, []*courier.Courier{c})

		require.ErrorIs(t, err, services.ErrSuitableCourierNotFound)
		assert.Nil(t, winner)
		assert.Equal(t, order.StatusCreated, o.Status())
	})

	t.Run("order already assigned", func(t *testing.T) {
		o := newOrder(t, 1, kernel.MinLocation())
		require.NoError(t, o.Assign(kernel.NewUUID()))
		c := newCourier(t, "c", 1, kernel.MinLocation())

		winner, err := services.NewOrderDispatcher().Dispatch(o, []*courier.Courier{c})

		require.ErrorIs(t, err, order.ErrOrderAlreadyAssigned)
		assert.Nil(t, winner)
		assert.True(t, c.HasFreeCapacity())
	})

	t.Run("zero courier in candidates", func(t *testing.T) {
		o := newOrder(t, 1, kernel.MinLocation())

		_, err := services.NewOrderDispatcher().Dispatch(o, []*courier.Courier{{}})

		require.ErrorIs(t, err, courier.ErrCourierIsNotConstructed)
	})
}

func mustPlace(t *testing.T, name string, volume int) *courier.StoragePlace {
	t.Helper()
	place, err := courier.NewStoragePlace(kernel.NewUUID(), name, volume)
	require.NoError(t, err)
	return place
}

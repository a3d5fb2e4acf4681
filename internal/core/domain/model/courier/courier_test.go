package courier_test

import (
	"testing"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
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

func newCourier(t *testing.T, speed int, at kernel.Location) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "Ivan", speed, at)
	require.NoError(t, err)
	return c
}

func newOrder(t *testing.T, volume int, at kernel.Location) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), at, volume)
	require.NoError(t, err)
	return o
}

func TestNewCourier(t *testing.T) {
	t.Run("valid courier gets default storage place", func(t *testing.T) {
		id := kernel.NewUUID()
		at := loc(t, 3, 4)

		c, err := courier.NewCourier(id, "Anna", 2, at)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, id, c.ID())
		assert.Equal(t, "Anna", c.Name())
		assert.Equal(t, 2, c.Speed())
		assert.Equal(t, at, c.Location())

		places := c.StoragePlaces()
		require.Len(t, places, 1)
		assert.Equal(t, courier.DefaultStoragePlaceName, places[0].Name())
		assert.Equal(t, courier.DefaultStoragePlaceVolume, places[0].TotalVolume())
		assert.True(t, c.HasFreeCapacity())
	})

	tests := []struct {
		name     string
		id       kernel.UUID
		title    string
		speed    int
		location kernel.Location
	}{
		{name: "nil id", id: kernel.UUID{}, title: "Anna", speed: 1, location: kernel.MinLocation()},
		{name: "empty name", id: kernel.NewUUID(), title: "", speed: 1, location: kernel.MinLocation()},
		{name: "blank name", id: kernel.NewUUID(), title: "   ", speed: 1, location: kernel.MinLocation()},
		{name: "zero speed", id: kernel.NewUUID(), title: "Anna", speed: 0, location: kernel.MinLocation()},
		{name: "negative speed", id: kernel.NewUUID(), title: "Anna", speed: -1, location: kernel.MinLocation()},
		{name: "missing location", id: kernel.NewUUID(), title: "Anna", speed: 1, location: kernel.Location{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := courier.NewCourier(tt.id, tt.title, tt.speed, tt.location)

			require.ErrorIs(t, err, errs.ErrValueIsRequired)
			assert.Nil(t, c)
		})
	}
}

func TestRestoreCourier(t *testing.T) {
	place, err := courier.NewStoragePlace(kernel.NewUUID(), "Trunk", 30)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		c, err := courier.RestoreCourier(kernel.NewUUID(), "Anna", 2, loc(t, 5, 5), []*courier.StoragePlace{place})

		require.NoError(t, err)
		require.Len(t, c.StoragePlaces(), 1)
		assert.Equal(t, place.ID(), c.StoragePlaces()[0].ID())
	})

	t.Run("without storage places", func(t *testing.T) {
		_, err := courier.RestoreCourier(kernel.NewUUID(), "Anna", 2, loc(t, 5, 5), nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("with zero storage place", func(t *testing.T) {
		_, err := courier.RestoreCourier(kernel.NewUUID(), "Anna", 2, loc(t, 5, 5), []*courier.StoragePlace{{}})

		require.ErrorIs(t, err, courier.ErrStoragePlaceIsNotConstructed)
	})
}

func TestCourier_AlwaysHasStoragePlace(t *testing.T) {
	for speed := 1; speed <= 5; speed++ {
		c := newCourier(t, speed, kernel.MaxLocation())
		assert.GreaterOrEqual(t, len(c.StoragePlaces()), 1)
	}
}

func TestCourier_AddStoragePlace(t *testing.T) {
	c := newCourier(t, 1, kernel.MinLocation())

	require.NoError(t, c.AddStoragePlace("Trunk", 50))
	require.ErrorIs(t, c.AddStoragePlace("Box", 0), courier.ErrInvalidVolume)
	require.ErrorIs(t, c.AddStoragePlace(" ", 5), errs.ErrValueIsInvalid)

	places := c.StoragePlaces()
	require.Len(t, places, 2)
	assert.Equal(t, "Trunk", places[1].Name())
}

func TestCourier_StoragePlacesIsACopy(t *testing.T) {
	c := newCourier(t, 1, kernel.MinLocation())

	places := c.StoragePlaces()
	places[0] = nil
	_ = append(places, nil)

	require.Len(t, c.StoragePlaces(), 1)
	assert.NotNil(t, c.StoragePlaces()[0])
}

func TestCourier_CanTakeOrder(t *testing.T) {
	t.Run("fits default bag", func(t *testing.T) {
		c := newCourier(t, 1, kernel.MinLocation())

		ok, err := c.CanTakeOrder(newOrder(t, 10, kernel.MaxLocation()))

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("too big for every place", func(t *testing.T) {
		c := newCourier(t, 1, kernel.MinLocation())

		ok, err := c.CanTakeOrder(newOrder(t, 11, kernel.MaxLocation()))

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("all places occupied", func(t *testing.T) {
		c := newCourier(t, 1, kernel.MinLocation())
		require.NoError(t, c.TakeOrder(newOrder(t, 1, kernel.MaxLocation())))

		ok, err := c.CanTakeOrder(newOrder(t, 1, kernel.MaxLocation()))

		require.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, c.HasFreeCapacity())
	})

	t.Run("missing order", func(t *testing.T) {
		c := newCourier(t, 1, kernel.MinLocation())

		ok, err := c.CanTakeOrder(nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.False(t, ok)
	})

	t.Run("does not reserve capacity", func(t *testing.T) {
		c := newCourier(t, 1, kernel.MinLocation())
		o := newOrder(t, 3, kernel.MaxLocation())

		_, err := c.CanTakeOrder(o)
		require.NoError(t, err)

		assert.False(t, c.StoragePlaces()[0].IsOccupied())
	})
}

func TestCourier_TakeOrder_FirstFit(t *testing.T) {
	c := newCourier(t, 1, kernel.MinLocation())
	require.NoError(t, c.AddStoragePlace("Trunk", 40))
	require.NoError(t, c.AddStoragePlace("Pouch", 5))

	small := newOrder(t, 4, kernel.MaxLocation())
	require.NoError(t, c.TakeOrder(small))

	places := c.StoragePlaces()
	assert.True(t, places[0].Holds(small.ID()), "first place that fits is used, not the tightest one")
	assert.False(t, places[1].IsOccupied())
	assert.False(t, places[2].IsOccupied())

	big := newOrder(t, 30, kernel.MaxLocation())
	require.NoError(t, c.TakeOrder(big))
	assert.True(t, c.StoragePlaces()[1].Holds(big.ID()))

	other := newOrder(t, 5, kernel.MaxLocation())
	require.NoError(t, c.TakeOrder(other))
	assert.True(t, c.StoragePlaces()[2].Holds(other.ID()))

	err := c.TakeOrder(newOrder(t, 1, kernel.MaxLocation()))
	require.ErrorIs(t, err, courier.ErrNoSuitableStoragePlace)
}

func TestCourier_TakeOrder_Errors(t *testing.T) {
	c := newCourier(t, 1, kernel.MinLocation())

	require.ErrorIs(t, c.TakeOrder(nil), errs.ErrValueIsRequired)
	require.ErrorIs(t, c.TakeOrder(newOrder(t, 11, kernel.MaxLocation())), courier.ErrNoSuitableStoragePlace)
}

func TestCourier_CompleteOrder(t *testing.T) {
	t.Run("frees the holding place", func(t *testing.T) {
		c := newCourier(t, 1, kernel.MinLocation())
		require.NoError(t, c.AddStoragePlace("Trunk", 40))
		o := newOrder(t, 20, kernel.MaxLocation())
		require.NoError(t, c.TakeOrder(o))
		require.True(t, c.StoragePlaces()[1].Holds(o.ID()))

		require.NoError(t, c.CompleteOrder(o))

		for _, place := range c.StoragePlaces() {
			assert.False(t, place.IsOccupied())
		}
	})

	t.Run("order not held is a no-op", func(t *testing.T) {
		c := newCourier(t, 1, kernel.MinLocation())
		held := newOrder(t, 2, kernel.MaxLocation())
		require.NoError(t, c.TakeOrder(held))

		require.NoError(t, c.CompleteOrder(newOrder(t, 2, kernel.MaxLocation())))

		assert.True(t, c.StoragePlaces()[0].Holds(held.ID()))
	})

	t.Run("missing order", func(t *testing.T) {
		c := newCourier(t, 1, kernel.MinLocation())

		require.ErrorIs(t, c.CompleteOrder(nil), errs.ErrValueIsRequired)
	})
}

func TestCourier_CalculateTimeToLocation(t *testing.T) {
	tests := []struct {
		name  string
		from  kernel.Location
		to    kernel.Location
		speed int
		want  float64
	}{
		{name: "already there", from: loc(t, 4, 4), to: loc(t, 4, 4), speed: 1, want: 0},
		{name: "speed 1", from: loc(t, 1, 1), to: loc(t, 2, 2), speed: 1, want: 2},
		{name: "speed 2", from: loc(t, 6, 6), to: loc(t, 4, 4), speed: 2, want: 2},
		{name: "speed 3", from: loc(t, 6, 6), to: loc(t, 4, 4), speed: 3, want: 4.0 / 3.0},
		{name: "across grid", from: kernel.MinLocation(), to: kernel.MaxLocation(), speed: 4, want: 4.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCourier(t, tt.speed, tt.from)

			got, err := c.CalculateTimeToLocation(tt.to)

			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	t.Run("missing target", func(t *testing.T) {
		c := newCourier(t, 1, kernel.MinLocation())

		_, err := c.CalculateTimeToLocation(kernel.Location{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCourier_Move(t *testing.T) {
	tests := []struct {
		name   string
		from   kernel.Location
		target kernel.Location
		speed  int
		want   kernel.Location
	}{
		{name: "x axis first", from: loc(t, 1, 1), target: loc(t, 10, 10), speed: 5, want: loc(t, 6, 1)},
		{name: "remainder goes to y", from: loc(t, 1, 1), target: loc(t, 3, 10), speed: 5, want: loc(t, 3, 4)},
		{name: "negative direction", from: loc(t, 9, 9), target: loc(t, 7, 2), speed: 4, want: loc(t, 7, 7)},
		{name: "only y", from: loc(t, 5, 2), target: loc(t, 5, 8), speed: 3, want: loc(t, 5, 5)},
		{name: "arrives exactly", from: loc(t, 2, 2), target: loc(t, 3, 3), speed: 2, want: loc(t, 3, 3)},
		{name: "does not overshoot", from: loc(t, 2, 2), target: loc(t, 3, 3), speed: 10, want: loc(t, 3, 3)},
		{name: "already there", from: loc(t, 4, 4), target: loc(t, 4, 4), speed: 3, want: loc(t, 4, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCourier(t, tt.speed, tt.from)

			require.NoError(t, c.Move(tt.target))

			assert.Equal(t, tt.want, c.Location())
		})
	}

	t.Run("missing target", func(t *testing.T) {
		c := newCourier(t, 1, kernel.MinLocation())

		require.ErrorIs(t, c.Move(kernel.Location{}), errs.ErrValueIsRequired)
		assert.Equal(t, kernel.MinLocation(), c.Location())
	})
}

func TestCourier_MoveNeverExceedsSpeed(t *testing.T) {
	for speed := 1; speed <= 6; speed++ {
		for x := kernel.LocationMinX; x <= kernel.LocationMaxX; x += 3 {
			for y := kernel.LocationMinY; y <= kernel.LocationMaxY; y += 2 {
				from := loc(t, x, y)
				target := loc(t, kernel.LocationMaxX+kernel.LocationMinX-x, y/2+1)
				c := newCourier(t, speed, from)

				before, err := from.DistanceTo(target)
				require.NoError(t, err)
				require.NoError(t, c.Move(target))

				travelled, err := from.DistanceTo(c.Location())
				require.NoError(t, err)
				after, err := c.Location().DistanceTo(target)
				require.NoError(t, err)

				assert.LessOrEqual(t, travelled, speed)
				assert.Equal(t, before-travelled, after, "courier must move straight toward the target")
			}
		}
	}
}

func TestCourier_ReachesTargetEventually(t *testing.T) {
	c := newCourier(t, 2, kernel.MinLocation())
	target := kernel.MaxLocation()

	ticks := 0
	for c.Location() != target {
		require.NoError(t, c.Move(target))
		ticks++
		require.LessOrEqual(t, ticks, 9)
	}

	assert.Equal(t, 9, ticks)
}

package courier_test

import (
	"testing"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlace(t *testing.T, volume int) *courier.StoragePlace {
	t.Helper()
	place, err := courier.NewStoragePlace(kernel.NewUUID(), "Backpack", volume)
	require.NoError(t, err)
	return place
}

func TestNewStoragePlace(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()

		place, err := courier.NewStoragePlace(id, "Trunk", 20)

		require.NoError(t, err)
		require.NoError(t, place.Validate())
		assert.Equal(t, id, place.ID())
		assert.Equal(t, "Trunk", place.Name())
		assert.Equal(t, 20, place.TotalVolume())
		assert.Nil(t, place.OrderID())
		assert.False(t, place.IsOccupied())
	})

	tests := []struct {
		name    string
		id      kernel.UUID
		title   string
		volume  int
		wantErr error
	}{
		{name: "nil id", id: kernel.UUID{}, title: "Bag", volume: 10, wantErr: errs.ErrValueIsRequired},
		{name: "empty name", id: kernel.NewUUID(), title: "", volume: 10, wantErr: errs.ErrValueIsInvalid},
		{name: "whitespace name", id: kernel.NewUUID(), title: " \t ", volume: 10, wantErr: errs.ErrValueIsInvalid},
		{name: "zero volume", id: kernel.NewUUID(), title: "Bag", volume: 0, wantErr: courier.ErrInvalidVolume},
		{name: "negative volume", id: kernel.NewUUID(), title: "Bag", volume: -4, wantErr: courier.ErrInvalidVolume},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			place, err := courier.NewStoragePlace(tt.id, tt.title, tt.volume)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, place)
		})
	}

	t.Run("all failures are reported", func(t *testing.T) {
		_, err := courier.NewStoragePlace(kernel.UUID{}, "", 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, courier.ErrInvalidVolume)
	})
}

func TestRestoreStoragePlace(t *testing.T) {
	t.Run("occupied", func(t *testing.T) {
		orderID := kernel.NewUUID()

		place, err := courier.RestoreStoragePlace(kernel.NewUUID(), "Bag", 10, &orderID)

		require.NoError(t, err)
		assert.True(t, place.IsOccupied())
		assert.True(t, place.Holds(orderID))
		assert.ErrorIs(t, place.CanStore(1), courier.ErrStoragePlaceIsOccupied)
	})

	t.Run("nil order id inside pointer", func(t *testing.T) {
		var orderID kernel.UUID

		_, err := courier.RestoreStoragePlace(kernel.NewUUID(), "Bag", 10, &orderID)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestStoragePlace_ZeroValue(t *testing.T) {
	var place courier.StoragePlace
	var nilPlace *courier.StoragePlace

	assert.ErrorIs(t, place.Validate(), courier.ErrStoragePlaceIsNotConstructed)
	assert.ErrorIs(t, nilPlace.Validate(), courier.ErrStoragePlaceIsNotConstructed)
}

func TestStoragePlace_CanStore(t *testing.T) {
	place := newPlace(t, 10)

	tests := []struct {
		name    string
		volume  int
		wantErr error
	}{
		{name: "smaller", volume: 3},
		{name: "exact fit", volume: 10},
		{name: "too big", volume: 11, wantErr: courier.ErrInvalidVolume},
		{name: "zero", volume: 0, wantErr: courier.ErrInvalidVolume},
		{name: "negative", volume: -1, wantErr: courier.ErrInvalidVolume},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := place.CanStore(tt.volume)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.False(t, place.IsOccupied(), "CanStore must not change state")
}

func TestStoragePlace_NeverHoldsTwoOrders(t *testing.T) {
	for _, volume := range []int{1, 5, 10} {
		place := newPlace(t, 10)
		first := kernel.NewUUID()
		require.NoError(t, place.Store(first, 4))

		assert.ErrorIs(t, place.CanStore(volume), courier.ErrStoragePlaceIsOccupied)
		assert.ErrorIs(t, place.Store(kernel.NewUUID(), volume), courier.ErrStoragePlaceIsOccupied)
		assert.True(t, place.Holds(first))
	}
}

func TestStoragePlace_Store(t *testing.T) {
	t.Run("stores order", func(t *testing.T) {
		place := newPlace(t, 10)
		orderID := kernel.NewUUID()

		require.NoError(t, place.Store(orderID, 7))

		require.NotNil(t, place.OrderID())
		assert.Equal(t, orderID, *place.OrderID())
	})

	t.Run("nil order id", func(t *testing.T) {
		place := newPlace(t, 10)

		err := place.Store(kernel.UUID{}, 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.False(t, place.IsOccupied())
	})

	t.Run("volume too big leaves place free", func(t *testing.T) {
		place := newPlace(t, 2)

		err := place.Store(kernel.NewUUID(), 3)

		require.ErrorIs(t, err, courier.ErrInvalidVolume)
		assert.False(t, place.IsOccupied())
	})

	t.Run("returned order id is a copy", func(t *testing.T) {
		place := newPlace(t, 10)
		orderID := kernel.NewUUID()
		require.NoError(t, place.Store(orderID, 1))

		*place.OrderID() = kernel.NewUUID()

		assert.True(t, place.Holds(orderID))
	})
}

func TestStoragePlace_Clear(t *testing.T) {
	t.Run("frees the place", func(t *testing.T) {
		place := newPlace(t, 10)
		orderID := kernel.NewUUID()
		require.NoError(t, place.Store(orderID, 5))

		require.NoError(t, place.Clear(orderID))

		assert.False(t, place.IsOccupied())
		assert.NoError(t, place.CanStore(10))
	})

	t.Run("mismatched order fails and keeps occupant", func(t *testing.T) {
		place := newPlace(t, 10)
		orderID := kernel.NewUUID()
		require.NoError(t, place.Store(orderID, 5))

		err := place.Clear(kernel.NewUUID())

		require.ErrorIs(t, err, courier.ErrOrderNotStoredInThisPlace)
		assert.True(t, place.Holds(orderID))
	})

	t.Run("empty place fails", func(t *testing.T) {
		place := newPlace(t, 10)

		err := place.Clear(kernel.NewUUID())

		require.ErrorIs(t, err, courier.ErrOrderNotStoredInThisPlace)
	})

	t.Run("nil order id", func(t *testing.T) {
		place := newPlace(t, 10)

		require.ErrorIs(t, place.Clear(kernel.UUID{}), errs.ErrValueIsRequired)
	})
}

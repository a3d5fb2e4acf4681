package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCourierCommand(t *testing.T) {
	t.Run("keeps given location", func(t *testing.T) {
		cmd, err := commands.NewCreateCourierCommand(" Oleg ", 2, loc(t, 4, 4))

		require.NoError(t, err)
		assert.False(t, cmd.CourierID().IsNil())
		assert.Equal(t, "Oleg", cmd.Name())
		assert.Equal(t, 2, cmd.Speed())
		assert.Equal(t, loc(t, 4, 4), cmd.Location())
	})

	t.Run("missing location becomes random", func(t *testing.T) {
		cmd, err := commands.NewCreateCourierCommand("Oleg", 2, kernel.Location{})

		require.NoError(t, err)
		assert.NoError(t, cmd.Location().Validate())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := commands.NewCreateCourierCommand("", 0, kernel.MinLocation())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "speed")
	})
}

func TestCreateCourierCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCourierCommand("Oleg", 3, loc(t, 2, 8))
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := newTxUoW(ctx, nil, courierRepo)

	mock.InOrder(
		courierRepo.On("Add", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateCourierCommandHandler(newCourierUoWFactory(uow))

	c, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, cmd.CourierID(), c.ID())
	assert.Equal(t, "Oleg", c.Name())
	assert.Equal(t, 3, c.Speed())
	require.Len(t, c.StoragePlaces(), 1)
	assert.Equal(t, courier.DefaultStoragePlaceVolume, c.StoragePlaces()[0].TotalVolume())
	uow.AssertExpectations(t)
}

func TestCreateCourierCommandHandler_AddFailure(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCourierCommand("Oleg", 3, loc(t, 2, 8))
	require.NoError(t, err)
	dbErr := errors.New("duplicate key")

	courierRepo := new(MockCourierRepository)
	uow := newTxUoW(ctx, nil, courierRepo)
	courierRepo.On("Add", ctx, mock.Anything).Return(dbErr).Once()

	handler := commands.NewCreateCourierCommandHandler(newCourierUoWFactory(uow))

	c, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, dbErr)
	assert.Nil(t, c)
	uow.AssertNotCalled(t, "Commit", ctx)
}

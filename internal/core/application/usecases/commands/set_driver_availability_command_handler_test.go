package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetDriverAvailabilityCommandHandler_Handle_MarkUnavailable(t *testing.T) {
	ctx := t.Context()
	testDriver := availableDriver(t)
	cmd, _ := commands.NewSetDriverAvailabilityCommand(testDriver.ID(), false)

	repo := new(MockDriverRepository)
	uow := new(MockDriverUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetDriverAvailabilityCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.False(t, updated.IsAvailable())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetDriverAvailabilityCommandHandler_Handle_AlreadyAvailable(t *testing.T) {
	ctx := t.Context()
	testDriver := availableDriver(t)
	cmd, _ := commands.NewSetDriverAvailabilityCommand(testDriver.ID(), true)

	repo := new(MockDriverRepository)
	uow := new(MockDriverUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetDriverAvailabilityCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	// setting the flag to its current value is a no-op, not an error
	require.NoError(t, err)
	assert.True(t, updated.IsAvailable())
}

func TestSetDriverAvailabilityCommandHandler_Handle_DriverNotFound(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewDriverID()
	cmd, _ := commands.NewSetDriverAvailabilityCommand(driverID, true)

	repo := new(MockDriverRepository)
	uow := new(MockDriverUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, driverID).
			Return(nil, errs.NewObjectNotFoundError("driver_id", driverID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetDriverAvailabilityCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

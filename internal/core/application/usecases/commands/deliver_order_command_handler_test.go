package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/delivery"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeliverOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testDriver := availableDriver(t)
	testOrder := assignedOrder(t, "ORD-1", testDriver)
	shipment, err := delivery.NewDelivery(testOrder.ID(), testOrder.DeliveryLocation(), testDriver.ID())
	require.NoError(t, err)
	cmd, _ := commands.NewDeliverOrderCommand(testOrder.ID())

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetForUpdate", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, testOrder.ID()).Return(shipment, nil).Once(),
		deliveryRepo.On("Upsert", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(RecordingPublisher)

	h := commands.NewDeliverOrderCommandHandler(factory, publisher)
	delivered, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Delivered, delivered.Status())
	// the driver reference survives delivery for audit
	require.NotNil(t, delivered.Driver())
	assert.True(t, delivered.Driver().IsEqual(testDriver.ID()))
	assert.True(t, testDriver.IsAvailable())
	assert.Equal(t, delivery.StatusDelivered, shipment.Status())

	require.Len(t, publisher.events, 1)
	assert.Equal(t, ports.EventOrderDelivered, publisher.events[0].Kind)
	assert.Equal(t, testDriver.ID().String(), publisher.events[0].DriverID)

	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_MissingDeliveryRecord(t *testing.T) {
	ctx := t.Context()
	testDriver := availableDriver(t)
	testOrder := assignedOrder(t, "ORD-1", testDriver)
	cmd, _ := commands.NewDeliverOrderCommand(testOrder.ID())

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetForUpdate", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, testOrder.ID()).
			Return(nil, errs.NewObjectNotFoundError("order_id", testOrder.ID())).
			Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverOrderCommandHandler(factory, new(RecordingPublisher))
	delivered, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, delivered.Status())
	deliveryRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestDeliverOrderCommandHandler_Handle_NotAssigned(t *testing.T) {
	ctx := t.Context()
	testOrder := borrowedOrder(t, "ORD-1")
	cmd, _ := commands.NewDeliverOrderCommand(testOrder.ID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(RecordingPublisher)

	h := commands.NewDeliverOrderCommandHandler(factory, publisher)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Empty(t, publisher.events)
}

func TestDeliverOrderCommandHandler_Handle_DeliveredIsFinal(t *testing.T) {
	ctx := t.Context()
	testDriver := availableDriver(t)
	testOrder := assignedOrder(t, "ORD-1", testDriver)
	_, err := testOrder.Deliver()
	require.NoError(t, err)
	cmd, _ := commands.NewDeliverOrderCommand(testOrder.ID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverOrderCommandHandler(factory, new(RecordingPublisher))
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

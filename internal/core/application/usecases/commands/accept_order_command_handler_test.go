package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shopbot/internal/core/application/usecases/commands"
	"shopbot/internal/core/domain/model/courier"
	"shopbot/internal/pkg/errs"
)

func newTestCourier(t *testing.T, id int64) *courier.Courier {
	t.Helper()

	c, err := courier.NewCourier(id, "@fast_courier", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 42)
	require.NoError(t, err)
	return c
}

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	createdAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	aggregate := newTestOrder(t, 100, createdAt)
	cmd, err := commands.NewAcceptOrderCommand(100, aggregate.ID(), 501, createdAt.Add(time.Minute))
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	courierRepo.On("Get", ctx, int64(501)).Return(newTestCourier(t, 501), nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, int64(100), aggregate.ID()).Return(aggregate, nil).Once()
	orderRepo.On("Claim", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderChanged", ctx, aggregate).Return(nil).Once()

	factory := new(MockOrderCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, publisher, discardLogger())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, aggregate.Courier())
	assert.Equal(t, int64(501), *aggregate.Courier())
	orderRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_UnknownCourier(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAcceptOrderCommand(100, "20240315103000", 999, time.Now())
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	courierRepo.On("Get", ctx, int64(999)).
		Return(nil, errs.NewObjectNotFoundError("courierId", int64(999))).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := commands.NewAcceptOrderCommandHandler(factory, publisher, discardLogger())
	err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	publisher.AssertNotCalled(t, "PublishOrderChanged", mock.Anything, mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_AlreadyClaimed(t *testing.T) {
	ctx := t.Context()
	createdAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	aggregate := newTestOrder(t, 100, createdAt)
	require.NoError(t, aggregate.Accept(777, createdAt.Add(time.Minute)))

	cmd, err := commands.NewAcceptOrderCommand(100, aggregate.ID(), 501, createdAt.Add(2*time.Minute))
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	courierRepo.On("Get", ctx, int64(501)).Return(newTestCourier(t, 501), nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, int64(100), aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := commands.NewAcceptOrderCommandHandler(factory, publisher, discardLogger())
	err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrConflict)
	orderRepo.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_ClaimRace(t *testing.T) {
	ctx := t.Context()
	createdAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	aggregate := newTestOrder(t, 100, createdAt)
	cmd, err := commands.NewAcceptOrderCommand(100, aggregate.ID(), 501, createdAt.Add(time.Minute))
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	courierRepo.On("Get", ctx, int64(501)).Return(newTestCourier(t, 501), nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, int64(100), aggregate.ID()).Return(aggregate, nil).Once()
	// another courier won the row between Get and Claim
	orderRepo.On("Claim", mock.Anything, aggregate).
		Return(errs.NewConflictError("orderId", aggregate.ID())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := commands.NewAcceptOrderCommandHandler(factory, publisher, discardLogger())
	err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertExpectations(t)
}

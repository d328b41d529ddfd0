package commands_test

import (
	"errors"
	"testing"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, clientActor(t).ID())
	cmd, _ := commands.NewStartOrderCommand(aggregate.ID(), adminActor(t))

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartOrderCommandHandler(factory, services.NewAuthorizationGate())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.InProgress, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestStartOrderCommandHandler_Handle_ForbiddenForClient(t *testing.T) {
	ctx := t.Context()
	owner := clientActor(t)
	aggregate := storedOrder(t, owner.ID())
	cmd, _ := commands.NewStartOrderCommand(aggregate.ID(), owner)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartOrderCommandHandler(factory, services.NewAuthorizationGate())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrActionIsForbidden)
	assert.Equal(t, order.Pending, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestStartOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewStartOrderCommand(storedOrder(t, clientActor(t).ID()).ID(), adminActor(t))

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("orderID", nil)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartOrderCommandHandler(factory, services.NewAuthorizationGate())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestStartOrderCommandHandler_Handle_AlreadyStarted(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, clientActor(t).ID())
	require.NoError(t, aggregate.Start())
	cmd, _ := commands.NewStartOrderCommand(aggregate.ID(), adminActor(t))

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartOrderCommandHandler(factory, services.NewAuthorizationGate())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
}

func TestStartOrderCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, clientActor(t).ID())
	cmd, _ := commands.NewStartOrderCommand(aggregate.ID(), adminActor(t))

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartOrderCommandHandler(factory, services.NewAuthorizationGate())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

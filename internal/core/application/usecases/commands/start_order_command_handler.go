package commands

import (
	"context"

	"atelier/internal/core/domain/services"
)

// StartOrderCommandHandler handles the transition of a pending order into progress.
// Loads the aggregate, authorizes the actor, applies the transition and persists
// the result within a single transaction.
type StartOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       services.AuthorizationGate
}

// NewStartOrderCommandHandler creates a handler for starting orders.
// Requires an OrderUoWFactory for transactional persistence.
func NewStartOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gate services.AuthorizationGate,
) StartOrderCommandHandler {
	return StartOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
	}
}

// Handle processes the start command.
// Returns errs.ObjectNotFoundError when the order does not exist,
// errs.ActionIsForbiddenError when the actor is not an administrator,
// and the domain transition error when the order is not pending.
func (h *StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.gate.CanPerform(cmd.Actor(), services.ActionStart, aggregate); err != nil {
		return err
	}

	if err = aggregate.Start(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"atelier/internal/core/domain/services"
)

// DeliverContentCommandHandler handles publication of delivered content.
// On first delivery the order gains its delivered content record; subsequent
// deliveries replace the description and append files. Either way the order
// moves to Review for the client to judge.
type DeliverContentCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       services.AuthorizationGate
}

// NewDeliverContentCommandHandler creates a handler for content delivery operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewDeliverContentCommandHandler(
	uowFactory OrderUoWFactory,
	gate services.AuthorizationGate,
) DeliverContentCommandHandler {
	return DeliverContentCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
	}
}

// Handle processes the delivery command.
// Returns errs.ObjectNotFoundError when the order does not exist,
// errs.ActionIsForbiddenError when the actor is not an administrator,
// and the domain transition error when the order is already completed.
func (h *DeliverContentCommandHandler) Handle(ctx context.Context, cmd DeliverContentCommand) error {
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

	if err = h.gate.CanPerform(cmd.Actor(), services.ActionDeliverContent, aggregate); err != nil {
		return err
	}

	if err = aggregate.Deliver(cmd.Description(), cmd.Files()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

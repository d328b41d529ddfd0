package commands

import (
	"context"

	"atelier/internal/core/domain/services"
)

// AddFeedbackCommandHandler handles client verdicts on delivered content.
// Appends the feedback to the order's log and resolves the review:
// approval completes the order, a revision request reopens it.
type AddFeedbackCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       services.AuthorizationGate
}

// NewAddFeedbackCommandHandler creates a handler for feedback operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewAddFeedbackCommandHandler(
	uowFactory OrderUoWFactory,
	gate services.AuthorizationGate,
) AddFeedbackCommandHandler {
	return AddFeedbackCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
	}
}

// Handle processes the feedback command.
// Returns errs.ObjectNotFoundError when the order does not exist,
// errs.ActionIsForbiddenError when the actor does not own the order,
// and the domain transition error when the order is not under review.
func (h *AddFeedbackCommandHandler) Handle(ctx context.Context, cmd AddFeedbackCommand) error {
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

	if err = h.gate.CanPerform(cmd.Actor(), services.ActionAppendFeedback, aggregate); err != nil {
		return err
	}

	if _, err = aggregate.AddFeedback(cmd.Actor().ID(), cmd.FeedbackType(), cmd.Message()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

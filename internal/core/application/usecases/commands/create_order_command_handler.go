package commands

import (
	"context"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Reserves a code from the order sequence and creates the order in Pending
// status with the requesting actor as its owner.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, gate)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), actor, "Logo Refresh", "",
//	    order.PriorityNormal, nil, nil)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	gate       services.AuthorizationGate
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CreateOrderUoWFactory for transactional persistence and code reservation.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	gate services.AuthorizationGate,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
	}
}

// Handle processes the order creation command.
// Reserves the next order code and persists the new Pending order.
// Uses a transaction to ensure the order is properly persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.gate.CanPerform(cmd.Actor(), services.ActionCreateOrder, nil); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	seq, err := uow.NextOrderCode(ctx)
	if err != nil {
		return err
	}

	code, err := order.CodeFromSequence(seq)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		code,
		cmd.Actor().ID(),
		cmd.Title(),
		cmd.Description(),
		cmd.Priority(),
		cmd.DueDate(),
		cmd.Attachments(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrStartOrderCommandIsNotConstructed = errors.New(
	"StartOrderCommand must be created via NewStartOrderCommand constructor",
)

// StartOrderCommand represents a request to begin work on a pending order.
// Only administrators may start orders.
type StartOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewStartOrderCommand creates a command to move an order into progress.
// Validates that the order ID and actor are valid.
func NewStartOrderCommand(orderID kernel.UUID, actor kernel.Actor) (StartOrderCommand, error) {
	startCommand := StartOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		startCommand.setOrderID(orderID),
		startCommand.setActor(actor),
	); err != nil {
		return StartOrderCommand{}, err
	}

	return startCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartOrderCommandIsNotConstructed if validation fails.
func (c StartOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to start.
func (c StartOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated actor requesting the transition.
func (c StartOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *StartOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrDeliverContentCommandIsNotConstructed = errors.New(
	"DeliverContentCommand must be created via NewDeliverContentCommand constructor",
)

// DeliverContentCommand represents an administrator publishing work results
// on an order. Carries the description shown to the client and the already-stored
// deliverable files. Delivery always moves the order to Review.
type DeliverContentCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	actor       kernel.Actor
	description string
	files       []order.Attachment

	guard guard.ConstructorGuard
}

// NewDeliverContentCommand creates a command to publish delivered content.
// Validates that the order ID and actor are valid. The description and file
// list may each be empty; a description-only delivery replaces the text
// without adding files.
func NewDeliverContentCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	description string,
	files []order.Attachment,
) (DeliverContentCommand, error) {
	deliverCommand := DeliverContentCommand{
		description: description,
		files:       append([]order.Attachment(nil), files...),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliverCommand.setOrderID(orderID),
		deliverCommand.setActor(actor),
	); err != nil {
		return DeliverContentCommand{}, err
	}

	return deliverCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeliverContentCommandIsNotConstructed if validation fails.
func (c DeliverContentCommand) Validate() error {
	return c.guard.Validate(ErrDeliverContentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order receiving content.
func (c DeliverContentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated actor delivering the content.
func (c DeliverContentCommand) Actor() kernel.Actor {
	return c.actor
}

// Description returns the text presented to the client with the delivery.
func (c DeliverContentCommand) Description() string {
	return c.description
}

// Files returns the stored deliverable files.
func (c DeliverContentCommand) Files() []order.Attachment {
	return append([]order.Attachment(nil), c.files...)
}

func (c *DeliverContentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeliverContentCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

package commands

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTitleIsRequired = errors.New("title is required")
)

// CreateOrderCommand represents a request to register a new order.
// Encapsulates the brief details and the already-stored reference files.
// The requesting actor becomes the order's owner.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, actor, "Logo Refresh", "Vector formats please",
//	    order.PriorityUrgent, &dueDate, attachments)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, gate)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	actor       kernel.Actor
	title       string
	description string
	priority    order.Priority
	dueDate     *time.Time
	attachments []order.Attachment

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID and actor are valid, the title is not empty,
// and the priority is a known value. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	title string,
	description string,
	priority order.Priority,
	dueDate *time.Time,
	attachments []order.Attachment,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		description: description,
		dueDate:     dueDate,
		attachments: append([]order.Attachment(nil), attachments...),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setActor(actor),
		orderCommand.setTitle(title),
		orderCommand.setPriority(priority),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated actor placing the order.
func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Title returns the short human-readable order title.
func (c CreateOrderCommand) Title() string {
	return c.title
}

// Description returns the free-form brief. May be empty.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// Priority returns the requested urgency level.
func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

// DueDate returns the optional requested completion date.
func (c CreateOrderCommand) DueDate() *time.Time {
	return c.dueDate
}

// Attachments returns the stored reference files supplied with the brief.
func (c CreateOrderCommand) Attachments() []order.Attachment {
	return append([]order.Attachment(nil), c.attachments...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

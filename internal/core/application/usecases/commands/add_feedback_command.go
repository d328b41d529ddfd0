package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrAddFeedbackCommandIsNotConstructed = errors.New(
	"AddFeedbackCommand must be created via NewAddFeedbackCommand constructor",
)

// AddFeedbackCommand represents a client's verdict on delivered content.
// Approval completes the order; a revision request sends it back to rework.
type AddFeedbackCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	actor        kernel.Actor
	feedbackType order.FeedbackType
	message      string

	guard guard.ConstructorGuard
}

// NewAddFeedbackCommand creates a command to record client feedback.
// Validates that the order ID and actor are valid and the feedback type
// is a known value. The message may be empty.
func NewAddFeedbackCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	feedbackType order.FeedbackType,
	message string,
) (AddFeedbackCommand, error) {
	feedbackCommand := AddFeedbackCommand{
		message: message,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		feedbackCommand.setOrderID(orderID),
		feedbackCommand.setActor(actor),
		feedbackCommand.setFeedbackType(feedbackType),
	); err != nil {
		return AddFeedbackCommand{}, err
	}

	return feedbackCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddFeedbackCommandIsNotConstructed if validation fails.
func (c AddFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrAddFeedbackCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being judged.
func (c AddFeedbackCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated actor giving the verdict.
func (c AddFeedbackCommand) Actor() kernel.Actor {
	return c.actor
}

// FeedbackType returns the verdict kind, approval or revision request.
func (c AddFeedbackCommand) FeedbackType() order.FeedbackType {
	return c.feedbackType
}

// Message returns the optional free-form comment.
func (c AddFeedbackCommand) Message() string {
	return c.message
}

func (c *AddFeedbackCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddFeedbackCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AddFeedbackCommand) setFeedbackType(feedbackType order.FeedbackType) error {
	if err := feedbackType.Validate(); err != nil {
		return err
	}

	c.feedbackType = feedbackType
	return nil
}

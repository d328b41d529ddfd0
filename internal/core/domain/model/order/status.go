package order

import (
	"errors"
	"fmt"

	"atelier/internal/pkg/errs"
)

// ErrOrderIsCompleted rejects any state change attempted against a completed
// order. Completed is terminal: no delivery, no restart, no further feedback.
var ErrOrderIsCompleted = errors.New("order is completed and accepts no further changes")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> InProgress ──> Review ──┬──> Completed
//	                             ^      │
//	                             │      v
//	                             └── Revision
//
// A content delivery forces Review from every non-terminal state; client
// feedback resolves Review into Completed or Revision. Completed is terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting for an administrator to start work.
	Pending

	// InProgress indicates an administrator has started work on the order.
	InProgress

	// Review indicates content has been delivered and the order awaits
	// the owning client's judgment.
	Review

	// Revision indicates the client has requested changes to the last
	// delivered content. The only way out is another delivery.
	Revision

	// Completed indicates the client approved the delivered content.
	// This is a final state with no further transitions allowed.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		InProgress: "IN_PROGRESS",
		Review:     "REVIEW",
		Revision:   "REVISION",
		Completed:  "COMPLETED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		InProgress: "IN_PROGRESS",
		Review:     "REVIEW",
		Revision:   "REVISION",
		Completed:  "COMPLETED",
	}
}

// StatusFromString parses a status from its wire representation
// (e.g. "IN_PROGRESS"). Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, InProgress, Review, Revision, Completed.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("PENDING", "IN_PROGRESS", ...).
// Implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status admits no further transitions.
// Only Completed is terminal.
func (s Status) IsTerminal() bool {
	return s == Completed
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Pending -> InProgress (administrator starts work)
//
// Every other source status is rejected. Returns the new status on success
// or an error if the transition is not allowed.
func (s Status) Start() (Status, error) {
	if s.IsTerminal() {
		return 0, ErrOrderIsCompleted
	}
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start work from", s.String()),
		)
	}

	return InProgress, nil
}

// Deliver transitions the status to Review.
//
// A content delivery supersedes whatever state the order was in: it is the
// event that signals "ready for client judgment". Every non-terminal status
// (Pending, InProgress, Review, Revision) therefore transitions to Review.
//
// Invalid transitions:
//   - Completed -> Review (terminal orders reject deliveries)
//   - Unknown -> Review (invalid initial state)
//
// Returns the new status on success or an error if the transition is not
// allowed.
func (s Status) Deliver() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, ErrOrderIsCompleted
	}

	return Review, nil
}

// Resolve transitions the status out of Review based on client feedback.
//
// Valid transitions:
//   - Review -> Completed (feedback type Approval)
//   - Review -> Revision (feedback type Revision)
//
// Feedback against any other status is rejected: the client judges delivered
// content, and only Review means content is awaiting judgment.
//
// Returns the new status on success or an error if the transition is not
// allowed.
func (s Status) Resolve(feedback FeedbackType) (Status, error) {
	if err := feedback.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, ErrOrderIsCompleted
	}
	if s != Review {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to resolve with feedback", s.String()),
		)
	}

	if feedback == FeedbackApproval {
		return Completed, nil
	}
	return Revision, nil
}

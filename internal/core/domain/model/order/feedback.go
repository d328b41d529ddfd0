package order

import (
	"fmt"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// FeedbackType classifies a client's response to delivered content.
type FeedbackType int

const (
	// FeedbackUnknown represents an invalid or undefined feedback type.
	FeedbackUnknown FeedbackType = iota

	// FeedbackApproval accepts the delivered content and completes the order.
	FeedbackApproval

	// FeedbackRevision sends the delivered content back for rework.
	FeedbackRevision
)

// FeedbackTypeFromString parses a feedback type from its wire representation
// ("APPROVAL" or "REVISION").
func FeedbackTypeFromString(s string) (FeedbackType, error) {
	switch s {
	case "APPROVAL":
		return FeedbackApproval, nil
	case "REVISION":
		return FeedbackRevision, nil
	default:
		return FeedbackUnknown, errs.NewValueIsInvalidErrorWithCause(
			"feedback type",
			fmt.Errorf("%q is not a valid feedback type", s),
		)
	}
}

// Validate checks if the FeedbackType value is valid.
func (t FeedbackType) Validate() error {
	if t != FeedbackApproval && t != FeedbackRevision {
		return errs.NewValueIsInvalidErrorWithCause(
			"feedback type is invalid",
			fmt.Errorf("%d is not a valid feedback type", t),
		)
	}
	return nil
}

// String returns the wire name of the feedback type.
func (t FeedbackType) String() string {
	switch t {
	case FeedbackApproval:
		return "APPROVAL"
	case FeedbackRevision:
		return "REVISION"
	default:
		return "UNKNOWN"
	}
}

// Feedback is one client response to a delivery. Entries are immutable once
// written and are never removed; together they form the order's append-only
// feedback log, ordered by creation time.
//
// A message is expected for revision requests by convention, but it is not
// enforced structurally: an empty revision message is recorded as given.
type Feedback struct {
	id           kernel.UUID
	feedbackType FeedbackType
	message      string
	authorID     kernel.UUID
	createdAt    time.Time
}

// NewFeedback creates a feedback entry with validation.
// The author reference must be a constructed UUID and the type must be valid.
func NewFeedback(id kernel.UUID, feedbackType FeedbackType, message string, authorID kernel.UUID, createdAt time.Time) (Feedback, error) {
	if err := id.Validate(); err != nil {
		return Feedback{}, err
	}
	if err := feedbackType.Validate(); err != nil {
		return Feedback{}, err
	}
	if err := authorID.Validate(); err != nil {
		return Feedback{}, err
	}

	return Feedback{
		id:           id,
		feedbackType: feedbackType,
		message:      message,
		authorID:     authorID,
		createdAt:    createdAt,
	}, nil
}

// ID returns the feedback entry's unique identifier.
func (f Feedback) ID() kernel.UUID {
	return f.id
}

// Type returns the feedback classification.
func (f Feedback) Type() FeedbackType {
	return f.feedbackType
}

// Message returns the client's message, possibly empty for approvals.
func (f Feedback) Message() string {
	return f.message
}

// AuthorID returns the identity of the client that wrote the feedback.
func (f Feedback) AuthorID() kernel.UUID {
	return f.authorID
}

// CreatedAt returns when the feedback was recorded.
func (f Feedback) CreatedAt() time.Time {
	return f.createdAt
}

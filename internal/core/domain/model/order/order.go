package order

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents one unit of requested creative work. It is the aggregate
// root that manages the order lifecycle from creation through delivery and
// review to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty human-facing code
//   - Is owned by exactly one client; ownership is immutable after creation
//   - Has a non-empty title and a valid priority
//   - Status transitions follow the lifecycle state machine in Status
//   - The status always reflects the most recent lifecycle event: the last
//     delivery forces Review, the last feedback entry resolves Review
//   - Owns at most one AdminContent record; deliveries amend it in place
//   - The feedback log is append-only and ordered by creation time
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. Mutations happen in memory as a
// unit; persistence commits the whole aggregate in one transaction so that a
// status change and the event that caused it are never observable apart.
type Order struct {
	// id is the internal, opaque, stable identifier
	id kernel.UUID

	// code is the human-facing sequential code, e.g. "ORD-007"
	code string

	// clientID is the owning client; immutable after creation
	clientID kernel.UUID

	title       string
	description string
	priority    Priority

	// status is the current state in the order lifecycle
	status Status

	// dueDate is the optional requested completion date
	dueDate *time.Time

	createdAt time.Time
	updatedAt time.Time

	// attachments are the client-submitted assets, in upload order
	attachments []Attachment

	// adminContent is the single delivered-work record (nil until delivery)
	adminContent *AdminContent

	// feedbacks is the append-only client response log, in creation order
	feedbacks []Feedback

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is the
// only way to create a valid new order, ensuring all invariants hold from the
// start. The creating client becomes the immutable owner, and the supplied
// attachments become the order's file manifest with their upload order
// preserved.
func NewOrder(
	id kernel.UUID,
	code string,
	clientID kernel.UUID,
	title string,
	description string,
	priority Priority,
	dueDate *time.Time,
	attachments []Attachment,
) (*Order, error) {
	now := time.Now().UTC()

	o := &Order{
		status:        Pending,
		description:   description,
		dueDate:       dueDate,
		attachments:   append([]Attachment(nil), attachments...),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setClientID(clientID),
		o.setTitle(title),
		o.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence.
// All value objects are validated, but the status is accepted as stored:
// restore does not replay transitions.
func RestoreOrder(
	id kernel.UUID,
	code string,
	clientID kernel.UUID,
	title string,
	description string,
	priority Priority,
	status Status,
	dueDate *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
	attachments []Attachment,
	adminContent *AdminContent,
	feedbacks []Feedback,
) (*Order, error) {
	o := &Order{
		status:        status,
		description:   description,
		dueDate:       dueDate,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		attachments:   append([]Attachment(nil), attachments...),
		adminContent:  adminContent,
		feedbacks:     append([]Feedback(nil), feedbacks...),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setClientID(clientID),
		o.setTitle(title),
		o.setPriority(priority),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's internal identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the human-facing sequential code.
func (o *Order) Code() string {
	return o.code
}

// ClientID returns the owning client's identity.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Title returns the order title.
func (o *Order) Title() string {
	return o.title
}

// Description returns the order description.
func (o *Order) Description() string {
	return o.description
}

// Priority returns the order priority.
func (o *Order) Priority() Priority {
	return o.priority
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DueDate returns the optional due date. Nil when none was requested.
func (o *Order) DueDate() *time.Time {
	return o.dueDate
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order last changed.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Attachments returns the client-submitted assets in upload order.
// The returned slice is a copy.
func (o *Order) Attachments() []Attachment {
	return append([]Attachment(nil), o.attachments...)
}

// AdminContent returns the delivered-work record, or nil before the first
// delivery.
func (o *Order) AdminContent() *AdminContent {
	return o.adminContent
}

// Feedbacks returns the append-only feedback log in creation order.
// The returned slice is a copy.
func (o *Order) Feedbacks() []Feedback {
	return append([]Feedback(nil), o.feedbacks...)
}

// LatestFeedback returns the most recent feedback entry, reading the tail of
// the log. The second return value is false when no feedback exists yet.
func (o *Order) LatestFeedback() (Feedback, bool) {
	if len(o.feedbacks) == 0 {
		return Feedback{}, false
	}
	return o.feedbacks[len(o.feedbacks)-1], true
}

// Start moves the order from Pending to InProgress.
//
// This records that an administrator has begun work. The role check itself
// lives in the authorization gate; the aggregate only enforces the state
// machine.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// Deliver records a content delivery and forces the order into Review.
//
// On the first delivery the AdminContent record is created with the given
// description and files. On repeat deliveries the description is replaced
// and the files are appended; prior files remain visible. The status change
// and the content change form one in-memory unit and must be persisted in
// one transaction.
//
// Delivery is rejected when the order is Completed.
func (o *Order) Deliver(description string, files []Attachment) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if o.adminContent == nil {
		content, contentErr := NewAdminContent(kernel.NewUUID(), description, files, now)
		if contentErr != nil {
			return contentErr
		}
		o.adminContent = content
	} else {
		o.adminContent.amend(description, files, now)
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// AddFeedback appends an immutable feedback entry and resolves the order's
// Review status: approval completes the order, a revision request sends it
// back to Revision. The append and the status change form one in-memory unit
// and must be persisted in one transaction.
//
// Feedback is rejected unless the order is in Review. Ownership of the order
// is checked by the authorization gate, not here; authorID is recorded as the
// entry's author reference.
func (o *Order) AddFeedback(authorID kernel.UUID, feedbackType FeedbackType, message string) (Feedback, error) {
	newStatus, err := o.status.Resolve(feedbackType)
	if err != nil {
		return Feedback{}, err
	}

	feedback, err := NewFeedback(kernel.NewUUID(), feedbackType, message, authorID, time.Now().UTC())
	if err != nil {
		return Feedback{}, err
	}

	o.feedbacks = append(o.feedbacks, feedback)
	o.status = newStatus
	o.updatedAt = feedback.CreatedAt()
	return feedback, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	o.code = code
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	o.title = title
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

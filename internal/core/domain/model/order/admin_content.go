package order

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
)

// AdminContent is the single delivered-work record attached to an order.
// An order owns at most one; repeated deliveries amend this record in place.
// The description is replaced on every delivery, while delivered files are
// only ever appended so the revision history of delivered assets stays
// visible across cycles. The file collection is unbounded by policy.
type AdminContent struct {
	id          kernel.UUID
	description string
	files       []Attachment
	createdAt   time.Time
	updatedAt   time.Time
}

// NewAdminContent creates the delivered-work record for a first delivery.
func NewAdminContent(id kernel.UUID, description string, files []Attachment, createdAt time.Time) (*AdminContent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &AdminContent{
		id:          id,
		description: description,
		files:       append([]Attachment(nil), files...),
		createdAt:   createdAt,
		updatedAt:   createdAt,
	}, nil
}

// RestoreAdminContent reconstructs a delivered-work record from persistence.
func RestoreAdminContent(id kernel.UUID, description string, files []Attachment, createdAt, updatedAt time.Time) (*AdminContent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &AdminContent{
		id:          id,
		description: description,
		files:       append([]Attachment(nil), files...),
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// amend applies a repeat delivery: the description is replaced with the
// newly supplied value and the new files are appended to the existing
// collection. Prior files are never removed or replaced.
func (c *AdminContent) amend(description string, files []Attachment, now time.Time) {
	c.description = description
	c.files = append(c.files, files...)
	c.updatedAt = now
}

// ID returns the record's unique identifier.
func (c *AdminContent) ID() kernel.UUID {
	return c.id
}

// Description returns the description of the latest delivery.
func (c *AdminContent) Description() string {
	return c.description
}

// Files returns the delivered assets in delivery order.
// The returned slice is a copy; mutating it does not affect the record.
func (c *AdminContent) Files() []Attachment {
	return append([]Attachment(nil), c.files...)
}

// CreatedAt returns when the first delivery happened.
func (c *AdminContent) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns when the latest delivery happened.
func (c *AdminContent) UpdatedAt() time.Time {
	return c.updatedAt
}

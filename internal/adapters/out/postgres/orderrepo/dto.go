// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by owner and creation time.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"uniqueIndex"`
	ClientID    uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Description string
	Priority    string
	Status      string
	DueDate     *time.Time
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	Attachments  []AttachmentDTO  `gorm:"foreignKey:OrderID"`
	AdminContent *AdminContentDTO `gorm:"foreignKey:OrderID"`
	Feedbacks    []FeedbackDTO    `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AttachmentDTO represents one stored file row. Brief reference files carry a
// nil AdminContentID; delivered content files reference their owning record.
// Position preserves upload order within each collection.
type AttachmentDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID  `gorm:"type:uuid;index"`
	AdminContentID *uuid.UUID `gorm:"type:uuid;index"`
	StoredName     string
	OriginalName   string
	MimeType       string
	SizeBytes      int64
	Location       string
	Position       int
}

// TableName specifies the database table name for attachment rows.
func (AttachmentDTO) TableName() string {
	return "attachments"
}

// AdminContentDTO represents the single delivered-work record of an order.
// The unique index on OrderID enforces the one-record-per-order invariant
// at the storage level.
type AdminContentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for delivered-work records.
func (AdminContentDTO) TableName() string {
	return "admin_contents"
}

// FeedbackDTO represents one append-only feedback log entry.
type FeedbackDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	FeedbackType string
	Message      string
	AuthorID     uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for feedback entries.
func (FeedbackDTO) TableName() string {
	return "feedbacks"
}

// fromDomain converts an order domain aggregate to its database representation.
// Brief attachments and delivered content files land in one attachment table;
// the owning content record distinguishes them.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	dto := OrderDTO{
		ID:          orderID,
		Code:        aggregate.Code(),
		ClientID:    aggregate.ClientID().Bytes(),
		Title:       aggregate.Title(),
		Description: aggregate.Description(),
		Priority:    aggregate.Priority().String(),
		Status:      aggregate.Status().String(),
		DueDate:     aggregate.DueDate(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}

	for i, attachment := range aggregate.Attachments() {
		dto.Attachments = append(dto.Attachments, attachmentFromDomain(attachment, orderID, nil, i))
	}

	if content := aggregate.AdminContent(); content != nil {
		contentID := content.ID().Bytes()
		dto.AdminContent = &AdminContentDTO{
			ID:          contentID,
			OrderID:     orderID,
			Description: content.Description(),
			CreatedAt:   content.CreatedAt(),
			UpdatedAt:   content.UpdatedAt(),
		}
		for i, file := range content.Files() {
			dto.Attachments = append(dto.Attachments, attachmentFromDomain(file, orderID, &contentID, i))
		}
	}

	for _, feedback := range aggregate.Feedbacks() {
		dto.Feedbacks = append(dto.Feedbacks, FeedbackDTO{
			ID:           feedback.ID().Bytes(),
			OrderID:      orderID,
			FeedbackType: feedback.Type().String(),
			Message:      feedback.Message(),
			AuthorID:     feedback.AuthorID().Bytes(),
			CreatedAt:    feedback.CreatedAt(),
		})
	}

	return dto
}

func attachmentFromDomain(attachment order.Attachment, orderID uuid.UUID, contentID *uuid.UUID, position int) AttachmentDTO {
	return AttachmentDTO{
		ID:             attachment.ID().Bytes(),
		OrderID:        orderID,
		AdminContentID: contentID,
		StoredName:     attachment.StoredName(),
		OriginalName:   attachment.OriginalName(),
		MimeType:       attachment.MimeType(),
		SizeBytes:      attachment.SizeBytes(),
		Location:       attachment.Location(),
		Position:       position,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including delivered content and the
// feedback log using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	priority, err := order.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var briefs, delivered []order.Attachment
	for _, row := range dto.Attachments {
		attachment, attachmentErr := attachmentToDomain(row)
		if attachmentErr != nil {
			return nil, attachmentErr
		}
		if row.AdminContentID != nil {
			delivered = append(delivered, attachment)
		} else {
			briefs = append(briefs, attachment)
		}
	}

	var adminContent *order.AdminContent
	if dto.AdminContent != nil {
		contentID, contentErr := kernel.UUIDFromBytes(dto.AdminContent.ID[:])
		if contentErr != nil {
			return nil, contentErr
		}
		adminContent, err = order.RestoreAdminContent(
			contentID,
			dto.AdminContent.Description,
			delivered,
			dto.AdminContent.CreatedAt,
			dto.AdminContent.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
	}

	feedbacks := make([]order.Feedback, 0, len(dto.Feedbacks))
	for _, row := range dto.Feedbacks {
		feedback, feedbackErr := feedbackToDomain(row)
		if feedbackErr != nil {
			return nil, feedbackErr
		}
		feedbacks = append(feedbacks, feedback)
	}

	return order.RestoreOrder(
		id,
		dto.Code,
		clientID,
		dto.Title,
		dto.Description,
		priority,
		status,
		dto.DueDate,
		dto.CreatedAt,
		dto.UpdatedAt,
		briefs,
		adminContent,
		feedbacks,
	)
}

func attachmentToDomain(row AttachmentDTO) (order.Attachment, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return order.Attachment{}, err
	}

	return order.NewAttachment(id, row.StoredName, row.OriginalName, row.MimeType, row.SizeBytes, row.Location)
}

func feedbackToDomain(row FeedbackDTO) (order.Feedback, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return order.Feedback{}, err
	}

	authorID, err := kernel.UUIDFromBytes(row.AuthorID[:])
	if err != nil {
		return order.Feedback{}, err
	}

	feedbackType, err := order.FeedbackTypeFromString(row.FeedbackType)
	if err != nil {
		return order.Feedback{}, err
	}

	return order.NewFeedback(id, feedbackType, row.Message, authorID, row.CreatedAt)
}

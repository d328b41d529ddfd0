// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"context"
	"database/sql"
	"time"

	"atelier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttachmentView is the read model of a stored file, either a brief
// reference file or a delivered content file.
type AttachmentView struct {
	ID           kernel.UUID
	StoredName   string
	OriginalName string
	MimeType     string
	SizeBytes    int64
	Location     string
}

// AdminContentView is the read model of the delivered-work record.
type AdminContentView struct {
	ID          kernel.UUID
	Description string
	Files       []AttachmentView
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FeedbackView is the read model of one feedback log entry.
type FeedbackView struct {
	ID        kernel.UUID
	Type      string
	Message   string
	AuthorID  kernel.UUID
	CreatedAt time.Time
}

// OrderView is the complete read model of an order, including its file
// manifest, delivered content and feedback history.
type OrderView struct {
	ID           kernel.UUID
	Code         string
	ClientID     kernel.UUID
	Title        string
	Description  string
	Priority     string
	Status       string
	DueDate      *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Attachments  []AttachmentView
	AdminContent *AdminContentView
	Feedbacks    []FeedbackView
}

func scanOrderRow(rows *sql.Rows) (OrderView, error) {
	var view OrderView
	var id, clientID uuid.UUID
	var dueDate sql.NullTime

	err := rows.Scan(
		&id,
		&view.Code,
		&clientID,
		&view.Title,
		&view.Description,
		&view.Priority,
		&view.Status,
		&dueDate,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return OrderView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, err
	}
	if view.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return OrderView{}, err
	}
	if dueDate.Valid {
		due := dueDate.Time
		view.DueDate = &due
	}

	return view, nil
}

// loadAttachments fetches attachment rows for the given orders, split into
// brief attachments (no owning content record) and delivered files, keyed by
// order id in upload order.
func loadAttachments(
	ctx context.Context,
	db *gorm.DB,
	orderIDs []uuid.UUID,
) (briefs map[uuid.UUID][]AttachmentView, delivered map[uuid.UUID][]AttachmentView, err error) {
	briefs = make(map[uuid.UUID][]AttachmentView)
	delivered = make(map[uuid.UUID][]AttachmentView)
	if len(orderIDs) == 0 {
		return briefs, delivered, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			admin_content_id,
			stored_name,
			original_name,
			mime_type,
			size_bytes,
			location
		FROM attachments
		WHERE order_id IN ?
		ORDER BY position
	`, orderIDs).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var attachment AttachmentView
		var id, orderID uuid.UUID
		var contentID uuid.NullUUID

		err = rows.Scan(
			&id,
			&orderID,
			&contentID,
			&attachment.StoredName,
			&attachment.OriginalName,
			&attachment.MimeType,
			&attachment.SizeBytes,
			&attachment.Location,
		)
		if err != nil {
			return nil, nil, err
		}

		if attachment.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, nil, err
		}

		if contentID.Valid {
			delivered[orderID] = append(delivered[orderID], attachment)
		} else {
			briefs[orderID] = append(briefs[orderID], attachment)
		}
	}

	return briefs, delivered, rows.Err()
}

func loadAdminContents(
	ctx context.Context,
	db *gorm.DB,
	orderIDs []uuid.UUID,
) (map[uuid.UUID]*AdminContentView, error) {
	contents := make(map[uuid.UUID]*AdminContentView)
	if len(orderIDs) == 0 {
		return contents, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			description,
			created_at,
			updated_at
		FROM admin_contents
		WHERE order_id IN ?
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var content AdminContentView
		var id, orderID uuid.UUID

		err = rows.Scan(&id, &orderID, &content.Description, &content.CreatedAt, &content.UpdatedAt)
		if err != nil {
			return nil, err
		}

		if content.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		contents[orderID] = &content
	}

	return contents, rows.Err()
}

func loadFeedbacks(
	ctx context.Context,
	db *gorm.DB,
	orderIDs []uuid.UUID,
) (map[uuid.UUID][]FeedbackView, error) {
	feedbacks := make(map[uuid.UUID][]FeedbackView)
	if len(orderIDs) == 0 {
		return feedbacks, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			feedback_type,
			message,
			author_id,
			created_at
		FROM feedbacks
		WHERE order_id IN ?
		ORDER BY created_at
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var feedback FeedbackView
		var id, orderID, authorID uuid.UUID

		err = rows.Scan(&id, &orderID, &feedback.Type, &feedback.Message, &authorID, &feedback.CreatedAt)
		if err != nil {
			return nil, err
		}

		if feedback.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if feedback.AuthorID, err = kernel.UUIDFromBytes(authorID[:]); err != nil {
			return nil, err
		}
		feedbacks[orderID] = append(feedbacks[orderID], feedback)
	}

	return feedbacks, rows.Err()
}

// attachChildren loads the nested records for the given order views and wires
// them in place. Views are keyed by their raw uuid to match the child rows.
func attachChildren(ctx context.Context, db *gorm.DB, views []OrderView) error {
	orderIDs := make([]uuid.UUID, 0, len(views))
	for i := range views {
		orderIDs = append(orderIDs, views[i].ID.Bytes())
	}

	briefs, delivered, err := loadAttachments(ctx, db, orderIDs)
	if err != nil {
		return err
	}
	contents, err := loadAdminContents(ctx, db, orderIDs)
	if err != nil {
		return err
	}
	feedbacks, err := loadFeedbacks(ctx, db, orderIDs)
	if err != nil {
		return err
	}

	for i := range views {
		rawID := views[i].ID.Bytes()
		views[i].Attachments = withEmptyDefault(briefs[rawID])
		views[i].Feedbacks = withEmptyDefault(feedbacks[rawID])
		if content := contents[rawID]; content != nil {
			content.Files = withEmptyDefault(delivered[rawID])
			views[i].AdminContent = content
		}
	}

	return nil
}

func withEmptyDefault[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

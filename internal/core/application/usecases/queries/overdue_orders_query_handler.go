package queries

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OverdueOrderView is the slim read model used by the overdue-orders sweep.
type OverdueOrderView struct {
	ID       kernel.UUID
	Code     string
	ClientID kernel.UUID
	Title    string
	Priority string
	Status   string
	DueDate  time.Time
}

// OverdueOrdersQueryHandler finds open orders whose due date has passed.
// This is a system query: it runs without an acting user and never mutates
// anything.
type OverdueOrdersQueryHandler struct {
	db *gorm.DB
}

// NewOverdueOrdersQueryHandler creates a new handler for the overdue sweep.
func NewOverdueOrdersQueryHandler(db *gorm.DB) OverdueOrdersQueryHandler {
	return OverdueOrdersQueryHandler{db: db}
}

// Handle returns every non-completed order with a due date before asOf,
// most overdue first.
func (h OverdueOrdersQueryHandler) Handle(ctx context.Context, asOf time.Time) ([]OverdueOrderView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			client_id,
			title,
			priority,
			status,
			due_date
		FROM orders
		WHERE due_date IS NOT NULL
		  AND due_date < ?
		  AND status <> 'COMPLETED'
		ORDER BY due_date
	`, asOf).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OverdueOrderView, 0)
	for rows.Next() {
		var view OverdueOrderView
		var id, clientID uuid.UUID

		err = rows.Scan(&id, &view.Code, &clientID, &view.Title, &view.Priority, &view.Status, &view.DueDate)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}

		views = append(views, view)
	}

	return views, rows.Err()
}

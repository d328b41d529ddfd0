package queries

import (
	"context"

	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with attachments, delivered
// content and feedback history.
// Returns errs.ObjectNotFoundError when the order does not exist and
// errs.ActionIsForbiddenError when the actor may not see it.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			client_id,
			title,
			description,
			priority,
			status,
			due_date,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderView{}, err
		}
		return OrderView{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	view, err := scanOrderRow(rows)
	if err != nil {
		return OrderView{}, err
	}

	actor := query.Actor()
	if !actor.IsAdministrator() && !actor.Owns(view.ClientID) {
		return OrderView{}, errs.NewActionIsForbiddenError("viewOrder", actor.Role().String())
	}

	views := []OrderView{view}
	if err = attachChildren(ctx, h.db, views); err != nil {
		return OrderView{}, err
	}

	return views[0], nil
}

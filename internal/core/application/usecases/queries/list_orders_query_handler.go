package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves order read models from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	query, _ := NewListOrdersQuery(actor)
//
//	views, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("Found %d orders\n", len(views))
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query to list visible orders, newest first.
// Administrators receive every order; clients only the orders they own.
// Each view carries its complete nested state.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseQuery = `
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
	`

	actor := query.Actor()
	tx := h.db.WithContext(ctx)

	var rowsQuery = baseQuery + " ORDER BY created_at DESC"
	args := make([]any, 0, 1)
	if !actor.IsAdministrator() {
		rowsQuery = baseQuery + " WHERE client_id = ? ORDER BY created_at DESC"
		args = append(args, actor.ID().Bytes())
	}

	rows, err := tx.Raw(rowsQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		view, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachChildren(ctx, h.db, views); err != nil {
		return nil, err
	}

	return views, nil
}

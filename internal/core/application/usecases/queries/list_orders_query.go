package queries

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves the orders visible to an actor, newest first.
// Administrators see every order; clients only their own.
type ListOrdersQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list visible orders.
// Validates that the actor is valid.
func NewListOrdersQuery(actor kernel.Actor) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Actor returns the authenticated actor requesting the listing.
func (q ListOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

package queries_test

import (
	"testing"

	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery_ValidInput(t *testing.T) {
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleAdministrator)
	require.NoError(t, err)

	query, err := queries.NewListOrdersQuery(actor)

	require.NoError(t, err)
	assert.Equal(t, actor, query.Actor())
	require.NoError(t, query.Validate())
}

func TestNewListOrdersQuery_InvalidActor(t *testing.T) {
	_, err := queries.NewListOrdersQuery(kernel.Actor{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrActorIsNotConstructed)
}

func TestListOrdersQuery_Validate_ZeroValue(t *testing.T) {
	var query queries.ListOrdersQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
}

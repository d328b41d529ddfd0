package api_test

import (
	"context"
	"net/http"
	"testing"

	"atelier/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DocumentIsValid(t *testing.T) {
	doc, err := api.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Atelier Order API", doc.Info.Title)
}

func TestLoad_DeclaresServedRoutes(t *testing.T) {
	doc, err := api.Load(context.Background())
	require.NoError(t, err)

	orders := doc.Paths.Find("/orders")
	require.NotNil(t, orders)
	assert.NotNil(t, orders.GetOperation(http.MethodGet))
	assert.NotNil(t, orders.GetOperation(http.MethodPost))

	orderByID := doc.Paths.Find("/orders/{id}")
	require.NotNil(t, orderByID)
	assert.NotNil(t, orderByID.GetOperation(http.MethodGet))
	assert.NotNil(t, orderByID.GetOperation(http.MethodPut))
}

func TestLoad_OrderSchemaCoversLifecycle(t *testing.T) {
	doc, err := api.Load(context.Background())
	require.NoError(t, err)

	orderSchema := doc.Components.Schemas["Order"]
	require.NotNil(t, orderSchema)

	status := orderSchema.Value.Properties["status"]
	require.NotNil(t, status)
	assert.ElementsMatch(t,
		[]any{"PENDING", "IN_PROGRESS", "REVIEW", "COMPLETED", "REVISION"},
		status.Value.Enum)
}

func TestRaw_IsNotEmpty(t *testing.T) {
	assert.NotEmpty(t, api.Raw())
}

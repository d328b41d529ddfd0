package kernel_test

import (
	"testing"

	"atelier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Validate(t *testing.T) {
	t.Run("should validate valid roles", func(t *testing.T) {
		require.NoError(t, kernel.RoleClient.Validate())
		require.NoError(t, kernel.RoleAdministrator.Validate())
	})

	t.Run("should reject Unknown role", func(t *testing.T) {
		err := kernel.RoleUnknown.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "role")
	})

	t.Run("should reject out-of-range role", func(t *testing.T) {
		require.Error(t, kernel.Role(42).Validate())
	})
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "Client", kernel.RoleClient.String())
	assert.Equal(t, "Administrator", kernel.RoleAdministrator.String())
	assert.Equal(t, "Unknown", kernel.RoleUnknown.String())
	assert.Equal(t, "Unknown", kernel.Role(42).String())
}

func TestRoleFromString(t *testing.T) {
	t.Run("should parse canonical names", func(t *testing.T) {
		role, err := kernel.RoleFromString("Client")
		require.NoError(t, err)
		assert.Equal(t, kernel.RoleClient, role)

		role, err = kernel.RoleFromString("Administrator")
		require.NoError(t, err)
		assert.Equal(t, kernel.RoleAdministrator, role)
	})

	t.Run("should parse wire forms", func(t *testing.T) {
		role, err := kernel.RoleFromString("CLIENT")
		require.NoError(t, err)
		assert.Equal(t, kernel.RoleClient, role)

		role, err = kernel.RoleFromString("ADMIN")
		require.NoError(t, err)
		assert.Equal(t, kernel.RoleAdministrator, role)
	})

	t.Run("should reject unknown role string", func(t *testing.T) {
		_, err := kernel.RoleFromString("superuser")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a known role")
	})
}

func TestNewActor(t *testing.T) {
	t.Run("should create valid actor", func(t *testing.T) {
		id := kernel.NewUUID()

		actor, err := kernel.NewActor(id, kernel.RoleClient)

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.True(t, actor.ID().IsEqual(id))
		assert.Equal(t, kernel.RoleClient, actor.Role())
		assert.False(t, actor.IsAdministrator())
	})

	t.Run("should fail with zero UUID", func(t *testing.T) {
		var id kernel.UUID

		_, err := kernel.NewActor(id, kernel.RoleClient)

		require.Error(t, err)
	})

	t.Run("should fail with invalid role", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleUnknown)

		require.Error(t, err)
	})

	t.Run("zero value actor fails validation", func(t *testing.T) {
		var actor kernel.Actor

		err := actor.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrActorIsNotConstructed, err)
	})
}

func TestActor_Owns(t *testing.T) {
	id := kernel.NewUUID()
	actor, err := kernel.NewActor(id, kernel.RoleClient)
	require.NoError(t, err)

	assert.True(t, actor.Owns(id))
	assert.False(t, actor.Owns(kernel.NewUUID()))
}

func TestActor_IsAdministrator(t *testing.T) {
	admin, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleAdministrator)
	require.NoError(t, err)

	assert.True(t, admin.IsAdministrator())
}

package commands_test

import (
	"testing"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	actor := adminActor(t)

	cmd, err := commands.NewStartOrderCommand(id, actor)

	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, actor, cmd.Actor())
}

func TestNewStartOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewStartOrderCommand(kernel.UUID{}, adminActor(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewStartOrderCommand_InvalidActor(t *testing.T) {
	_, err := commands.NewStartOrderCommand(kernel.NewUUID(), kernel.Actor{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrActorIsNotConstructed)
}

func TestStartOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.StartOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStartOrderCommandIsNotConstructed)
}

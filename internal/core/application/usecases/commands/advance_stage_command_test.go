package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceStageCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAdvanceStageCommand(orderID, "delicates on low heat")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, "delicates on low heat", cmd.Notes())
}

func TestNewAdvanceStageCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewAdvanceStageCommand(kernel.UUID{}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestAdvanceStageCommand_NotConstructed(t *testing.T) {
	cmd := commands.AdvanceStageCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrAdvanceStageCommandIsNotConstructed)
}

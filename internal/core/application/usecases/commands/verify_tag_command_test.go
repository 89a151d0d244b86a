package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerifyTagCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewVerifyTagCommand("RF-001", "small stain on collar")
	require.NoError(t, err)
	assert.Equal(t, "RF-001", cmd.TagID())
	assert.Equal(t, "small stain on collar", cmd.Notes())
}

func TestNewVerifyTagCommand_EmptyNotesAllowed(t *testing.T) {
	cmd, err := commands.NewVerifyTagCommand("RF-001", "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Notes())
}

func TestNewVerifyTagCommand_EmptyTagID(t *testing.T) {
	_, err := commands.NewVerifyTagCommand("", "notes")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTagIDIsRequired)
}

func TestVerifyTagCommand_NotConstructed(t *testing.T) {
	cmd := commands.VerifyTagCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrVerifyTagCommandIsNotConstructed)
}

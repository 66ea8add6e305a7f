package commands_test

import (
	"testing"

	"training/internal/core/application/usecases/commands"
	"training/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateTrainingCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateTrainingCommand(validInput())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, validInput(), cmd.Input())
}

func TestNewCreateTrainingCommand_InvalidInput(t *testing.T) {
	input := validInput()
	input.Location = ""
	input.Capacity = 0

	_, err := commands.NewCreateTrainingCommand(input)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "location")
}

func TestCreateTrainingCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.CreateTrainingCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateTrainingCommandIsNotConstructed)
}

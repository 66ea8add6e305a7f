package commands_test

import (
	"testing"

	"training/internal/core/application/usecases/commands"
	"training/internal/core/domain/model/kernel"
	"training/internal/core/domain/model/training"
	"training/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateTrainingStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateTrainingStatusCommand(id, training.Open)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.TrainingID())
	assert.Equal(t, training.Open, cmd.Target())
}

func TestNewUpdateTrainingStatusCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewUpdateTrainingStatusCommand(kernel.UUID{}, training.UnknownStatus)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "target status")
}

func TestUpdateTrainingStatusCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.UpdateTrainingStatusCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateTrainingStatusCommandIsNotConstructed)
}

package commands

import (
	"context"

	"training/internal/core/domain/model/kernel"
	"training/internal/core/domain/model/training"
	"training/internal/core/ports"
)

// CancelTrainingCommandHandler cancels stored trainings.
type CancelTrainingCommandHandler struct {
	repository ports.TrainingRepository
	clock      kernel.Clock
}

func NewCancelTrainingCommandHandler(
	repository ports.TrainingRepository,
	clock kernel.Clock,
) CancelTrainingCommandHandler {
	return CancelTrainingCommandHandler{
		repository: repository,
		clock:      clock,
	}
}

// Handle loads the training, cancels it with the command's reason and
// stores the canceled copy.
func (h CancelTrainingCommandHandler) Handle(ctx context.Context, cmd CancelTrainingCommand) (training.Training, error) {
	if err := cmd.Validate(); err != nil {
		return training.Training{}, err
	}

	current, err := h.repository.Get(ctx, cmd.TrainingID())
	if err != nil {
		return training.Training{}, err
	}

	canceled, err := current.Cancel(cmd.Reason(), h.clock())
	if err != nil {
		return training.Training{}, err
	}

	if err = h.repository.Update(ctx, canceled); err != nil {
		return training.Training{}, err
	}

	return canceled, nil
}

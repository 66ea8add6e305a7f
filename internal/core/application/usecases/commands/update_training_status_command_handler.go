package commands

import (
	"context"

	"training/internal/core/domain/model/kernel"
	"training/internal/core/domain/model/training"
	"training/internal/core/ports"
)

// UpdateTrainingStatusCommandHandler applies status changes to stored trainings.
type UpdateTrainingStatusCommandHandler struct {
	repository ports.TrainingRepository
	clock      kernel.Clock
}

func NewUpdateTrainingStatusCommandHandler(
	repository ports.TrainingRepository,
	clock kernel.Clock,
) UpdateTrainingStatusCommandHandler {
	return UpdateTrainingStatusCommandHandler{
		repository: repository,
		clock:      clock,
	}
}

// Handle loads the training, moves it to the target status and stores the
// result. Requesting the current status is a no-op: nothing is written and
// the stored training is returned as is.
func (h UpdateTrainingStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateTrainingStatusCommand,
) (training.Training, error) {
	if err := cmd.Validate(); err != nil {
		return training.Training{}, err
	}

	current, err := h.repository.Get(ctx, cmd.TrainingID())
	if err != nil {
		return training.Training{}, err
	}

	updated, err := current.UpdateStatus(cmd.Target(), h.clock())
	if err != nil {
		return training.Training{}, err
	}

	if updated.Status() == current.Status() {
		return current, nil
	}

	if err = h.repository.Update(ctx, updated); err != nil {
		return training.Training{}, err
	}

	return updated, nil
}

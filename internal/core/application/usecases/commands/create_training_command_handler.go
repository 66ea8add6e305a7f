package commands

import (
	"context"

	"training/internal/core/domain/model/training"
	"training/internal/core/ports"
)

// CreateTrainingCommandHandler creates Draft trainings and adds them to the catalog.
type CreateTrainingCommandHandler struct {
	factory    training.Factory
	repository ports.TrainingRepository
}

// NewCreateTrainingCommandHandler creates a handler drawing identifiers and
// timestamps from factory.
func NewCreateTrainingCommandHandler(
	factory training.Factory,
	repository ports.TrainingRepository,
) CreateTrainingCommandHandler {
	return CreateTrainingCommandHandler{
		factory:    factory,
		repository: repository,
	}
}

// Handle creates the training and stores it. The created training is returned
// so callers can refer to its identifier.
func (h CreateTrainingCommandHandler) Handle(ctx context.Context, cmd CreateTrainingCommand) (training.Training, error) {
	if err := cmd.Validate(); err != nil {
		return training.Training{}, err
	}

	created, err := h.factory.Create(cmd.Input())
	if err != nil {
		return training.Training{}, err
	}

	if err = h.repository.Add(ctx, created); err != nil {
		return training.Training{}, err
	}

	return created, nil
}

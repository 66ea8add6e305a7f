package commands

import (
	"errors"

	"training/internal/core/domain/model/kernel"
	"training/internal/core/domain/model/training"
	"training/internal/pkg/errs"
	"training/internal/pkg/guard"
)

var ErrUpdateTrainingStatusCommandIsNotConstructed = errors.New(
	"UpdateTrainingStatusCommand must be created via NewUpdateTrainingStatusCommand constructor",
)

// UpdateTrainingStatusCommand represents a request to move a training to
// Draft, Open or Completed. Cancellation has its own command because it
// carries a reason.
//
// Example:
//
//	cmd, err := NewUpdateTrainingStatusCommand(trainingID, training.Open)
//	if err != nil {
//	    return err
//	}
//
//	opened, err := handler.Handle(ctx, cmd)
type UpdateTrainingStatusCommand struct { //nolint:recvcheck //using for validation
	trainingID kernel.UUID
	target     training.StatusKind

	guard guard.ConstructorGuard
}

// NewUpdateTrainingStatusCommand validates the identifier and the target
// status. Whether the transition is allowed is decided when it is handled.
func NewUpdateTrainingStatusCommand(
	trainingID kernel.UUID,
	target training.StatusKind,
) (UpdateTrainingStatusCommand, error) {
	cmd := UpdateTrainingStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrainingID(trainingID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateTrainingStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTrainingStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTrainingStatusCommandIsNotConstructed)
}

func (c UpdateTrainingStatusCommand) TrainingID() kernel.UUID {
	return c.trainingID
}

// Target returns the requested status.
func (c UpdateTrainingStatusCommand) Target() training.StatusKind {
	return c.target
}

func (c *UpdateTrainingStatusCommand) setTrainingID(trainingID kernel.UUID) error {
	if err := trainingID.Validate(); err != nil {
		return err
	}

	c.trainingID = trainingID
	return nil
}

func (c *UpdateTrainingStatusCommand) setTarget(target training.StatusKind) error {
	if target == training.UnknownStatus {
		return errs.NewValueIsRequiredError("target status")
	}

	c.target = target
	return nil
}

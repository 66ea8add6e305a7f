package commands

import (
	"errors"

	"training/internal/core/domain/model/kernel"
	"training/internal/pkg/guard"
)

var ErrCancelTrainingCommandIsNotConstructed = errors.New(
	"CancelTrainingCommand must be created via NewCancelTrainingCommand constructor",
)

// CancelTrainingCommand represents a request to cancel a Draft or Open
// training. The reason is checked by the domain when the command is handled.
type CancelTrainingCommand struct { //nolint:recvcheck //using for validation
	trainingID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

func NewCancelTrainingCommand(trainingID kernel.UUID, reason string) (CancelTrainingCommand, error) {
	cmd := CancelTrainingCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setTrainingID(trainingID); err != nil {
		return CancelTrainingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelTrainingCommand) Validate() error {
	return c.guard.Validate(ErrCancelTrainingCommandIsNotConstructed)
}

func (c CancelTrainingCommand) TrainingID() kernel.UUID {
	return c.trainingID
}

func (c CancelTrainingCommand) Reason() string {
	return c.reason
}

func (c *CancelTrainingCommand) setTrainingID(trainingID kernel.UUID) error {
	if err := trainingID.Validate(); err != nil {
		return err
	}

	c.trainingID = trainingID
	return nil
}

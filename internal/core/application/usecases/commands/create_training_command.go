package commands

import (
	"errors"

	"training/internal/core/domain/model/training"
	"training/internal/pkg/guard"
)

var ErrCreateTrainingCommandIsNotConstructed = errors.New(
	"CreateTrainingCommand must be created via NewCreateTrainingCommand constructor",
)

// CreateTrainingCommand represents a request to add a new training to the catalog.
//
// Example:
//
//	cmd, err := NewCreateTrainingCommand(training.Input{
//	    Title:       "Go basics",
//	    Description: "Intro course",
//	    Date:        date,
//	    Location:    "Room 1",
//	    Capacity:    10,
//	    Level:       training.Beginner,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid training data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateTrainingCommand struct {
	input training.Input

	guard guard.ConstructorGuard
}

// NewCreateTrainingCommand checks input with the creation rules and returns
// the first violation, if any.
func NewCreateTrainingCommand(input training.Input) (CreateTrainingCommand, error) {
	if err := input.Validate(); err != nil {
		return CreateTrainingCommand{}, err
	}

	return CreateTrainingCommand{
		input: input,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTrainingCommand) Validate() error {
	return c.guard.Validate(ErrCreateTrainingCommandIsNotConstructed)
}

// Input returns the training data to create from.
func (c CreateTrainingCommand) Input() training.Input {
	return c.input
}

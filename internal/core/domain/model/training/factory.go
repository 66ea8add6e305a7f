package training

import "training/internal/core/domain/model/kernel"

// Factory creates trainings with a fresh identifier and the current instant.
type Factory struct {
	newID kernel.IDGenerator
	clock kernel.Clock
}

// NewFactory returns a Factory drawing identifiers from newID and time from clock.
func NewFactory(newID kernel.IDGenerator, clock kernel.Clock) Factory {
	return Factory{
		newID: newID,
		clock: clock,
	}
}

// Create validates input and returns a new Draft training.
// No identifier is drawn when the input is rejected.
func (f Factory) Create(input Input) (Training, error) {
	if err := input.Validate(); err != nil {
		return Training{}, err
	}

	return NewTraining(f.newID(), input, f.clock())
}

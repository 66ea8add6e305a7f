package ports

import (
	"context"

	"training/internal/core/domain/model/kernel"
	"training/internal/core/domain/model/training"
)

// TrainingRepository holds the trainings of the catalog.
// Trainings are values: callers store the copy returned by a lifecycle
// method through Update to make a change visible.
type TrainingRepository interface {
	// Add stores a new training. The training must be valid and its
	// identifier must not be taken yet.
	Add(ctx context.Context, t training.Training) error

	// Update replaces a stored training with a newer copy of it.
	Update(ctx context.Context, t training.Training) error

	// Get retrieves a training by its identifier.
	Get(ctx context.Context, id kernel.UUID) (training.Training, error)

	// GetAll returns every training in the order they were added.
	GetAll(ctx context.Context) ([]training.Training, error)

	// GetAllInStatus returns the trainings currently in the given status,
	// in the order they were added.
	GetAllInStatus(ctx context.Context, kind training.StatusKind) ([]training.Training, error)
}

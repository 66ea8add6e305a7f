package trainingrepo

import (
	"context"
	"sync"

	"training/internal/core/domain/model/kernel"
	"training/internal/core/domain/model/training"
	"training/internal/pkg/errs"
)

// MemoryTrainingRepository implements ports.TrainingRepository on a map.
// Trainings are kept in the order they were added.
type MemoryTrainingRepository struct {
	mu        sync.RWMutex
	trainings map[kernel.UUID]training.Training
	order     []kernel.UUID
}

// NewMemoryTrainingRepository creates an empty repository.
func NewMemoryTrainingRepository() *MemoryTrainingRepository {
	return &MemoryTrainingRepository{
		trainings: make(map[kernel.UUID]training.Training),
	}
}

// Add stores a new training.
func (r *MemoryTrainingRepository) Add(ctx context.Context, t training.Training) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trainings[t.ID()]; ok {
		return errs.NewValueIsInvalidError("training " + t.ID().String() + " already exists")
	}

	r.trainings[t.ID()] = t
	r.order = append(r.order, t.ID())
	return nil
}

// Update replaces a stored training.
func (r *MemoryTrainingRepository) Update(ctx context.Context, t training.Training) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trainings[t.ID()]; !ok {
		return errs.NewObjectNotFoundError("training", t.ID().String())
	}

	r.trainings[t.ID()] = t
	return nil
}

// Get retrieves a training by ID.
func (r *MemoryTrainingRepository) Get(ctx context.Context, id kernel.UUID) (training.Training, error) {
	if err := ctx.Err(); err != nil {
		return training.Training{}, err
	}
	if err := id.Validate(); err != nil {
		return training.Training{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.trainings[id]
	if !ok {
		return training.Training{}, errs.NewObjectNotFoundError("training", id.String())
	}

	return t, nil
}

// GetAll retrieves every training.
func (r *MemoryTrainingRepository) GetAll(ctx context.Context) ([]training.Training, error) {
	return r.collect(ctx, func(training.Training) bool { return true })
}

// GetAllInStatus retrieves the trainings in the given status.
func (r *MemoryTrainingRepository) GetAllInStatus(
	ctx context.Context,
	kind training.StatusKind,
) ([]training.Training, error) {
	return r.collect(ctx, func(t training.Training) bool { return t.Status().Kind() == kind })
}

func (r *MemoryTrainingRepository) collect(
	ctx context.Context,
	match func(training.Training) bool,
) ([]training.Training, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]training.Training, 0, len(r.order))
	for _, id := range r.order {
		if t := r.trainings[id]; match(t) {
			result = append(result, t)
		}
	}

	return result, nil
}

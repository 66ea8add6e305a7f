package seed

import (
	"context"
	"log/slog"

	"training/internal/core/application/usecases/commands"
	"training/internal/core/domain/model/training"
)

type (
	createHandler interface {
		Handle(ctx context.Context, cmd commands.CreateTrainingCommand) (training.Training, error)
	}

	updateStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateTrainingStatusCommand) (training.Training, error)
	}

	cancelHandler interface {
		Handle(ctx context.Context, cmd commands.CancelTrainingCommand) (training.Training, error)
	}
)

// Seeder loads fixture files into the catalog through the command handlers.
type Seeder struct {
	loader       *Loader
	create       createHandler
	updateStatus updateStatusHandler
	cancel       cancelHandler
	logger       *slog.Logger
}

func NewSeeder(
	loader *Loader,
	create createHandler,
	updateStatus updateStatusHandler,
	cancel cancelHandler,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		loader:       loader,
		create:       create,
		updateStatus: updateStatus,
		cancel:       cancel,
		logger:       logger.With("component", "seed"),
	}
}

// Seed loads every entry of the file at path and returns the stored
// trainings in file order. It stops at the first failing entry; entries
// before it stay in the catalog.
func (s *Seeder) Seed(ctx context.Context, path string) ([]training.Training, error) {
	entries, err := s.loader.Load(path)
	if err != nil {
		return nil, err
	}

	seeded := make([]training.Training, 0, len(entries))
	for i, entry := range entries {
		t, seedErr := s.seedEntry(ctx, entry)
		if seedErr != nil {
			return nil, entryError(path, i, seedErr)
		}

		s.logger.DebugContext(ctx, "training seeded",
			"id", t.ID().String(),
			"title", t.Title(),
			"status", t.Status().String(),
		)
		seeded = append(seeded, t)
	}

	s.logger.InfoContext(ctx, "catalog seeded", "path", path, "count", len(seeded))
	return seeded, nil
}

func (s *Seeder) seedEntry(ctx context.Context, entry Entry) (training.Training, error) {
	cmd, err := commands.NewCreateTrainingCommand(entry.Input)
	if err != nil {
		return training.Training{}, err
	}

	t, err := s.create.Handle(ctx, cmd)
	if err != nil {
		return training.Training{}, err
	}

	for _, step := range lifecyclePath(entry.Status) {
		if t, err = s.moveTo(ctx, t, step); err != nil {
			return training.Training{}, err
		}
	}

	if entry.Status == training.Canceled {
		cancelCmd, cmdErr := commands.NewCancelTrainingCommand(t.ID(), entry.CancelReason)
		if cmdErr != nil {
			return training.Training{}, cmdErr
		}
		return s.cancel.Handle(ctx, cancelCmd)
	}

	return t, nil
}

func (s *Seeder) moveTo(ctx context.Context, t training.Training, target training.StatusKind) (training.Training, error) {
	cmd, err := commands.NewUpdateTrainingStatusCommand(t.ID(), target)
	if err != nil {
		return training.Training{}, err
	}
	return s.updateStatus.Handle(ctx, cmd)
}

// lifecyclePath lists the status updates that lead from Draft to target.
// Canceled trainings are canceled straight from Draft.
func lifecyclePath(target training.StatusKind) []training.StatusKind {
	switch target {
	case training.Open:
		return []training.StatusKind{training.Open}
	case training.Completed:
		return []training.StatusKind{training.Open, training.Completed}
	default:
		return nil
	}
}

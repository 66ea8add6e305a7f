// Package cli is the command line entry to the training catalog.
package cli

import (
	"context"
	"io"
	"log/slog"
	"time"

	"training/internal/core/application/usecases/commands"
	"training/internal/core/application/usecases/queries"
	"training/internal/core/domain/model/training"

	"github.com/spf13/cobra"
)

type (
	Seeder interface {
		Seed(ctx context.Context, path string) ([]training.Training, error)
	}

	CreateTrainingHandler interface {
		Handle(ctx context.Context, cmd commands.CreateTrainingCommand) (training.Training, error)
	}

	UpdateTrainingStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateTrainingStatusCommand) (training.Training, error)
	}

	CancelTrainingHandler interface {
		Handle(ctx context.Context, cmd commands.CancelTrainingCommand) (training.Training, error)
	}

	SearchTrainingsHandler interface {
		Handle(ctx context.Context, query queries.SearchTrainingsQuery) ([]queries.SearchTrainingsQueryResponse, error)
	}
)

// Deps is everything the commands run against. Location is the time zone of
// dates given on the command line.
type Deps struct {
	Logger   *slog.Logger
	Location *time.Location
	SeedFile string
	Out      io.Writer

	Seeder       Seeder
	Create       CreateTrainingHandler
	UpdateStatus UpdateTrainingStatusHandler
	Cancel       CancelTrainingHandler
	Search       SearchTrainingsHandler
}

func NewRootCmd(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "training",
		Short:        "Training catalog: lifecycle rules and date range search",
		SilenceUsage: true,
	}

	cmd.SetOut(deps.Out)
	cmd.AddCommand(demoCmd(deps), searchCmd(deps))
	return cmd
}

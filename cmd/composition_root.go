package cmd

import (
	"log/slog"
	"time"

	"training/internal/adapters/in/cli"
	"training/internal/adapters/in/seed"
	"training/internal/adapters/out/memory/trainingrepo"
	"training/internal/core/application/usecases/commands"
	"training/internal/core/application/usecases/queries"
	"training/internal/core/domain/model/kernel"
	"training/internal/core/domain/model/training"
	"training/internal/core/domain/services"
	"training/internal/core/ports"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	location   *time.Location
	clock      kernel.Clock
	newID      kernel.IDGenerator
	repository ports.TrainingRepository
}

// NewCompositionRoot wires an empty in-memory catalog. The configuration is
// expected to come from LoadConfig, so its time zone is already known to load.
func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	location, err := config.Location()
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		logger:     logger,
		location:   location,
		clock:      kernel.SystemClock,
		newID:      kernel.NewUUID,
		repository: trainingrepo.NewMemoryTrainingRepository(),
	}, nil
}

func (c *CompositionRoot) CreateCreateTrainingCommandHandler() commands.CreateTrainingCommandHandler {
	return commands.NewCreateTrainingCommandHandler(training.NewFactory(c.newID, c.clock), c.repository)
}

func (c *CompositionRoot) CreateUpdateTrainingStatusCommandHandler() commands.UpdateTrainingStatusCommandHandler {
	return commands.NewUpdateTrainingStatusCommandHandler(c.repository, c.clock)
}

func (c *CompositionRoot) CreateCancelTrainingCommandHandler() commands.CancelTrainingCommandHandler {
	return commands.NewCancelTrainingCommandHandler(c.repository, c.clock)
}

func (c *CompositionRoot) CreateSearchTrainingsQueryHandler() queries.SearchTrainingsQueryHandler {
	return queries.NewSearchTrainingsQueryHandler(c.repository, services.NewTrainingSearch())
}

func (c *CompositionRoot) CreateSeeder() *seed.Seeder {
	return seed.NewSeeder(
		seed.NewLoader(seed.WithLocation(c.location)),
		c.CreateCreateTrainingCommandHandler(),
		c.CreateUpdateTrainingStatusCommandHandler(),
		c.CreateCancelTrainingCommandHandler(),
		c.logger,
	)
}

// CLIDeps collects what the command line needs to run against this catalog.
func (c *CompositionRoot) CLIDeps() cli.Deps {
	return cli.Deps{
		Logger:       c.logger,
		Location:     c.location,
		SeedFile:     c.config.SeedFile,
		Seeder:       c.CreateSeeder(),
		Create:       c.CreateCreateTrainingCommandHandler(),
		UpdateStatus: c.CreateUpdateTrainingStatusCommandHandler(),
		Cancel:       c.CreateCancelTrainingCommandHandler(),
		Search:       c.CreateSearchTrainingsQueryHandler(),
	}
}

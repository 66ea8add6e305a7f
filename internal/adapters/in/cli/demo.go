package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"training/internal/core/application/usecases/commands"
	"training/internal/core/application/usecases/queries"
	"training/internal/core/domain/model/training"

	"github.com/spf13/cobra"
)

var ErrDemoExpectationFailed = errors.New("demo expectation failed")

func demoCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through creation, lifecycle and search on an in-memory catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := demo{deps: deps, logger: deps.Logger.With("component", "demo")}
			return d.run(cmd)
		},
	}
}

type demo struct {
	deps   Deps
	logger *slog.Logger
}

func (d demo) run(cmd *cobra.Command) error {
	ctx := cmd.Context()

	if err := d.capacityRules(ctx); err != nil {
		return err
	}
	if err := d.lifecycle(ctx); err != nil {
		return err
	}
	if err := d.cancellation(ctx); err != nil {
		return err
	}

	rows, err := d.search(ctx)
	if err != nil {
		return err
	}
	return printTrainings(cmd.OutOrStdout(), rows, d.deps.Location)
}

func (d demo) capacityRules(ctx context.Context) error {
	input := d.input("Empty room", d.day(2025, time.April, 2))
	input.Capacity = 0
	_, err := commands.NewCreateTrainingCommand(input)
	if err == nil {
		return fmt.Errorf("%w: capacity 0 was accepted", ErrDemoExpectationFailed)
	}
	d.logger.InfoContext(ctx, "creation rejected", "capacity", 0, "error", err)

	input.Capacity = 1
	created, err := d.create(ctx, input)
	if err != nil {
		return err
	}
	d.logger.InfoContext(ctx, "training created", "id", created.ID().String(), "capacity", created.Capacity())
	return nil
}

func (d demo) lifecycle(ctx context.Context) error {
	created, err := d.create(ctx, d.input("Lifecycle walkthrough", d.day(2025, time.April, 3)))
	if err != nil {
		return err
	}

	if _, err = d.updateStatus(ctx, created, training.Completed); err == nil {
		return fmt.Errorf("%w: draft went straight to completed", ErrDemoExpectationFailed)
	}
	d.logger.InfoContext(ctx, "transition refused", "from", training.Draft, "to", training.Completed, "error", err)

	opened, err := d.updateStatus(ctx, created, training.Open)
	if err != nil {
		return err
	}
	completed, err := d.updateStatus(ctx, opened, training.Completed)
	if err != nil {
		return err
	}

	d.logger.InfoContext(ctx, "training completed",
		"id", completed.ID().String(),
		"created_at", completed.CreatedAt(),
		"updated_at", completed.UpdatedAt(),
	)
	return nil
}

func (d demo) cancellation(ctx context.Context) error {
	created, err := d.create(ctx, d.input("Canceled workshop", d.day(2025, time.April, 4)))
	if err != nil {
		return err
	}

	if _, err = d.cancel(ctx, created, "ab"); err == nil {
		return fmt.Errorf("%w: reason %q was accepted", ErrDemoExpectationFailed, "ab")
	}
	d.logger.InfoContext(ctx, "cancellation refused", "reason", "ab", "error", err)

	canceled, err := d.cancel(ctx, created, "trainer is sick")
	if err != nil {
		return err
	}
	d.logger.InfoContext(ctx, "training canceled", "id", canceled.ID().String(), "reason", canceled.Status().Reason())
	return nil
}

func (d demo) search(ctx context.Context) ([]queries.SearchTrainingsQueryResponse, error) {
	for _, date := range []time.Time{
		d.day(2025, time.July, 1),
		d.day(2025, time.June, 15),
		d.day(2025, time.May, 15),
		d.day(2025, time.June, 1),
	} {
		title := "Course on " + date.Format(time.DateOnly)
		if _, err := d.create(ctx, d.input(title, date.Add(9*time.Hour))); err != nil {
			return nil, err
		}
	}

	inverted, err := queries.NewSearchTrainingsQuery(d.day(2025, time.June, 30), d.day(2025, time.May, 1))
	if err != nil {
		return nil, err
	}
	none, err := d.deps.Search.Handle(ctx, inverted)
	if err != nil {
		return nil, err
	}
	if len(none) != 0 {
		return nil, fmt.Errorf("%w: inverted range matched %d trainings", ErrDemoExpectationFailed, len(none))
	}

	query, err := queries.NewSearchTrainingsQuery(d.day(2025, time.May, 1), d.day(2025, time.June, 30))
	if err != nil {
		return nil, err
	}
	rows, err := d.deps.Search.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	d.logger.InfoContext(ctx, "search finished", "from", "2025-05-01", "to", "2025-06-30", "matches", len(rows))
	return rows, nil
}

func (d demo) create(ctx context.Context, input training.Input) (training.Training, error) {
	cmd, err := commands.NewCreateTrainingCommand(input)
	if err != nil {
		return training.Training{}, err
	}
	return d.deps.Create.Handle(ctx, cmd)
}

func (d demo) updateStatus(
	ctx context.Context,
	t training.Training,
	target training.StatusKind,
) (training.Training, error) {
	cmd, err := commands.NewUpdateTrainingStatusCommand(t.ID(), target)
	if err != nil {
		return training.Training{}, err
	}
	return d.deps.UpdateStatus.Handle(ctx, cmd)
}

func (d demo) cancel(ctx context.Context, t training.Training, reason string) (training.Training, error) {
	cmd, err := commands.NewCancelTrainingCommand(t.ID(), reason)
	if err != nil {
		return training.Training{}, err
	}
	return d.deps.Cancel.Handle(ctx, cmd)
}

func (d demo) day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, d.deps.Location)
}

func (d demo) input(title string, date time.Time) training.Input {
	return training.Input{
		Title:       title,
		Description: "Demo course",
		Date:        date,
		Location:    "Room 1",
		Capacity:    10,
		Level:       training.Intermediate,
		Price:       100,
	}
}

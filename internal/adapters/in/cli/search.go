package cli

import (
	"errors"
	"fmt"
	"time"

	"training/internal/core/application/usecases/queries"

	"github.com/spf13/cobra"
)

var ErrSeedFileIsRequired = errors.New("seed file is required: pass --seed or set SEED_FILE")

func searchCmd(deps Deps) *cobra.Command {
	var from string
	var to string
	var seedFile string

	c := &cobra.Command{
		Use:   "search",
		Short: "Load a seed catalog and list the trainings scheduled between two days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := parseDay(from, deps.Location)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			end, err := parseDay(to, deps.Location)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			if seedFile == "" {
				seedFile = deps.SeedFile
			}
			if seedFile == "" {
				return ErrSeedFileIsRequired
			}

			if _, err = deps.Seeder.Seed(cmd.Context(), seedFile); err != nil {
				return err
			}

			query, err := queries.NewSearchTrainingsQuery(start, end)
			if err != nil {
				return err
			}

			rows, err := deps.Search.Handle(cmd.Context(), query)
			if err != nil {
				return err
			}

			deps.Logger.InfoContext(cmd.Context(), "search finished",
				"from", from, "to", to, "matches", len(rows))
			return printTrainings(cmd.OutOrStdout(), rows, deps.Location)
		},
	}

	c.Flags().StringVarP(&from, "from", "f", "", "First day of the range, YYYY-MM-DD (required)")
	c.Flags().StringVarP(&to, "to", "t", "", "Last day of the range, YYYY-MM-DD (required)")
	c.Flags().StringVarP(&seedFile, "seed", "s", "", "YAML catalog to search (defaults to SEED_FILE)")

	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")
	return c
}

func parseDay(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a YYYY-MM-DD date", s)
	}
	return t, nil
}

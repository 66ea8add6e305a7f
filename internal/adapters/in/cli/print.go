package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"training/internal/core/application/usecases/queries"
	"training/internal/core/domain/model/training"
)

func printTrainings(w io.Writer, rows []queries.SearchTrainingsQueryResponse, loc *time.Location) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No trainings found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTITLE\tLEVEL\tSTATUS\tLOCATION\tSEATS\tPRICE")
	for _, r := range rows {
		status := r.Status.String()
		if r.Status == training.Canceled {
			status = fmt.Sprintf("%s (%s)", status, r.CancelReason)
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%.2f\n",
			r.Date.In(loc).Format("2006-01-02 15:04"),
			r.Title,
			r.Level,
			status,
			r.Location,
			r.Capacity,
			r.Price,
		)
	}
	return tw.Flush()
}

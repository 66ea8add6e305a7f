package queries

import (
	"errors"
	"time"

	"training/internal/core/domain/model/kernel"
	"training/internal/core/domain/model/training"
	"training/internal/pkg/guard"
)

var ErrSearchTrainingsQueryIsNotConstructed = errors.New(
	"SearchTrainingsQuery must be created via NewSearchTrainingsQuery constructor",
)

// SearchTrainingsQuery finds the trainings scheduled between two days, both
// included. Only the calendar day of each bound matters.
//
// Example:
//
//	query, err := NewSearchTrainingsQuery(
//	    time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
//	    time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
//	)
//	if err != nil {
//	    return err
//	}
//
//	rows, err := handler.Handle(ctx, query)
type SearchTrainingsQuery struct {
	dateRange kernel.DateRange

	guard guard.ConstructorGuard
}

// NewSearchTrainingsQuery requires both bounds. A start after the end is
// accepted and matches nothing.
func NewSearchTrainingsQuery(start, end time.Time) (SearchTrainingsQuery, error) {
	r, err := kernel.NewDateRange(start, end)
	if err != nil {
		return SearchTrainingsQuery{}, err
	}

	return SearchTrainingsQuery{
		dateRange: r,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchTrainingsQuery) Validate() error {
	return q.guard.Validate(ErrSearchTrainingsQueryIsNotConstructed)
}

func (q SearchTrainingsQuery) DateRange() kernel.DateRange {
	return q.dateRange
}

// SearchTrainingsQueryResponse is one matching training.
type SearchTrainingsQueryResponse struct {
	ID           kernel.UUID
	Title        string
	Date         time.Time
	Location     string
	Capacity     int
	Level        training.Level
	Price        float64
	Status       training.StatusKind
	CancelReason string
}

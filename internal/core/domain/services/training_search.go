package services

import (
	"slices"

	"training/internal/core/domain/model/kernel"
	"training/internal/core/domain/model/training"
)

// TrainingSearch is a domain service selecting trainings by scheduled date.
//
// Business rules:
//   - both bounds of the range are whole days and inclusive
//   - an inverted range matches nothing
//   - results are ordered by date ascending; equal dates keep input order
//
// Example usage:
//
//	r, _ := kernel.NewDateRange(from, to)
//	found := services.NewTrainingSearch().Search(catalog, r)
type TrainingSearch struct{}

// NewTrainingSearch creates a new TrainingSearch instance.
func NewTrainingSearch() TrainingSearch {
	return TrainingSearch{}
}

// Search returns the trainings whose date falls within r, sorted by date.
// The input slice is not modified; the result is always a new, non-nil slice.
func (s TrainingSearch) Search(trainings []training.Training, r kernel.DateRange) []training.Training {
	found := make([]training.Training, 0)
	if r.IsInverted() {
		return found
	}

	for _, t := range trainings {
		if r.Contains(t.Date()) {
			found = append(found, t)
		}
	}

	slices.SortStableFunc(found, func(a, b training.Training) int {
		return a.Date().Compare(b.Date())
	})

	return found
}

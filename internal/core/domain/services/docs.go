// Package services provides domain services that work across many trainings
// of the catalog rather than on a single entity.
//
// The package includes:
//   - TrainingSearch: selects the trainings scheduled within a date range
package services

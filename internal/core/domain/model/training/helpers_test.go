package training_test

import (
	"testing"
	"time"

	"training/internal/core/domain/model/kernel"
	"training/internal/core/domain/model/training"

	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, time.April, 1, 9, 0, 0, 0, time.UTC)

func validInput() training.Input {
	return training.Input{
		Title:       "Go fundamentals",
		Description: "Types, interfaces and the standard library",
		Date:        time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC),
		Location:    "Room 101",
		Capacity:    12,
		Level:       training.Beginner,
		Price:       150,
	}
}

// steppingClock returns start, start+step, start+2*step, ... on successive calls.
func steppingClock(start time.Time, step time.Duration) kernel.Clock {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}

func newDraft(t *testing.T) training.Training {
	t.Helper()

	tr, err := training.NewTraining(kernel.NewUUID(), validInput(), baseTime)
	require.NoError(t, err)
	return tr
}

func newOpen(t *testing.T) training.Training {
	t.Helper()

	tr, err := newDraft(t).UpdateStatus(training.Open, baseTime.Add(time.Minute))
	require.NoError(t, err)
	return tr
}

func newCompleted(t *testing.T) training.Training {
	t.Helper()

	tr, err := newOpen(t).UpdateStatus(training.Completed, baseTime.Add(2*time.Minute))
	require.NoError(t, err)
	return tr
}

func newCanceled(t *testing.T) training.Training {
	t.Helper()

	tr, err := newOpen(t).Cancel("trainer is sick", baseTime.Add(2*time.Minute))
	require.NoError(t, err)
	return tr
}

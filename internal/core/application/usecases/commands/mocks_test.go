package commands_test

import (
	"context"
	"testing"
	"time"

	"training/internal/core/domain/model/kernel"
	"training/internal/core/domain/model/training"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, time.April, 1, 9, 0, 0, 0, time.UTC)

type MockTrainingRepository struct{ mock.Mock }

func (m *MockTrainingRepository) Add(ctx context.Context, t training.Training) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrainingRepository) Update(ctx context.Context, t training.Training) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrainingRepository) Get(ctx context.Context, id kernel.UUID) (training.Training, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(training.Training), args.Error(1)
}

func (m *MockTrainingRepository) GetAll(ctx context.Context) ([]training.Training, error) {
	args := m.Called(ctx)
	return args.Get(0).([]training.Training), args.Error(1)
}

func (m *MockTrainingRepository) GetAllInStatus(
	ctx context.Context,
	kind training.StatusKind,
) ([]training.Training, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).([]training.Training), args.Error(1)
}

func validInput() training.Input {
	return training.Input{
		Title:       "Go basics",
		Description: "Intro course",
		Date:        time.Date(2025, time.May, 15, 9, 0, 0, 0, time.UTC),
		Location:    "Room 1",
		Capacity:    10,
		Level:       training.Beginner,
		Price:       0,
	}
}

func fixedClock(now time.Time) kernel.Clock {
	return func() time.Time { return now }
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

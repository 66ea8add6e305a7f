package guard_test

import (
	"errors"
	"testing"

	"training/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

// TestConstructorGuard_EmbeddedInValueType shows the guard surviving value copies,
// which is how immutable entities carry it through copy-with updates.
func TestConstructorGuard_EmbeddedInValueType(t *testing.T) {
	errSeatNotConstructed := errors.New("Seat must be created via NewSeat")

	type Seat struct {
		row   int
		guard guard.ConstructorGuard
	}

	newSeat := func(row int) (Seat, error) {
		if row <= 0 {
			return Seat{}, errors.New("row must be positive")
		}
		return Seat{row: row, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("copy_keeps_guard", func(t *testing.T) {
		seat, err := newSeat(3)
		require.NoError(t, err)

		moved := seat
		moved.row = 4

		require.NoError(t, moved.guard.Validate(errSeatNotConstructed))
		assert.Equal(t, 3, seat.row)
	})

	t.Run("zero_value_fails", func(t *testing.T) {
		var seat Seat

		assert.Equal(t, errSeatNotConstructed, seat.guard.Validate(errSeatNotConstructed))
	})

	t.Run("constructor_rejects_invalid_input", func(t *testing.T) {
		_, err := newSeat(0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "row must be positive")
	})
}

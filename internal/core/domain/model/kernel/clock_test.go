package kernel_test

import (
	"testing"
	"time"

	"training/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestSystemClock(t *testing.T) {
	t.Run("should return UTC instants that do not go backwards", func(t *testing.T) {
		var clock kernel.Clock = kernel.SystemClock

		first := clock()
		second := clock()

		assert.Equal(t, time.UTC, first.Location())
		assert.False(t, second.Before(first))
	})
}

package task_test

import (
	"testing"
	"time"

	"hr-console/internal/task"

	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, v string) time.Time {
	t.Helper()
	ts, err := time.Parse(task.TimeLayout, v)
	assert.NoError(t, err)
	return ts
}

func TestStatusAt(t *testing.T) {
	start := mustParse(t, "2025-01-01T09:00")
	end := mustParse(t, "2025-01-01T17:00")

	t.Run("before the window is pending", func(t *testing.T) {
		assert.Equal(t, task.StatusPending, task.StatusAt(start, end, mustParse(t, "2024-12-31T00:00")))
	})

	t.Run("inside the window is in progress", func(t *testing.T) {
		assert.Equal(t, task.StatusInProgress, task.StatusAt(start, end, mustParse(t, "2025-01-01T12:00")))
	})

	t.Run("after the window is completed", func(t *testing.T) {
		assert.Equal(t, task.StatusCompleted, task.StatusAt(start, end, mustParse(t, "2025-01-02T00:00")))
	})

	t.Run("boundaries are inclusive", func(t *testing.T) {
		assert.Equal(t, task.StatusInProgress, task.StatusAt(start, end, start))
		assert.Equal(t, task.StatusInProgress, task.StatusAt(start, end, end))
	})

	t.Run("zero-length window at the current instant is in progress", func(t *testing.T) {
		now := mustParse(t, "2025-03-10T08:30")
		assert.Equal(t, task.StatusInProgress, task.StatusAt(now, now, now))
	})
}

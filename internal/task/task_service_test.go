package task

import (
	"context"
	"testing"
	"time"

	"hr-console/internal/shared/listview"

	"github.com/stretchr/testify/assert"
)

func fixedClock(t *testing.T, v string) func() time.Time {
	t.Helper()
	ts, err := time.Parse(TimeLayout, v)
	assert.NoError(t, err)
	return func() time.Time { return ts }
}

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns monotonic ids and derives the status", func(t *testing.T) {
		svc := newService(NewMemoryStore(), fixedClock(t, "2025-01-01T12:00"))

		first, err := svc.Create(ctx, CreateTaskRequest{
			Title:   "Demo",
			StartAt: "2025-01-01T09:00",
			EndAt:   "2025-01-01T17:00",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), first.ID)
		assert.Equal(t, StatusInProgress, first.Status)

		second, err := svc.Create(ctx, CreateTaskRequest{
			Title:   "Quarterly review",
			StartAt: "2025-02-01T09:00",
			EndAt:   "2025-02-01T10:00",
			Assignees: []string{"Jane Doe", "John Smith"},
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), second.ID)
		assert.Equal(t, StatusPending, second.Status)
		assert.Equal(t, []string{"Jane Doe", "John Smith"}, second.Assignees)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		svc := newService(NewMemoryStore(), fixedClock(t, "2025-01-01T12:00"))

		_, err := svc.Create(ctx, CreateTaskRequest{
			Title:   "Backwards",
			StartAt: "2025-01-02T09:00",
			EndAt:   "2025-01-01T09:00",
		})

		assert.ErrorIs(t, err, ErrEndBeforeStart)
	})

	t.Run("unparseable timestamps are rejected", func(t *testing.T) {
		svc := newService(NewMemoryStore(), fixedClock(t, "2025-01-01T12:00"))

		_, err := svc.Create(ctx, CreateTaskRequest{
			Title:   "Bad clock",
			StartAt: "yesterday",
			EndAt:   "2025-01-01T09:00",
		})

		assert.ErrorIs(t, err, ErrInvalidTime)
	})
}

func TestTaskService_List(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, svc Service) {
		t.Helper()
		for _, req := range []CreateTaskRequest{
			{Title: "Demo", StartAt: "2025-01-01T09:00", EndAt: "2025-01-01T17:00"},
			{Title: "Retro", StartAt: "2024-12-01T09:00", EndAt: "2024-12-01T10:00"},
			{Title: "Planning", StartAt: "2025-03-01T09:00", EndAt: "2025-03-01T10:00"},
		} {
			_, err := svc.Create(ctx, req)
			assert.NoError(t, err)
		}
	}

	t.Run("status selector filters on the derived value", func(t *testing.T) {
		svc := newService(NewMemoryStore(), fixedClock(t, "2025-01-01T12:00"))
		seed(t, svc)

		page, err := svc.List(ctx,
			listview.Criteria{Selectors: map[string]string{"status": StatusCompleted}},
			listview.Window{Page: 1, Size: 10},
		)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
		assert.Equal(t, "Retro", page.Rows[0].Title)
	})

	t.Run("all selector with empty query returns everything in insertion order", func(t *testing.T) {
		svc := newService(NewMemoryStore(), fixedClock(t, "2025-01-01T12:00"))
		seed(t, svc)

		page, err := svc.List(ctx,
			listview.Criteria{Selectors: map[string]string{"status": listview.All}},
			listview.Window{Page: 1, Size: 10},
		)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), page.Total)
		assert.Equal(t, "Demo", page.Rows[0].Title)
		assert.Equal(t, "Retro", page.Rows[1].Title)
		assert.Equal(t, "Planning", page.Rows[2].Title)
	})

	t.Run("text query matches the title case-insensitively", func(t *testing.T) {
		svc := newService(NewMemoryStore(), fixedClock(t, "2025-01-01T12:00"))
		seed(t, svc)

		page, err := svc.List(ctx,
			listview.Criteria{Query: "dEmO"},
			listview.Window{Page: 1, Size: 10},
		)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
	})
}

func TestTaskService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted tasks vanish from the list", func(t *testing.T) {
		svc := newService(NewMemoryStore(), fixedClock(t, "2025-01-01T12:00"))

		created, err := svc.Create(ctx, CreateTaskRequest{
			Title: "Demo", StartAt: "2025-01-01T09:00", EndAt: "2025-01-01T17:00",
		})
		assert.NoError(t, err)

		assert.NoError(t, svc.Delete(ctx, created.ID))

		page, err := svc.List(ctx, listview.Criteria{}, listview.Window{Page: 1, Size: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(0), page.Total)

		assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrTaskNotFound)
	})

	t.Run("ids are never reused after a delete", func(t *testing.T) {
		svc := newService(NewMemoryStore(), fixedClock(t, "2025-01-01T12:00"))

		first, _ := svc.Create(ctx, CreateTaskRequest{
			Title: "One", StartAt: "2025-01-01T09:00", EndAt: "2025-01-01T17:00",
		})
		assert.NoError(t, svc.Delete(ctx, first.ID))

		second, err := svc.Create(ctx, CreateTaskRequest{
			Title: "Two", StartAt: "2025-01-01T09:00", EndAt: "2025-01-01T17:00",
		})
		assert.NoError(t, err)
		assert.Equal(t, first.ID+1, second.ID)
	})
}

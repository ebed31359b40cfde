package task

import (
	"context"
	"sync"
)

//go:generate mockgen -source=task_store.go -destination=mock/task_store_mock.go -package=mock
type Store interface {
	Create(ctx context.Context, t *Task) error
	FindAll(ctx context.Context) ([]Task, error)
	FindByID(ctx context.Context, id int64) (*Task, error)
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id int64) error
}

// memoryStore keeps tasks in insertion order behind one mutex. The task
// board is a session-scoped scratchpad, so nothing is persisted.
type memoryStore struct {
	mu     sync.Mutex
	nextID int64
	tasks  []Task
}

func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Create(ctx context.Context, t *Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	t.ID = s.nextID
	s.tasks = append(s.tasks, cloneTask(*t))
	return nil
}

func (s *memoryStore) FindAll(ctx context.Context) ([]Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = cloneTask(t)
	}
	return out, nil
}

func (s *memoryStore) FindByID(ctx context.Context, id int64) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		if t.ID == id {
			c := cloneTask(t)
			return &c, nil
		}
	}
	return nil, ErrTaskNotFound
}

func (s *memoryStore) Update(ctx context.Context, t *Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			s.tasks[i] = cloneTask(*t)
			return nil
		}
	}
	return ErrTaskNotFound
}

func (s *memoryStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return ErrTaskNotFound
}

// cloneTask copies the assignee slice so callers never share backing arrays
// with the store.
func cloneTask(t Task) Task {
	if t.Assignees != nil {
		t.Assignees = append([]string(nil), t.Assignees...)
	}
	return t
}

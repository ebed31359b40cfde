package task

import (
	"context"
	"time"

	"hr-console/internal/shared/listview"

	"go.uber.org/zap"
)

//go:generate mockgen -source=task_service.go -destination=mock/task_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	List(ctx context.Context, crit listview.Criteria, win listview.Window) (listview.Page[TaskResponse], error)
	GetByID(ctx context.Context, id int64) (TaskResponse, error)
	Update(ctx context.Context, id int64, req UpdateTaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store  Store
	now    func() time.Time
	logger *zap.Logger
}

func NewService(store Store, logger ...*zap.Logger) Service {
	return newService(store, time.Now, logger...)
}

func newService(store Store, now func() time.Time, logger ...*zap.Logger) Service {
	l := zap.L().Named("task.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.service")
	}
	return &service{store: store, now: now, logger: l}
}

// taskFields feeds the in-memory assembly: free text over title and
// description, one categorical selector over the derived status.
var taskFields = listview.Fields[TaskResponse]{
	Searchable: []func(TaskResponse) string{
		func(t TaskResponse) string { return t.Title },
		func(t TaskResponse) string { return t.Description },
	},
	Categorical: map[string]func(TaskResponse) string{
		"status": func(t TaskResponse) string { return t.Status },
	},
}

func (s *service) Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error) {
	start, end, err := parseRange(req.StartAt, req.EndAt)
	if err != nil {
		return TaskResponse{}, err
	}

	t := &Task{
		Title:       req.Title,
		Description: req.Description,
		StartAt:     start,
		EndAt:       end,
		Assignees:   req.Assignees,
		CreatedAt:   s.now(),
	}

	if err := s.store.Create(ctx, t); err != nil {
		return TaskResponse{}, err
	}

	s.logger.Info("create task success",
		zap.Int64("task_id", t.ID),
		zap.String("title", t.Title),
	)

	return s.mapToResponse(*t), nil
}

func (s *service) List(ctx context.Context, crit listview.Criteria, win listview.Window) (listview.Page[TaskResponse], error) {
	tasks, err := s.store.FindAll(ctx)
	if err != nil {
		return listview.Page[TaskResponse]{}, err
	}

	resp := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		resp[i] = s.mapToResponse(t)
	}

	return listview.AssembleClient(resp, crit, taskFields, win), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (TaskResponse, error) {
	t, err := s.store.FindByID(ctx, id)
	if err != nil {
		return TaskResponse{}, err
	}
	return s.mapToResponse(*t), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateTaskRequest) (TaskResponse, error) {
	start, end, err := parseRange(req.StartAt, req.EndAt)
	if err != nil {
		return TaskResponse{}, err
	}

	t, err := s.store.FindByID(ctx, id)
	if err != nil {
		return TaskResponse{}, err
	}

	t.Title = req.Title
	t.Description = req.Description
	t.StartAt = start
	t.EndAt = end
	t.Assignees = req.Assignees

	if err := s.store.Update(ctx, t); err != nil {
		return TaskResponse{}, err
	}

	return s.mapToResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("delete task success", zap.Int64("task_id", id))
	return nil
}

func parseRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := time.Parse(TimeLayout, startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidTime
	}
	end, err := time.Parse(TimeLayout, endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidTime
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrEndBeforeStart
	}
	return start, end, nil
}

// mapToResponse samples the clock once so the status always reflects the
// instant of the render.
func (s *service) mapToResponse(t Task) TaskResponse {
	assignees := t.Assignees
	if assignees == nil {
		assignees = []string{}
	}
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		StartAt:     t.StartAt.Format(TimeLayout),
		EndAt:       t.EndAt.Format(TimeLayout),
		Assignees:   assignees,
		Status:      StatusAt(t.StartAt, t.EndAt, s.now()),
	}
}

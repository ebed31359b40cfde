package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"hr-console/internal/events"
	"hr-console/internal/messaging/kafka"
	"hr-console/internal/shared/contextutil"
	"hr-console/internal/shared/counter"
	"hr-console/internal/shared/listview"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const employeeOptionsKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest, photoPath string) (EmployeeResponse, error)
	List(ctx context.Context, q ListQuery) (listview.Page[EmployeeResponse], error)
	GetOptions(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest, photoPath string) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest, photoPath string) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.Int64("user_id", req.UserID),
		zap.String("department_id", req.DepartmentID),
	)

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return EmployeeResponse{}, ErrInvalidDate
	}
	if dob != nil && !dob.Before(time.Now()) {
		return EmployeeResponse{}, ErrBirthDateNotPast
	}
	hireDate, err := parseOptionalDate(req.HireDate)
	if err != nil {
		return EmployeeResponse{}, ErrInvalidDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.DepartmentExists(ctx, req.DepartmentID)
	if err != nil {
		s.logger.Error("create employee department lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if !exists {
		s.logger.Warn("create employee unknown department",
			zap.String("department_id", req.DepartmentID),
		)
		return EmployeeResponse{}, ErrDepartmentNotFound
	}

	nextVal, err := s.counter.GetNextValue(ctx, "employee_number")
	if err != nil {
		s.logger.Error("create employee generate number failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	empl := &Employee{
		ID:             uuid.New(),
		UserID:         req.UserID,
		DepartmentID:   uuid.MustParse(req.DepartmentID),
		EmployeeNumber: fmt.Sprintf("EMP-%06d", nextVal),
		FullName:       req.FullName,
		Gender:         req.Gender,
		DateOfBirth:    dob,
		Phone:          req.Phone,
		HireDate:       hireDate,
		Status:         status,
		Position:       req.Position,
		Address:        req.Address,
		PhotoPath:      photoPath,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.queueLifecycleEvent(ctx, tx, rid, events.EmployeeCreated, empl.ID.String()); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_number", empl.EmployeeNumber),
	)

	return mapToResponse(*empl), nil
}

// List runs the server-side assembly mode: filters and the window are pushed
// to the repository and its page plus total are trusted as-is.
func (s *service) List(ctx context.Context, q ListQuery) (listview.Page[EmployeeResponse], error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}

	empls, total, err := s.repo.FindPage(ctx, q)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return listview.Page[EmployeeResponse]{}, mapRepositoryError(err)
	}

	return listview.AssembleServer(mapToListResponse(empls), total), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, employeeOptionsKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight collapses the burst when many admins open a form at once.
	v, err, _ := s.sf.Do(employeeOptionsKey, func() (interface{}, error) {
		empls, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(empls)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, employeeOptionsKey, jsonData, time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest, photoPath string) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return EmployeeResponse{}, ErrInvalidDate
	}
	if dob != nil && !dob.Before(time.Now()) {
		return EmployeeResponse{}, ErrBirthDateNotPast
	}
	hireDate, err := parseOptionalDate(req.HireDate)
	if err != nil {
		return EmployeeResponse{}, ErrInvalidDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.DepartmentExists(ctx, req.DepartmentID)
	if err != nil {
		s.logger.Error("update employee department lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if !exists {
		return EmployeeResponse{}, ErrDepartmentNotFound
	}

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.UserID = req.UserID
	empl.DepartmentID = uuid.MustParse(req.DepartmentID)
	empl.FullName = req.FullName
	empl.Gender = req.Gender
	empl.DateOfBirth = dob
	empl.Phone = req.Phone
	empl.HireDate = hireDate
	if req.Status != "" {
		empl.Status = req.Status
	}
	empl.Position = req.Position
	empl.Address = req.Address
	if photoPath != "" {
		empl.PhotoPath = photoPath
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.queueLifecycleEvent(ctx, tx, rid, events.EmployeeUpdated, empl.ID.String()); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.queueLifecycleEvent(ctx, tx, rid, events.EmployeeDeleted, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) queueLifecycleEvent(ctx context.Context, tx *sql.Tx, rid, eventType, employeeID string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.EmployeeLifecycleEvent{
		EventType:  eventType,
		RequestID:  rid,
		EmployeeID: employeeID,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal lifecycle event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   employeeID,
		EventType:     eventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("queue lifecycle event failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, employeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", employeeOptionsKey),
		)
	}
}

func parseOptionalDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             empl.ID.String(),
		EmployeeNumber: empl.EmployeeNumber,
		FullName:       empl.FullName,
		UserID:         empl.UserID,
		DepartmentID:   empl.DepartmentID.String(),
		Gender:         empl.Gender,
		DateOfBirth:    formatOptionalDate(empl.DateOfBirth),
		Phone:          empl.Phone,
		HireDate:       formatOptionalDate(empl.HireDate),
		Status:         empl.Status,
		Position:       empl.Position,
		Address:        empl.Address,
		PhotoPath:      empl.PhotoPath,
	}
	if !empl.CreatedAt.IsZero() {
		resp.CreatedAt = empl.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !empl.UpdatedAt.IsZero() {
		resp.UpdatedAt = empl.UpdatedAt.UTC().Format(time.RFC3339)
	}
	if empl.Department != nil {
		resp.Department = &DepartmentRefResponse{
			ID:   empl.Department.ID.String(),
			Name: empl.Department.Name,
		}
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

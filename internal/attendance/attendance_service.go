package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	statusPresent = "PRESENT"
	statusLate    = "LATE"

	sourceManual = "MANUAL"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, userID int64, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, userID int64, req ClockOutRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, userID int64, canReadAll bool) ([]AttendanceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return newService(db, repo, time.Now, logger...)
}

func newService(db *sql.DB, repo Repository, now func() time.Time, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, now: now, logger: l}
}

func (s *service) ClockIn(ctx context.Context, userID int64, req ClockInRequest) (AttendanceResponse, error) {
	employeeID, err := s.resolveEmployee(ctx, userID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now().UTC()
	today := now.Truncate(24 * time.Hour)

	existing, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if existing != nil {
		return AttendanceResponse{}, ErrAlreadyClockedIn
	}

	status := statusPresent
	if now.Hour() > 9 || (now.Hour() == 9 && now.Minute() > 15) {
		status = statusLate
	}

	source := req.Source
	if source == "" {
		source = sourceManual
	}

	row := &Attendance{
		ID:             uuid.New(),
		EmployeeID:     uuid.MustParse(employeeID),
		AttendanceDate: today,
		ClockIn:        now,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Status:         status,
		Source:         source,
		Notes:          req.Notes,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("clock in failed", zap.String("employee_id", employeeID), zap.Error(err))
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("clock in recorded",
		zap.String("employee_id", employeeID),
		zap.String("status", status),
	)
	return mapToResponse(*row), nil
}

func (s *service) ClockOut(ctx context.Context, userID int64, req ClockOutRequest) (AttendanceResponse, error) {
	employeeID, err := s.resolveEmployee(ctx, userID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now().UTC()
	today := now.Truncate(24 * time.Hour)

	row, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, ErrNoClockInToday
		}
		return AttendanceResponse{}, err
	}
	if row.ClockOut != nil {
		return AttendanceResponse{}, ErrAlreadyClockedOut
	}

	row.ClockOut = &now
	if req.Latitude != nil {
		row.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		row.Longitude = req.Longitude
	}
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := qtx.Update(ctx, row); err != nil {
		s.logger.Error("clock out failed", zap.String("employee_id", employeeID), zap.Error(err))
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("clock out recorded", zap.String("employee_id", employeeID))
	return mapToResponse(*row), nil
}

// GetAll answers the attendance sheet. Admin-grade roles see every row,
// everyone else only their own history.
func (s *service) GetAll(ctx context.Context, userID int64, canReadAll bool) ([]AttendanceResponse, error) {
	var (
		rows []Attendance
		err  error
	)
	if canReadAll {
		rows, err = s.repo.FindAll(ctx)
	} else {
		employeeID, resolveErr := s.resolveEmployee(ctx, userID)
		if resolveErr != nil {
			return nil, resolveErr
		}
		rows, err = s.repo.FindAllByEmployee(ctx, employeeID)
	}
	if err != nil {
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) resolveEmployee(ctx context.Context, userID int64) (string, error) {
	id, err := s.repo.FindEmployeeIDByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotLinked
		}
		return "", err
	}
	return id, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		EmployeeID:     a.EmployeeID.String(),
		AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
		ClockIn:        a.ClockIn.Format(time.RFC3339),
		Latitude:       a.Latitude,
		Longitude:      a.Longitude,
		Status:         a.Status,
		Source:         a.Source,
		Notes:          a.Notes,
	}
	if a.ClockOut != nil {
		v := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FullName
	}
	return resp
}

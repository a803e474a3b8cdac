package attendance

import (
	"context"
	"errors"
	"strings"

	attendanceerrors "github.com/Prateek11234/hrms/internal/attendance/errors"
	"github.com/Prateek11234/hrms/internal/shared/apperror"
	"github.com/Prateek11234/hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Mark(ctx context.Context, employeeID string, req MarkAttendanceRequest) (AttendanceResponse, error)
	List(ctx context.Context, employeeID string, query ListAttendanceQuery) ([]AttendanceResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Mark(ctx context.Context, employeeID string, req MarkAttendanceRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	employeeID = strings.TrimSpace(employeeID)
	req.Normalize()
	s.logger.Debug("mark attendance requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("date", req.Date),
		zap.String("status", req.Status),
	)

	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("mark attendance validation failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}
	date, err := ParseDate(req.Date)
	if err != nil {
		return AttendanceResponse{}, apperror.InvalidField("date", "Date must be a valid calendar date (YYYY-MM-DD)")
	}
	status, err := ParseStatus(req.Status)
	if err != nil {
		return AttendanceResponse{}, apperror.InvalidField("status", "Status must be one of: Present, Absent")
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("mark attendance begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return AttendanceResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	employeePK, err := qtx.FindEmployeePK(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("mark attendance resolve employee failed", zap.String("request_id", rid), zap.Error(err))
		}
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	existing, err := qtx.FindByEmployeeAndDate(ctx, employeePK, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("mark attendance pre-check failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}
	if err == nil && existing != nil {
		s.logger.Info("attendance already marked",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.String("date", FormatDate(date)),
		)
		return AttendanceResponse{}, attendanceerrors.ErrAttendanceAlreadyMarked
	}

	row := &Attendance{
		ID:             uuid.New(),
		EmployeePK:     employeePK,
		AttendanceDate: date,
		Status:         status,
	}
	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Warn("mark attendance persist failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("mark attendance commit failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("mark attendance success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("date", FormatDate(date)),
		zap.Stringer("status", status),
	)
	return mapToResponse(*row), nil
}

func (s *service) List(ctx context.Context, employeeID string, query ListAttendanceQuery) ([]AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	employeeID = strings.TrimSpace(employeeID)
	query.Normalize()
	s.logger.Debug("list attendance requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("start_date", query.StartDate),
		zap.String("end_date", query.EndDate),
		zap.String("status", query.Status),
	)

	if err := apperror.Validate(query); err != nil {
		return nil, err
	}
	filter, err := query.toFilter()
	if err != nil {
		return nil, err
	}

	employeePK, err := s.repo.FindEmployeePK(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	rows, err := s.repo.FindAllByEmployee(ctx, employeePK, filter)
	if err != nil {
		s.logger.Error("list attendance failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		Date:      FormatDate(a.AttendanceDate),
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
	}
}

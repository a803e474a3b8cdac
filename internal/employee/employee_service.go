package employee

import (
	"context"
	"errors"
	"strings"

	employeeerrors "github.com/Prateek11234/hrms/internal/employee/errors"
	"github.com/Prateek11234/hrms/internal/shared/apperror"
	"github.com/Prateek11234/hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Delete(ctx context.Context, employeeID string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	req.Normalize()
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("email", req.Email),
	)

	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("create employee validation failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return EmployeeResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	existing, err := qtx.FindByEmployeeIDOrEmail(ctx, req.EmployeeID, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("create employee pre-check failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	if err == nil && existing != nil {
		if existing.EmployeeID == req.EmployeeID {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeIDAlreadyExists
		}
		return EmployeeResponse{}, employeeerrors.ErrEmailAlreadyExists
	}

	empl := &Employee{
		ID:         uuid.New(),
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	}
	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Warn("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.EmployeeID),
	)
	return mapToResponse(*empl), nil
}

func (s *service) List(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("list employees requested", zap.String("request_id", contextutil.GetRequestID(ctx)))
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(employees), nil
}

// Delete removes the employee and all of its attendance in one transaction.
func (s *service) Delete(ctx context.Context, employeeID string) error {
	rid := contextutil.GetRequestID(ctx)
	employeeID = strings.TrimSpace(employeeID)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete employee begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("delete employee lookup failed", zap.String("request_id", rid), zap.Error(err))
		}
		return mapRepositoryError(err)
	}

	removed, err := qtx.DeleteAttendance(ctx, empl.ID)
	if err != nil {
		s.logger.Error("delete employee attendance failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	if err := qtx.Delete(ctx, empl.ID); err != nil {
		s.logger.Error("delete employee failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Int64("attendance_removed", removed),
	)
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID: empl.EmployeeID,
		FullName:   empl.FullName,
		Email:      empl.Email,
		Department: empl.Department,
		CreatedAt:  empl.CreatedAt,
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}

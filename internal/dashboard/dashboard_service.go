package dashboard

import (
	"context"
	"time"

	"github.com/Prateek11234/hrms/internal/attendance"
	"github.com/Prateek11234/hrms/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Summary(ctx context.Context) (DashboardResponse, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithClock(repo, time.Now, logger...)
}

// NewServiceWithClock uses now to decide which calendar day is "today".
func NewServiceWithClock(repo Repository, now func() time.Time, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		repo:   repo,
		now:    now,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// Summary computes the counts fresh. Concurrent callers for the same day
// share one in-flight computation; nothing is kept once it returns.
func (s *service) Summary(ctx context.Context) (DashboardResponse, error) {
	today := attendance.DateOf(s.now())
	key := attendance.FormatDate(today)
	s.logger.Debug("dashboard summary requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("today", key),
	)

	v, err, shared := s.sf.Do(key, func() (interface{}, error) {
		return s.compute(context.WithoutCancel(ctx), today)
	})
	if err != nil {
		s.logger.Error("dashboard summary failed", zap.Error(err))
		return DashboardResponse{}, err
	}
	if shared {
		s.logger.Debug("dashboard summary shared", zap.String("today", key))
	}

	return v.(DashboardResponse), nil
}

func (s *service) compute(ctx context.Context, today time.Time) (DashboardResponse, error) {
	employees, err := s.repo.CountEmployees(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}
	records, err := s.repo.CountAttendance(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}
	byStatus, err := s.repo.CountAttendanceByStatusOn(ctx, today)
	if err != nil {
		return DashboardResponse{}, err
	}

	return DashboardResponse{
		EmployeeCount:     employees,
		AttendanceRecords: records,
		TodayPresent:      byStatus[attendance.StatusPresent],
		TodayAbsent:       byStatus[attendance.StatusAbsent],
		TodayDate:         attendance.FormatDate(today),
	}, nil
}

package dashboard

import (
	"context"
	"time"

	"github.com/Prateek11234/hrms/internal/attendance"
	"github.com/Prateek11234/hrms/internal/employee"

	"gorm.io/gorm"
)

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountAttendance(ctx context.Context) (int64, error)
	CountAttendanceByStatusOn(ctx context.Context, date time.Time) (map[attendance.Status]int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountEmployees(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&employee.Employee{}).Count(&n).Error
	return n, err
}

func (r *repository) CountAttendance(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&attendance.Attendance{}).Count(&n).Error
	return n, err
}

type statusCount struct {
	Status attendance.Status
	Total  int64
}

func (r *repository) CountAttendanceByStatusOn(ctx context.Context, date time.Time) (map[attendance.Status]int64, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&attendance.Attendance{}).
		Select("status, COUNT(*) AS total").
		Where("attendance_date = ?", attendance.DateOf(date)).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[attendance.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Filter narrows an attendance listing. Nil fields are not applied; the
// date bounds are inclusive.
type Filter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    *Status
}

// Scope adds the set filter fields to a query on the attendances table.
func (f Filter) Scope(db *gorm.DB) *gorm.DB {
	if f.StartDate != nil {
		db = db.Where("attendance_date >= ?", DateOf(*f.StartDate))
	}
	if f.EndDate != nil {
		db = db.Where("attendance_date <= ?", DateOf(*f.EndDate))
	}
	if f.Status != nil {
		db = db.Where("status = ?", *f.Status)
	}
	return db
}

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindEmployeePK(ctx context.Context, employeeID string) (uuid.UUID, error)
	FindByEmployeeAndDate(ctx context.Context, employeePK uuid.UUID, date time.Time) (*Attendance, error)
	Create(ctx context.Context, a *Attendance) error
	FindAllByEmployee(ctx context.Context, employeePK uuid.UUID, filter Filter) ([]Attendance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) FindEmployeePK(ctx context.Context, employeeID string) (uuid.UUID, error) {
	var ref employeeRef
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id", "employee_id").
		Where("employee_id = ?", employeeID).
		Take(&ref).Error
	return ref.ID, err
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeePK uuid.UUID, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee_pk = ?", employeePK).
		Where("attendance_date = ?", DateOf(date)).
		Take(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeePK uuid.UUID, filter Filter) ([]Attendance, error) {
	rows := make([]Attendance, 0)
	err := r.db.WithContext(ctx).
		Where("employee_pk = ?", employeePK).
		Scopes(filter.Scope).
		Order("attendance_date DESC").
		Find(&rows).Error
	return rows, err
}

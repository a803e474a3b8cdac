package employee

import (
	"context"

	"github.com/Prateek11234/hrms/internal/attendance"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	FindByEmployeeIDOrEmail(ctx context.Context, employeeID, email string) (*Employee, error)
	DeleteAttendance(ctx context.Context, employeePK uuid.UUID) (int64, error)
	Delete(ctx context.Context, employeePK uuid.UUID) error
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Omit("Attendances").Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	employees := make([]Employee, 0)
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Take(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// FindByEmployeeIDOrEmail returns the row holding employeeID when there is
// one, otherwise the row holding email.
func (r *repository) FindByEmployeeIDOrEmail(ctx context.Context, employeeID, email string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ? OR email = ?", employeeID, email).
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN employee_id = ? THEN 0 ELSE 1 END",
			Vars:               []any{employeeID},
			WithoutParentheses: true,
		}}).
		Take(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) DeleteAttendance(ctx context.Context, employeePK uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("employee_pk = ?", employeePK).
		Delete(&attendance.Attendance{})
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, employeePK uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", employeePK)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

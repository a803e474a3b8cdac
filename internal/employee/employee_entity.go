package employee

import (
	"time"

	"github.com/Prateek11234/hrms/internal/attendance"

	"github.com/google/uuid"
)

type Employee struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID string    `gorm:"column:employee_id;type:varchar(50);not null;uniqueIndex:uq_employees_employee_id"`
	FullName   string    `gorm:"column:full_name;type:varchar(120);not null"`
	Email      string    `gorm:"column:email;type:varchar(254);not null;uniqueIndex:uq_employees_email"`
	Department string    `gorm:"column:department;type:varchar(80);not null"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`

	// Only declared so migrations add fk_employees_attendances; never preloaded.
	Attendances []attendance.Attendance `gorm:"foreignKey:EmployeePK;references:ID"`
}

func (Employee) TableName() string {
	return "employees"
}

package attendance

import (
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type Attendance struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmployeePK     uuid.UUID `gorm:"column:employee_pk;type:uuid;not null;uniqueIndex:uq_attendance_employee_date,priority:1"`
	AttendanceDate time.Time `gorm:"column:attendance_date;type:date;not null;index;uniqueIndex:uq_attendance_employee_date,priority:2"`
	Status         Status    `gorm:"column:status;type:varchar(10);not null"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// employeeRef is the slice of the employees table attendance needs to
// resolve a public employee_id to its surrogate key.
type employeeRef struct {
	ID         uuid.UUID `gorm:"column:id"`
	EmployeeID string    `gorm:"column:employee_id"`
}

// DateOf truncates t to its calendar day, keeping t's own calendar, and
// returns it as midnight UTC so dates compare equal across drivers.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

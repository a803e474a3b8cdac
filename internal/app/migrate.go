package app

import (
	"github.com/Prateek11234/hrms/internal/attendance"
	"github.com/Prateek11234/hrms/internal/employee"

	"gorm.io/gorm"
)

// Migrate creates the tables, unique indexes and the attendance foreign key
// if they do not exist yet. Existing data is left untouched.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&employee.Employee{}, &attendance.Attendance{})
}

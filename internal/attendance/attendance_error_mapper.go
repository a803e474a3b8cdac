package attendance

import (
	"errors"
	"strings"

	attendanceerrors "github.com/Prateek11234/hrms/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

const uniqueEmployeeDate = "uq_attendance_employee_date"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrEmployeeNotFound
	}

	// (employee_pk, attendance_date) is the only unique key on the table, so
	// any unique violation is a duplicate mark.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return attendanceerrors.ErrAttendanceAlreadyMarked
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return attendanceerrors.ErrAttendanceAlreadyMarked
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return attendanceerrors.ErrAttendanceAlreadyMarked
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uniqueEmployeeDate) {
		return attendanceerrors.ErrAttendanceAlreadyMarked
	}

	return err
}

package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/Prateek11234/hrms/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

const (
	uniqueEmployeeID = "uq_employees_employee_id"
	uniqueEmail      = "uq_employees_email"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case uniqueEmployeeID:
			return employeeerrors.ErrEmployeeIDAlreadyExists
		case uniqueEmail:
			return employeeerrors.ErrEmailAlreadyExists
		}
		return employeeerrors.ErrDuplicateEmployee
	}

	// SQLite names the column, not the index:
	// "UNIQUE constraint failed: employees.email"
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		msg := sqliteErr.Error()
		switch {
		case strings.Contains(msg, "employees.employee_id"):
			return employeeerrors.ErrEmployeeIDAlreadyExists
		case strings.Contains(msg, "employees.email"):
			return employeeerrors.ErrEmailAlreadyExists
		}
		return employeeerrors.ErrDuplicateEmployee
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return employeeerrors.ErrDuplicateEmployee
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		switch {
		case strings.Contains(errMsg, uniqueEmployeeID):
			return employeeerrors.ErrEmployeeIDAlreadyExists
		case strings.Contains(errMsg, uniqueEmail):
			return employeeerrors.ErrEmailAlreadyExists
		}
		return employeeerrors.ErrDuplicateEmployee
	}

	return err
}

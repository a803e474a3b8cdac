package employeeerrors

import (
	"net/http"

	"github.com/Prateek11234/hrms/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee ID already exists",
		http.StatusConflict,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Email already exists",
		http.StatusConflict,
	)
	ErrDuplicateEmployee = apperror.New(
		apperror.CodeConflict,
		"Duplicate employee (employee_id or email)",
		http.StatusConflict,
	)
)

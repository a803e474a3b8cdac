package attendanceerrors

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
	ErrAttendanceAlreadyMarked = apperror.New(
		apperror.CodeConflict,
		"Attendance already marked for this date",
		http.StatusConflict,
	)
)

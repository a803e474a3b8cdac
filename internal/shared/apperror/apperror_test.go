package apperror_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/Prateek11234/hrms/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,max=5"`
	Email      string `json:"email" validate:"required,email"`
	Status     string `json:"status" validate:"omitempty,oneof=Present Absent"`
}

func TestValidate(t *testing.T) {
	t.Run("valid struct", func(t *testing.T) {
		err := apperror.Validate(sampleRequest{EmployeeID: "E1", Email: "a@b.co"})
		assert.NoError(t, err)
	})

	t.Run("every failing field is reported with its json name", func(t *testing.T) {
		err := apperror.Validate(sampleRequest{EmployeeID: "TOO-LONG", Email: "nope", Status: "Late"})

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)

		parts := strings.Split(appErr.Message, apperror.MessageSeparator)
		assert.Equal(t, []string{
			"employee_id: Employee Id must be at most 5 characters",
			"email: Email is not a valid email address",
			"status: Status must be one of: Present, Absent",
		}, parts)
	})

	t.Run("required", func(t *testing.T) {
		err := apperror.Validate(sampleRequest{})
		assert.Contains(t, err.Error(), "employee_id: Employee Id is required")
		assert.Contains(t, err.Error(), "email: Email is required")
	})
}

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps its status and message", func(t *testing.T) {
		httpErr := apperror.ToHTTP(apperror.New(apperror.CodeConflict, "Email already exists", http.StatusConflict))
		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, apperror.CodeConflict, httpErr.Code)
		assert.Equal(t, "Email already exists", httpErr.Message)
	})

	t.Run("plain error becomes internal without leaking text", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "connection refused")
	})
}

func TestWithCause(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := apperror.WithCause(apperror.ErrInvalidInput, cause)

	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, apperror.ErrInvalidInput.Message, apperror.ToHTTP(err).Message)
}

package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusUnprocessableEntity,
	)

	ErrTooManyRequests = New(
		CodeTooManyRequests,
		"Too many requests, slow down",
		http.StatusTooManyRequests,
	)

	ErrRequestInProgress = New(
		CodeProcessing,
		"A request with this idempotency key is still being processed",
		http.StatusConflict,
	)
)

// InvalidField builds a 422 error for a single field, rendered the same way
// validator failures are.
func InvalidField(field, message string) *AppError {
	return New(
		CodeInvalidInput,
		field+": "+message,
		http.StatusUnprocessableEntity,
	)
}

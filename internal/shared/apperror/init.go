package apperror

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Init prepares the shared validator. Calling it is optional; Validate
// initializes lazily.
func Init() {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their json name (e.g. `json:"employee_id"`)
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validate = v
	})
}

// Validate checks the `validate` tags of s and returns a 422 AppError
// describing every failing field, or nil.
func Validate(s any) error {
	Init()
	if err := validate.Struct(s); err != nil {
		return MapValidationError(err)
	}
	return nil
}

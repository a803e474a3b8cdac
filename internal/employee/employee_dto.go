package employee

import (
	"strings"
	"time"
)

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,min=1,max=50"`
	FullName   string `json:"full_name" validate:"required,min=1,max=120"`
	Email      string `json:"email" validate:"required,min=3,max=254,email"`
	Department string `json:"department" validate:"required,min=1,max=80"`
}

// Normalize trims every field and lower-cases the email so uniqueness is
// case-insensitive.
func (r *CreateEmployeeRequest) Normalize() {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Department = strings.TrimSpace(r.Department)
}

type EmployeeResponse struct {
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

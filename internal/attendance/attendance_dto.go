package attendance

import (
	"strings"
	"time"

	"github.com/Prateek11234/hrms/internal/shared/apperror"
)

type MarkAttendanceRequest struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Status string `json:"status" validate:"required,oneof=Present Absent"`
}

func (r *MarkAttendanceRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	r.Status = strings.TrimSpace(r.Status)
}

// ListAttendanceQuery holds the optional filters of an attendance listing.
// Empty fields are not applied.
type ListAttendanceQuery struct {
	StartDate string `form:"start_date" json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Status    string `form:"status" json:"status" validate:"omitempty,oneof=Present Absent"`
}

func (q *ListAttendanceQuery) Normalize() {
	q.StartDate = strings.TrimSpace(q.StartDate)
	q.EndDate = strings.TrimSpace(q.EndDate)
	q.Status = strings.TrimSpace(q.Status)
}

type AttendanceResponse struct {
	Date      string    `json:"date"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (q ListAttendanceQuery) toFilter() (Filter, error) {
	var f Filter
	if q.StartDate != "" {
		d, err := ParseDate(q.StartDate)
		if err != nil {
			return Filter{}, apperror.InvalidField("start_date", "Start Date must be a valid calendar date (YYYY-MM-DD)")
		}
		f.StartDate = &d
	}
	if q.EndDate != "" {
		d, err := ParseDate(q.EndDate)
		if err != nil {
			return Filter{}, apperror.InvalidField("end_date", "End Date must be a valid calendar date (YYYY-MM-DD)")
		}
		f.EndDate = &d
	}
	if q.Status != "" {
		st, err := ParseStatus(q.Status)
		if err != nil {
			return Filter{}, apperror.InvalidField("status", "Status must be one of: Present, Absent")
		}
		f.Status = &st
	}
	return f, nil
}

package dashboard_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Prateek11234/hrms/internal/dashboard"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeDashboardService struct {
	SummaryFn func(ctx context.Context) (dashboard.DashboardResponse, error)
}

func (f *fakeDashboardService) Summary(ctx context.Context) (dashboard.DashboardResponse, error) {
	return f.SummaryFn(ctx)
}

func setupRouter(svc dashboard.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	dashboard.RegisterRoutes(r.Group(""), dashboard.NewHandler(svc))
	return r
}

func TestDashboardHandler_Summary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := setupRouter(&fakeDashboardService{
			SummaryFn: func(ctx context.Context) (dashboard.DashboardResponse, error) {
				return dashboard.DashboardResponse{
					EmployeeCount:     3,
					AttendanceRecords: 8,
					TodayPresent:      2,
					TodayAbsent:       1,
					TodayDate:         "2024-03-10",
				}, nil
			},
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true,"data":{
			"employee_count":3,"attendance_records":8,
			"today_present":2,"today_absent":1,"today_date":"2024-03-10"}}`, w.Body.String())
	})

	t.Run("storage failure", func(t *testing.T) {
		r := setupRouter(&fakeDashboardService{
			SummaryFn: func(ctx context.Context) (dashboard.DashboardResponse, error) {
				return dashboard.DashboardResponse{}, errors.New("connection reset")
			},
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"INTERNAL_ERROR"`)
	})
}

package attendance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Prateek11234/hrms/internal/attendance"
	attendanceerrors "github.com/Prateek11234/hrms/internal/attendance/errors"
	attendanceMock "github.com/Prateek11234/hrms/internal/attendance/mock"
	"github.com/Prateek11234/hrms/internal/shared/apperror"
	"github.com/Prateek11234/hrms/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	service attendance.Service
	repo    *attendanceMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	repo := attendanceMock.NewMockRepository(ctrl)
	svc := attendance.NewService(gdb, repo)

	t.Cleanup(func() {
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	return &serviceDeps{
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestAttendanceService_Mark(t *testing.T) {
	employeePK := uuid.New()
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := contextutil.WithRequestID(context.Background(), "REQ-1")

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindEmployeePK(ctx, "E1").Return(employeePK, nil)
		deps.repo.EXPECT().FindByEmployeeAndDate(ctx, employeePK, day).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *attendance.Attendance) error {
				assert.NotEqual(t, uuid.Nil, a.ID)
				assert.Equal(t, employeePK, a.EmployeePK)
				assert.Equal(t, day, a.AttendanceDate)
				assert.Equal(t, attendance.StatusPresent, a.Status)
				a.CreatedAt = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
				return nil
			})

		resp, err := deps.service.Mark(ctx, " E1 ", attendance.MarkAttendanceRequest{
			Date:   " 2024-01-15 ",
			Status: "Present",
		})

		require.NoError(t, err)
		assert.Equal(t, "2024-01-15", resp.Date)
		assert.Equal(t, attendance.StatusPresent, resp.Status)
		assert.False(t, resp.CreatedAt.IsZero())
	})

	t.Run("validation error lists every field", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Mark(context.Background(), "E1", attendance.MarkAttendanceRequest{
			Date:   "15/01/2024",
			Status: "Late",
		})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 422, appErr.HTTPStatus)
		assert.Equal(t,
			"date: Date must be a date formatted as YYYY-MM-DD | status: Status must be one of: Present, Absent",
			appErr.Message,
		)
	})

	t.Run("employee not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindEmployeePK(ctx, "NOPE").Return(uuid.Nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Mark(ctx, "NOPE", attendance.MarkAttendanceRequest{Date: "2024-01-15", Status: "Absent"})

		assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeNotFound)
	})

	t.Run("already marked regardless of status", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindEmployeePK(ctx, "E1").Return(employeePK, nil)
		deps.repo.EXPECT().
			FindByEmployeeAndDate(ctx, employeePK, day).
			Return(&attendance.Attendance{EmployeePK: employeePK, AttendanceDate: day, Status: attendance.StatusPresent}, nil)

		_, err := deps.service.Mark(ctx, "E1", attendance.MarkAttendanceRequest{Date: "2024-01-15", Status: "Absent"})

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceAlreadyMarked)
	})

	t.Run("unique violation on insert maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindEmployeePK(ctx, "E1").Return(employeePK, nil)
		deps.repo.EXPECT().FindByEmployeeAndDate(ctx, employeePK, day).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_employee_date"})

		_, err := deps.service.Mark(ctx, "E1", attendance.MarkAttendanceRequest{Date: "2024-01-15", Status: "Present"})

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceAlreadyMarked)
	})

	t.Run("storage error is returned as is", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		boom := errors.New("disk I/O error")

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindEmployeePK(ctx, "E1").Return(employeePK, nil)
		deps.repo.EXPECT().FindByEmployeeAndDate(ctx, employeePK, day).Return(nil, boom)

		_, err := deps.service.Mark(ctx, "E1", attendance.MarkAttendanceRequest{Date: "2024-01-15", Status: "Present"})

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 500, apperror.ToHTTP(err).Status)
	})
}

func TestAttendanceService_List(t *testing.T) {
	employeePK := uuid.New()

	t.Run("filters compose", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		deps.repo.EXPECT().FindEmployeePK(ctx, "E1").Return(employeePK, nil)
		deps.repo.EXPECT().
			FindAllByEmployee(ctx, employeePK, gomock.Any()).
			DoAndReturn(func(ctx context.Context, pk uuid.UUID, f attendance.Filter) ([]attendance.Attendance, error) {
				require.NotNil(t, f.StartDate)
				require.NotNil(t, f.EndDate)
				require.NotNil(t, f.Status)
				assert.Equal(t, "2024-01-10", attendance.FormatDate(*f.StartDate))
				assert.Equal(t, "2024-01-20", attendance.FormatDate(*f.EndDate))
				assert.Equal(t, attendance.StatusAbsent, *f.Status)
				return []attendance.Attendance{
					{AttendanceDate: time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC), Status: attendance.StatusAbsent},
					{AttendanceDate: time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), Status: attendance.StatusAbsent},
				}, nil
			})

		resp, err := deps.service.List(ctx, "E1", attendance.ListAttendanceQuery{
			StartDate: "2024-01-10",
			EndDate:   "2024-01-20",
			Status:    "Absent",
		})

		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "2024-01-18", resp[0].Date)
		assert.Equal(t, "2024-01-11", resp[1].Date)
	})

	t.Run("no filters yields empty slice", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		deps.repo.EXPECT().FindEmployeePK(ctx, "E1").Return(employeePK, nil)
		deps.repo.EXPECT().FindAllByEmployee(ctx, employeePK, attendance.Filter{}).Return([]attendance.Attendance{}, nil)

		resp, err := deps.service.List(ctx, "E1", attendance.ListAttendanceQuery{})

		require.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})

	t.Run("reversed range passes both bounds through", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		deps.repo.EXPECT().FindEmployeePK(ctx, "E1").Return(employeePK, nil)
		deps.repo.EXPECT().
			FindAllByEmployee(ctx, employeePK, gomock.Any()).
			DoAndReturn(func(ctx context.Context, pk uuid.UUID, f attendance.Filter) ([]attendance.Attendance, error) {
				require.NotNil(t, f.StartDate)
				require.NotNil(t, f.EndDate)
				assert.Equal(t, "2024-02-01", attendance.FormatDate(*f.StartDate))
				assert.Equal(t, "2024-01-01", attendance.FormatDate(*f.EndDate))
				return []attendance.Attendance{}, nil
			})

		resp, err := deps.service.List(ctx, "E1", attendance.ListAttendanceQuery{
			StartDate: "2024-02-01",
			EndDate:   "2024-01-01",
		})

		require.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})

	t.Run("malformed filter", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.List(context.Background(), "E1", attendance.ListAttendanceQuery{EndDate: "yesterday"})

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 422, httpErr.Status)
		assert.Contains(t, httpErr.Message, "end_date:")
	})

	t.Run("employee not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		deps.repo.EXPECT().FindEmployeePK(ctx, "NOPE").Return(uuid.Nil, gorm.ErrRecordNotFound)

		_, err := deps.service.List(ctx, "NOPE", attendance.ListAttendanceQuery{})

		assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeNotFound)
	})
}

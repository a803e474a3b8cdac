package dashboard_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Prateek11234/hrms/internal/attendance"
	"github.com/Prateek11234/hrms/internal/dashboard"
	dashboardMock "github.com/Prateek11234/hrms/internal/dashboard/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestDashboardService_Summary(t *testing.T) {
	// late evening in a zone east of UTC still counts as that local day
	loc := time.FixedZone("UTC+9", 9*60*60)
	now := time.Date(2024, 3, 10, 23, 30, 0, 0, loc)
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := dashboardMock.NewMockRepository(ctrl)
		svc := dashboard.NewServiceWithClock(repo, fixedClock(now))

		repo.EXPECT().CountEmployees(gomock.Any()).Return(int64(3), nil)
		repo.EXPECT().CountAttendance(gomock.Any()).Return(int64(8), nil)
		repo.EXPECT().
			CountAttendanceByStatusOn(gomock.Any(), today).
			Return(map[attendance.Status]int64{attendance.StatusPresent: 2, attendance.StatusAbsent: 1}, nil)

		resp, err := svc.Summary(context.Background())

		require.NoError(t, err)
		assert.Equal(t, dashboard.DashboardResponse{
			EmployeeCount:     3,
			AttendanceRecords: 8,
			TodayPresent:      2,
			TodayAbsent:       1,
			TodayDate:         "2024-03-10",
		}, resp)
	})

	t.Run("empty store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := dashboardMock.NewMockRepository(ctrl)
		svc := dashboard.NewServiceWithClock(repo, fixedClock(now))

		repo.EXPECT().CountEmployees(gomock.Any()).Return(int64(0), nil)
		repo.EXPECT().CountAttendance(gomock.Any()).Return(int64(0), nil)
		repo.EXPECT().CountAttendanceByStatusOn(gomock.Any(), today).Return(map[attendance.Status]int64{}, nil)

		resp, err := svc.Summary(context.Background())

		require.NoError(t, err)
		assert.Zero(t, resp.TodayPresent)
		assert.Zero(t, resp.TodayAbsent)
		assert.Equal(t, "2024-03-10", resp.TodayDate)
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := dashboardMock.NewMockRepository(ctrl)
		svc := dashboard.NewServiceWithClock(repo, fixedClock(now))
		boom := errors.New("no such table: employees")

		repo.EXPECT().CountEmployees(gomock.Any()).Return(int64(0), boom)

		_, err := svc.Summary(context.Background())

		assert.ErrorIs(t, err, boom)
	})
}

// blockingRepo holds CountEmployees open until release is closed so
// concurrent callers pile up on the same flight.
type blockingRepo struct {
	calls   atomic.Int32
	entered chan struct{}
	release chan struct{}
}

func (r *blockingRepo) CountEmployees(ctx context.Context) (int64, error) {
	if r.calls.Add(1) == 1 {
		close(r.entered)
	}
	<-r.release
	return 5, nil
}

func (r *blockingRepo) CountAttendance(ctx context.Context) (int64, error) {
	return 7, nil
}

func (r *blockingRepo) CountAttendanceByStatusOn(ctx context.Context, date time.Time) (map[attendance.Status]int64, error) {
	return map[attendance.Status]int64{attendance.StatusPresent: 4}, nil
}

func TestDashboardService_SummaryCoalescesConcurrentCalls(t *testing.T) {
	repo := &blockingRepo{entered: make(chan struct{}), release: make(chan struct{})}
	svc := dashboard.NewServiceWithClock(repo, fixedClock(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)))

	const callers = 8
	var wg sync.WaitGroup
	results := make([]dashboard.DashboardResponse, callers)

	wg.Add(1)
	go func() {
		defer wg.Done()
		resp, err := svc.Summary(context.Background())
		assert.NoError(t, err)
		results[0] = resp
	}()
	<-repo.entered

	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := svc.Summary(context.Background())
			assert.NoError(t, err)
			results[i] = resp
		}(i)
	}
	// give the followers time to join the flight before it lands
	time.Sleep(50 * time.Millisecond)
	close(repo.release)
	wg.Wait()

	assert.Equal(t, int32(1), repo.calls.Load())
	for _, r := range results {
		assert.Equal(t, int64(5), r.EmployeeCount)
		assert.Equal(t, int64(4), r.TodayPresent)
	}

	// nothing is cached once the flight has completed
	_, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), repo.calls.Load())
}

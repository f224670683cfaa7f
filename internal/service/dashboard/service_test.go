package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkline/studio/internal/domain"
)

type fakeAppointments struct {
	counts  []int
	filters []domain.AppointmentsFilter
	err     error
}

func (f *fakeAppointments) Count(_ context.Context, filter domain.AppointmentsFilter) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.filters = append(f.filters, filter)
	return f.counts[len(f.filters)-1], nil
}

type fakeSubmissions struct{ n int }

func (f fakeSubmissions) CountByStatus(_ context.Context, status domain.SubmissionStatus) (int, error) {
	if status != domain.SubmissionNew {
		return 0, errors.New("unexpected status")
	}
	return f.n, nil
}

type fakeRevenue struct {
	total  float64
	filter domain.TransactionsFilter
}

func (f *fakeRevenue) SumAmount(_ context.Context, filter domain.TransactionsFilter) (float64, error) {
	f.filter = filter
	return f.total, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Get(t *testing.T) {
	appointments := &fakeAppointments{counts: []int{3, 5, 9}}
	revenue := &fakeRevenue{total: 1250}
	svc := NewService(appointments, fakeSubmissions{n: 2}, revenue, time.UTC, nopLogger{})
	svc.timeProvider = fixedTime{now: time.Date(2026, 10, 14, 16, 45, 0, 0, time.UTC)}

	resp, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &SummaryResponse{
		Date:                 "2026-10-14",
		TodayAppointments:    3,
		PendingAppointments:  5,
		UpcomingAppointments: 9,
		NewSubmissions:       2,
		MonthRevenue:         1250,
	}, resp)

	require.Len(t, appointments.filters, 3)
	assert.True(t, appointments.filters[0].IsSingleDay())
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), *appointments.filters[2].EndDate)

	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), *revenue.filter.From)
	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), *revenue.filter.To)
}

func TestService_Get_UsesStudioTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	appointments := &fakeAppointments{counts: []int{0, 0, 0}}
	svc := NewService(appointments, fakeSubmissions{}, &fakeRevenue{}, loc, nopLogger{})
	// 02:00 UTC on the 15th is still the 14th in New York
	svc.timeProvider = fixedTime{now: time.Date(2026, 10, 15, 2, 0, 0, 0, time.UTC)}

	resp, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2026-10-14", resp.Date)
}

func TestService_Get_Error(t *testing.T) {
	svc := NewService(&fakeAppointments{err: errors.New("db down")}, fakeSubmissions{}, &fakeRevenue{}, time.UTC, nopLogger{})

	_, err := svc.Get(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}

package create_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkline/studio/internal/domain"
	appointmentRepo "github.com/inkline/studio/internal/infra/storage/appointment"
	"github.com/inkline/studio/internal/integrations/mailer"
	"github.com/inkline/studio/pkg/ptr"
)

type fakeRepo struct {
	existing  []*domain.Appointment
	listErr   error
	createErr error
	created   []*domain.Appointment
	filters   []domain.AppointmentsFilter
}

func (f *fakeRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.filters = append(f.filters, filter)
	return f.existing, f.listErr
}

func (f *fakeRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	a.ID = int64(len(f.created) + 1)
	a.CreatedAt = time.Now()
	f.created = append(f.created, a)
	return a, nil
}

type fakeTx struct {
	calls int
}

func (f *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeNotifier struct {
	notices []mailer.BookingNotice
	err     error
}

func (f *fakeNotifier) NotifyBooking(_ context.Context, n mailer.BookingNotice) error {
	f.notices = append(f.notices, n)
	return f.err
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Wednesday 2026-10-14 13:10 UTC
var now = time.Date(2026, 10, 14, 13, 10, 0, 0, time.UTC)

var (
	today    = time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	friday   = time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	repo     *fakeRepo
	tx       *fakeTx
	notifier *fakeNotifier
	uc       *UseCase
}

func newFixture(notice time.Duration) *fixture {
	f := &fixture{repo: &fakeRepo{}, tx: &fakeTx{}, notifier: &fakeNotifier{}}
	f.uc = NewUseCase(f.repo, f.tx, f.notifier, time.UTC, notice, nopLogger{})
	f.uc.timeProvider = fixedTime{now: now}
	return f
}

func validRequest() *Request {
	return &Request{
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		CustomerPhone:   "+15550100",
		ServiceType:     domain.ServiceCustom,
		Date:            friday,
		StartTime:       "14:00",
		DurationMinutes: 90,
		Description:     ptr.Ptr("fine line rose"),
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(0)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, 1, f.tx.calls)

	require.Len(t, f.repo.filters, 1)
	assert.True(t, f.repo.filters[0].IsSingleDay())
	assert.Equal(t, domain.OccupyingStatuses, f.repo.filters[0].Statuses)

	require.Len(t, f.notifier.notices, 1)
	assert.Equal(t, "ada@example.com", f.notifier.notices[0].CustomerEmail)
	assert.Equal(t, "fine line rose", f.notifier.notices[0].Description)
}

func TestExecute_DefaultDuration(t *testing.T) {
	f := newFixture(0)
	req := validRequest()
	req.DurationMinutes = 0

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDurationMinutes, resp.DurationMinutes)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"missing name", func(r *Request) { r.CustomerName = " " }, ErrInvalidInput},
		{"missing date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidInput},
		{"unknown service", func(r *Request) { r.ServiceType = "piercing" }, ErrInvalidInput},
		{"odd duration", func(r *Request) { r.DurationMinutes = 45 }, ErrInvalidInput},
		{"too long", func(r *Request) { r.DurationMinutes = 510 }, ErrInvalidInput},
		{"off grid start", func(r *Request) { r.StartTime = "14:15" }, ErrInvalidTimeSlot},
		{"before opening", func(r *Request) { r.StartTime = "10:30" }, ErrInvalidTimeSlot},
		{"ends after last slot", func(r *Request) { r.StartTime = "18:30"; r.DurationMinutes = 90 }, ErrInvalidTimeSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(0)
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.tx.calls)
			assert.Empty(t, f.repo.created)
		})
	}
}

func TestExecute_NilRequest(t *testing.T) {
	f := newFixture(0)

	_, err := f.uc.Execute(context.Background(), nil)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DateInPast(t *testing.T) {
	f := newFixture(0)
	req := validRequest()
	req.Date = today.AddDate(0, 0, -1)

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrDateInPast)
	assert.Zero(t, f.tx.calls)
}

func TestExecute_TodayRespectsNotice(t *testing.T) {
	f := newFixture(2 * time.Hour)
	req := validRequest()
	req.Date = today
	req.StartTime = "15:00"
	req.DurationMinutes = 30

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooLateToBook)

	req.StartTime = "15:30"
	_, err = f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_OverlapIsRejected(t *testing.T) {
	f := newFixture(0)
	f.repo.existing = []*domain.Appointment{
		{StartTime: "15:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, f.repo.created)
	assert.Empty(t, f.notifier.notices)
}

func TestExecute_CancelledDoesNotBlock(t *testing.T) {
	f := newFixture(0)
	f.repo.existing = []*domain.Appointment{
		{StartTime: "14:00", DurationMinutes: 90, Status: domain.StatusCancelled},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}

func TestExecute_WeekendOutsideHours(t *testing.T) {
	f := newFixture(0)
	req := validRequest()
	req.Date = saturday
	req.StartTime = "16:30"
	req.DurationMinutes = 60

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_ConcurrentInsertMapsToNotAvailable(t *testing.T) {
	f := newFixture(0)
	f.repo.createErr = fmt.Errorf("%w: Create - 2026-10-16 14:00", appointmentRepo.ErrSlotTaken)

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_RepositoryErrorIsInternal(t *testing.T) {
	f := newFixture(0)
	f.repo.listErr = errors.New("connection reset")

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_NotificationFailureDoesNotFail(t *testing.T) {
	f := newFixture(0)
	f.notifier.err = errors.New("smtp down")

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
}

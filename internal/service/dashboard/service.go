package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/inkline/studio/internal/domain"
)

const upcomingDays = 7

// scheduledStatuses записи, которые считаются в расписании дня
var scheduledStatuses = []domain.AppointmentStatus{
	domain.StatusPending,
	domain.StatusConfirmed,
	domain.StatusCompleted,
}

// Service сервис сводки админки
type Service struct {
	appointments AppointmentCounter
	submissions  SubmissionCounter
	revenue      RevenueCalculator
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса сводки
func NewService(
	appointments AppointmentCounter,
	submissions SubmissionCounter,
	revenue RevenueCalculator,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		appointments: appointments,
		submissions:  submissions,
		revenue:      revenue,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Get собирает сводку на текущий день студии
func (s *Service) Get(ctx context.Context) (*SummaryResponse, error) {
	now := s.timeProvider.Now().In(s.location)
	today := domain.NormalizeDate(now)
	lastUpcoming := today.AddDate(0, 0, upcomingDays-1)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, s.location)
	nextMonth := monthStart.AddDate(0, 1, 0)

	var summary domain.DashboardSummary
	var err error

	// 1. Записи на сегодня
	summary.TodayAppointments, err = s.appointments.Count(ctx, domain.AppointmentsFilter{
		StartDate: &today,
		EndDate:   &today,
		Statuses:  scheduledStatuses,
	})
	if err != nil {
		return nil, s.fail("count today's appointments", err)
	}

	// 2. Ожидают подтверждения
	summary.PendingAppointments, err = s.appointments.Count(ctx, domain.AppointmentsFilter{
		Statuses: []domain.AppointmentStatus{domain.StatusPending},
	})
	if err != nil {
		return nil, s.fail("count pending appointments", err)
	}

	// 3. Ближайшие 7 дней, включая сегодня
	summary.UpcomingAppointments, err = s.appointments.Count(ctx, domain.AppointmentsFilter{
		StartDate: &today,
		EndDate:   &lastUpcoming,
		Statuses:  domain.OccupyingStatuses,
	})
	if err != nil {
		return nil, s.fail("count upcoming appointments", err)
	}

	// 4. Новые обращения
	summary.NewSubmissions, err = s.submissions.CountByStatus(ctx, domain.SubmissionNew)
	if err != nil {
		return nil, s.fail("count new submissions", err)
	}

	// 5. Выручка за месяц
	summary.MonthRevenue, err = s.revenue.SumAmount(ctx, domain.TransactionsFilter{
		From: &monthStart,
		To:   &nextMonth,
	})
	if err != nil {
		return nil, s.fail("sum month revenue", err)
	}

	s.logger.Info("Dashboard: date=%s, today=%d, pending=%d, upcoming=%d, submissions=%d",
		today.Format(domain.DateFormat), summary.TodayAppointments, summary.PendingAppointments,
		summary.UpcomingAppointments, summary.NewSubmissions)

	return &SummaryResponse{
		Date:                 today.Format(domain.DateFormat),
		TodayAppointments:    summary.TodayAppointments,
		PendingAppointments:  summary.PendingAppointments,
		UpcomingAppointments: summary.UpcomingAppointments,
		NewSubmissions:       summary.NewSubmissions,
		MonthRevenue:         summary.MonthRevenue,
	}, nil
}

func (s *Service) fail(step string, err error) error {
	s.logger.Error("Dashboard: failed to %s: %v", step, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, step, err)
}

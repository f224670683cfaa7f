package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/inkline/studio/internal/domain"
)

// UseCase use case для получения свободных слотов на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	location        *time.Location
	minNotice       time.Duration
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// location - часовой пояс студии, minNotice - минимальное время до начала сеанса
func NewUseCase(
	appointmentRepo AppointmentRepository,
	location *time.Location,
	minNotice time.Duration,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		location:        location,
		minNotice:       minNotice,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Ошибка репозитория всегда возвращается как ErrInternal, никогда не как пустой список
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	y, m, d := req.Date.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, uc.location)
	now := uc.timeProvider.Now().In(uc.location)

	uc.logger.Info("GetAvailability: date=%s", date.Format(domain.DateFormat))

	// 1. Дата в прошлом
	if domain.IsPastDate(date, now) {
		uc.logger.Warn("GetAvailability: date %s is in the past", date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 2. Получаем записи, которые занимают слоты
	appointments, err := uc.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		StartDate: &date,
		EndDate:   &date,
		Statuses:  domain.OccupyingStatuses,
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list appointments for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 3. Считаем свободные слоты
	slots := domain.BookableSlots(date, now, uc.minNotice, appointments)

	uc.logger.Info("GetAvailability: date=%s, occupying=%d, available=%d",
		date.Format(domain.DateFormat), len(appointments), len(slots))

	return &Response{
		Date:  date,
		Slots: slots,
	}, nil
}

package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inkline/studio/internal/domain"
	appointmentRepo "github.com/inkline/studio/internal/infra/storage/appointment"
	"github.com/inkline/studio/internal/integrations/mailer"
	"github.com/inkline/studio/pkg/ptr"
)

// UseCase use case для создания записи на сеанс
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	notifier        Notifier
	location        *time.Location
	minNotice       time.Duration
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	notifier Notifier,
	location *time.Location,
	minNotice time.Duration,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		notifier:        notifier,
		location:        location,
		minNotice:       minNotice,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка слотов и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req != nil && req.DurationMinutes == 0 {
		req.DurationMinutes = domain.DefaultDurationMinutes
	}

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	y, m, d := req.Date.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, uc.location)
	now := uc.timeProvider.Now().In(uc.location)

	uc.logger.Info("CreateBooking: email=%s, service=%s, date=%s, time=%s, duration=%d",
		req.CustomerEmail, req.ServiceType, date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 2. Дата в прошлом
	if domain.IsPastDate(date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 3. Минимальное время до начала сеанса
	earliest, ok := domain.EarliestStart(date, now, uc.minNotice)
	if !ok || (!earliest.IsZero() && req.StartTime.IsBefore(earliest)) {
		uc.logger.Warn("CreateBooking: %s %s is too late to book", date.Format(domain.DateFormat), req.StartTime)
		return nil, ErrTooLateToBook
	}

	var result *domain.Appointment

	// 4. Проверка слотов и создание записи в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Записи на дату, которые занимают слоты (FOR UPDATE)
		appointments, err := uc.appointmentRepo.List(txCtx, domain.AppointmentsFilter{
			StartDate: &date,
			EndDate:   &date,
			Statuses:  domain.OccupyingStatuses,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list appointments: %v", err)
			return fmt.Errorf("%w: failed to list appointments: %w", ErrInternal, err)
		}

		// 4.2. Все слоты сеанса должны быть свободны
		available := domain.AvailableSlots(date, appointments)
		if !domain.FitsInto(available, req.StartTime, req.DurationMinutes) {
			uc.logger.Warn("CreateBooking: %s %s for %d minutes is not available",
				date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)
			return ErrSlotNotAvailable
		}

		// 4.3. Создаем запись в статусе pending
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			CustomerName:      req.CustomerName,
			CustomerEmail:     req.CustomerEmail,
			CustomerPhone:     req.CustomerPhone,
			ServiceType:       req.ServiceType,
			Date:              date,
			StartTime:         req.StartTime,
			DurationMinutes:   req.DurationMinutes,
			Status:            domain.StatusPending,
			Placement:         req.Placement,
			Size:              req.Size,
			Description:       req.Description,
			ReferenceImageURL: req.ReferenceImageURL,
		})
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s %s taken concurrently", date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			// %w сохраняет ошибку драйвера для повтора транзакции
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created appointment id=%d", result.ID)

	// 5. Уведомления после коммита, ошибка только логируется
	if uc.notifier != nil {
		if err := uc.notifier.NotifyBooking(ctx, toNotice(result)); err != nil {
			uc.logger.Error("CreateBooking: failed to send notifications for id=%d: %v", result.ID, err)
		}
	}

	return &Response{
		ID:              result.ID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceType:     string(result.ServiceType),
		CreatedAt:       result.CreatedAt,
	}, nil
}

func toNotice(a *domain.Appointment) mailer.BookingNotice {
	return mailer.BookingNotice{
		ID:              a.ID,
		CustomerName:    a.CustomerName,
		CustomerEmail:   a.CustomerEmail,
		CustomerPhone:   a.CustomerPhone,
		ServiceType:     string(a.ServiceType),
		Date:            a.Date,
		StartTime:       a.StartTime,
		DurationMinutes: a.DurationMinutes,
		Description:     ptr.Value(a.Description),
	}
}

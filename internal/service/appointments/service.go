package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/inkline/studio/internal/domain"
	appointmentRepo "github.com/inkline/studio/internal/infra/storage/appointment"
	"github.com/inkline/studio/internal/service/appointments/models"
)

// Service сервис для работы с записями в админке
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// List получает записи с фильтрацией по дате, периоду, статусу и клиенту
//
// Примеры использования:
// - Записи на дату: Date = "2026-10-14"
// - Записи за период: From и To
// - Только ожидающие подтверждения: Status = "pending"
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus меняет статус записи по графу переходов.
// Чтение и обновление выполняются в одной транзакции с блокировкой строки
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	next, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for appointment id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var updated *domain.Appointment

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Получаем запись (FOR UPDATE)
		appointment, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - get appointment: %v", ErrInternal, err)
		}

		// 2. Проверяем переход
		if !appointment.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointment.Status, next)
		}

		// 3. Обновляем статус
		if err := s.appointmentRepo.UpdateStatus(txCtx, id, next); err != nil {
			switch {
			case errors.Is(err, appointmentRepo.ErrSlotTaken):
				return ErrSlotTaken
			case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - update: %v", ErrInternal, err)
		}

		appointment.Status = next
		updated = appointment
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrAppointmentNotFound), errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrSlotTaken):
			s.logger.Warn("UpdateStatus: appointment id=%d: %v", id, err)
			return nil, err
		case errors.Is(err, ErrInternal):
			s.logger.Error("UpdateStatus: appointment id=%d: %v", id, err)
			return nil, err
		}
		s.logger.Error("UpdateStatus: transaction failed for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - transaction: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%d is now %s", id, next)
	return models.FromDomainAppointment(updated), nil
}

// ListCustomers получает клиентов, сгруппированных по email
func (s *Service) ListCustomers(ctx context.Context) (*models.CustomerListResponse, error) {
	customers, err := s.appointmentRepo.ListCustomers(ctx)
	if err != nil {
		s.logger.Error("ListCustomers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCustomers - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCustomers: fetched %d customers", len(customers))
	return models.FromDomainCustomerList(customers), nil
}

package transactions

import (
	"context"
	"errors"
	"fmt"
	"time"

	transactionRepo "github.com/inkline/studio/internal/infra/storage/transaction"
	"github.com/inkline/studio/internal/service/transactions/models"
)

// Service сервис для учёта платежей
type Service struct {
	transactionRepo TransactionRepository
	location        *time.Location
	logger          Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(transactionRepo TransactionRepository, location *time.Location, logger Logger) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		transactionRepo: transactionRepo,
		location:        location,
		logger:          logger,
	}
}

// List получает платежи за период
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.TransactionListResponse, error) {
	filter, err := req.ToDomainFilter(s.location)
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.transactionRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d transactions", len(list))
	return models.FromDomainTransactionList(list), nil
}

// Create записывает платёж по записи
func (s *Service) Create(ctx context.Context, req *models.CreateRequest) (*models.TransactionResponse, error) {
	t := req.ToDomain()

	if t.Amount <= 0 || !t.Kind.IsValid() || !t.Method.IsValid() || len(t.Currency) != 3 {
		s.logger.Warn("Create: invalid transaction for appointment id=%d", req.AppointmentID)
		return nil, fmt.Errorf("%w: amount, kind, method or currency", ErrInvalidInput)
	}

	created, err := s.transactionRepo.Create(ctx, t)
	if err != nil {
		if errors.Is(err, transactionRepo.ErrUnknownAppointment) {
			s.logger.Warn("Create: appointment id=%d does not exist", req.AppointmentID)
			return nil, ErrUnknownAppointment
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: recorded %s %.2f %s for appointment id=%d",
		created.Kind, created.Amount, created.Currency, created.AppointmentID)
	return models.FromDomainTransaction(created), nil
}

package submissions

import (
	"context"
	"errors"
	"fmt"

	"github.com/inkline/studio/internal/domain"
	submissionRepo "github.com/inkline/studio/internal/infra/storage/submission"
	"github.com/inkline/studio/internal/service/submissions/models"
)

// Service сервис для работы с обращениями
type Service struct {
	submissionRepo SubmissionRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса обращений
func NewService(submissionRepo SubmissionRepository, logger Logger) *Service {
	return &Service{
		submissionRepo: submissionRepo,
		logger:         logger,
	}
}

// List получает обращения, опционально по статусу
func (s *Service) List(ctx context.Context, status *string) (*models.SubmissionListResponse, error) {
	var domainStatus *domain.SubmissionStatus
	if status != nil {
		st, err := models.ToDomainStatus(*status)
		if err != nil {
			s.logger.Warn("List: invalid status=%q", *status)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		domainStatus = &st
	}

	list, err := s.submissionRepo.List(ctx, domainStatus)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d submissions", len(list))
	return models.FromDomainSubmissionList(list), nil
}

// UpdateStatus меняет статус обращения
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	status, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for submission id=%d", req.Status, id)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.submissionRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, submissionRepo.ErrSubmissionNotFound) {
			s.logger.Warn("UpdateStatus: submission id=%d not found", id)
			return ErrSubmissionNotFound
		}
		s.logger.Error("UpdateStatus: repository error for submission id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: submission id=%d is now %s", id, status)
	return nil
}

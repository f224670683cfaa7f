package submit_contact

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/inkline/studio/internal/domain"
	"github.com/inkline/studio/internal/integrations/mailer"
	"github.com/inkline/studio/pkg/ptr"
)

// UseCase use case для сохранения обращения
type UseCase struct {
	submissionRepo SubmissionRepository
	notifier       Notifier
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(submissionRepo SubmissionRepository, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		submissionRepo: submissionRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

// Execute сохраняет обращение и уведомляет студию
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitContact: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("SubmitContact: email=%s", req.Email)

	// 2. Сохраняем обращение со статусом new
	created, err := uc.submissionRepo.Create(ctx, &domain.ContactSubmission{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  domain.SubmissionNew,
	})
	if err != nil {
		uc.logger.Error("SubmitContact: failed to create submission: %v", err)
		return nil, fmt.Errorf("%w: failed to create submission: %v", ErrInternal, err)
	}

	// 3. Уведомление студии, ошибка только логируется
	if uc.notifier != nil {
		notice := mailer.ContactNotice{
			Name:    created.Name,
			Email:   created.Email,
			Phone:   ptr.Value(created.Phone),
			Subject: ptr.Value(created.Subject),
			Message: created.Message,
		}
		if err := uc.notifier.NotifyContact(ctx, notice); err != nil {
			uc.logger.Error("SubmitContact: failed to notify studio about id=%d: %v", created.ID, err)
		}
	}

	uc.logger.Info("SubmitContact: saved submission id=%d", created.ID)

	return &Response{
		ID:        created.ID,
		Status:    string(created.Status),
		CreatedAt: created.CreatedAt,
	}, nil
}

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}
	if req.Subject != nil && utf8.RuneCountInString(*req.Subject) > domain.MaxSubjectLength {
		return fmt.Errorf("%w: subject longer than %d characters", ErrInvalidInput, domain.MaxSubjectLength)
	}
	n := utf8.RuneCountInString(strings.TrimSpace(req.Message))
	if n < domain.MinMessageLength || n > domain.MaxMessageLength {
		return fmt.Errorf("%w: message must be %d to %d characters",
			ErrInvalidInput, domain.MinMessageLength, domain.MaxMessageLength)
	}
	return nil
}

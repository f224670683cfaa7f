package models

import (
	"errors"
	"time"

	"github.com/inkline/studio/internal/domain"
)

// ErrInvalidStatus возвращается при некорректном статусе
var ErrInvalidStatus = errors.New("invalid submission status")

// UpdateStatusRequest запрос на смену статуса обращения
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read archived"`
}

// SubmissionResponse ответ с данными обращения
type SubmissionResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Subject   *string   `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubmissionListResponse ответ со списком обращений
type SubmissionListResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
}

// FromDomainSubmissionList конвертирует список domain моделей в DTO
func FromDomainSubmissionList(list []*domain.ContactSubmission) *SubmissionListResponse {
	resp := &SubmissionListResponse{
		Submissions: make([]SubmissionResponse, 0, len(list)),
	}

	for _, s := range list {
		if s == nil {
			continue
		}
		resp.Submissions = append(resp.Submissions, SubmissionResponse{
			ID:        s.ID,
			Name:      s.Name,
			Email:     s.Email,
			Phone:     s.Phone,
			Subject:   s.Subject,
			Message:   s.Message,
			Status:    string(s.Status),
			CreatedAt: s.CreatedAt,
		})
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.SubmissionStatus с валидацией
func ToDomainStatus(status string) (domain.SubmissionStatus, error) {
	s := domain.SubmissionStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

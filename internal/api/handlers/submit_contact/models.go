package submit_contact

import (
	"strings"
	"time"

	submitContact "github.com/inkline/studio/internal/usecase/submit_contact"
)

// ContactRequest HTTP request model
type ContactRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Subject *string `json:"subject,omitempty" validate:"omitempty,max=150"`
	Message string  `json:"message" validate:"required,min=10,max=5000"`
}

// ContactResponse HTTP response model
type ContactResponse struct {
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ContactRequest) ToUseCaseRequest() *submitContact.Request {
	return &submitContact.Request{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitContact.Response) *ContactResponse {
	return &ContactResponse{
		ID:        resp.ID,
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}

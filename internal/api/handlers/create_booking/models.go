package create_booking

import (
	"strings"
	"time"

	"github.com/inkline/studio/internal/domain"
	createBooking "github.com/inkline/studio/internal/usecase/create_booking"
	"github.com/inkline/studio/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName      string  `json:"customerName" validate:"required,min=2,max=100"`
	CustomerEmail     string  `json:"customerEmail" validate:"required,email"`
	CustomerPhone     string  `json:"customerPhone" validate:"required,min=7,max=20"`
	ServiceType       string  `json:"serviceType" validate:"required,oneof=consultation flash custom cover_up touch_up"`
	Date              string  `json:"date" validate:"required,isodate"`
	StartTime         string  `json:"startTime" validate:"required,slot"`
	DurationMinutes   int     `json:"durationMinutes" validate:"omitempty,halfhour,max=480"`
	Placement         *string `json:"placement,omitempty" validate:"omitempty,max=100"`
	Size              *string `json:"size,omitempty" validate:"omitempty,max=50"`
	Description       *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	ReferenceImageURL *string `json:"referenceImageUrl,omitempty" validate:"omitempty,url"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64  `json:"id"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	ServiceType     string `json:"serviceType"`
	CreatedAt       string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerName:      strings.TrimSpace(r.CustomerName),
		CustomerEmail:     strings.TrimSpace(r.CustomerEmail),
		CustomerPhone:     strings.TrimSpace(r.CustomerPhone),
		ServiceType:       domain.ServiceType(r.ServiceType),
		Date:              date,
		StartTime:         startTime,
		DurationMinutes:   r.DurationMinutes,
		Placement:         r.Placement,
		Size:              r.Size,
		Description:       r.Description,
		ReferenceImageURL: r.ReferenceImageURL,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceType:     resp.ServiceType,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}

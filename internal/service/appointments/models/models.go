package models

import (
	"errors"
	"time"

	"github.com/inkline/studio/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidPeriod возвращается, когда начало периода позже конца
	ErrInvalidPeriod = errors.New("from must not be after to")
)

// Request модели

// ListRequest фильтр списка записей в админке
type ListRequest struct {
	Date   *string // Конкретная дата, перекрывает From/To
	From   *string
	To     *string
	Status *string
	Email  *string
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	var filter domain.AppointmentsFilter

	if r.Date != nil {
		day, err := parseDate(*r.Date)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &day
		filter.EndDate = &day
	} else {
		if r.From != nil {
			from, err := parseDate(*r.From)
			if err != nil {
				return filter, err
			}
			filter.StartDate = &from
		}
		if r.To != nil {
			to, err := parseDate(*r.To)
			if err != nil {
				return filter, err
			}
			filter.EndDate = &to
		}
		if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
			return filter, ErrInvalidPeriod
		}
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Statuses = []domain.AppointmentStatus{status}
	}

	filter.Email = r.Email

	return filter, nil
}

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID                int64    `json:"id"`
	CustomerName      string   `json:"customerName"`
	CustomerEmail     string   `json:"customerEmail"`
	CustomerPhone     string   `json:"customerPhone"`
	ServiceType       string   `json:"serviceType"`
	Date              string   `json:"date"`      // "2026-10-14"
	StartTime         string   `json:"startTime"` // "14:00"
	EndTime           string   `json:"endTime"`
	DurationMinutes   int      `json:"durationMinutes"`
	Status            string   `json:"status"`
	Placement         *string  `json:"placement,omitempty"`
	Size              *string  `json:"size,omitempty"`
	Description       *string  `json:"description,omitempty"`
	ReferenceImageURL *string  `json:"referenceImageUrl,omitempty"`
	DepositAmount     *float64 `json:"depositAmount,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// CustomerResponse клиент, собранный по email из записей
type CustomerResponse struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	AppointmentsCount int     `json:"appointmentsCount"`
	LastAppointment   string  `json:"lastAppointment"`
	TotalSpent        float64 `json:"totalSpent"`
}

// CustomerListResponse ответ со списком клиентов
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                a.ID,
		CustomerName:      a.CustomerName,
		CustomerEmail:     a.CustomerEmail,
		CustomerPhone:     a.CustomerPhone,
		ServiceType:       string(a.ServiceType),
		Date:              a.Date.Format(domain.DateFormat),
		StartTime:         a.StartTime.String(),
		DurationMinutes:   a.DurationMinutes,
		Status:            string(a.Status),
		Placement:         a.Placement,
		Size:              a.Size,
		Description:       a.Description,
		ReferenceImageURL: a.ReferenceImageURL,
		DepositAmount:     a.DepositAmount,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}

	if end, err := a.EndTime(); err == nil {
		resp.EndTime = end.String()
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if item := FromDomainAppointment(a); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}

	return resp
}

// FromDomainCustomerList конвертирует список клиентов в DTO
func FromDomainCustomerList(customers []*domain.Customer) *CustomerListResponse {
	resp := &CustomerListResponse{
		Customers: make([]CustomerResponse, 0, len(customers)),
	}

	for _, c := range customers {
		if c == nil {
			continue
		}
		resp.Customers = append(resp.Customers, CustomerResponse{
			Name:              c.Name,
			Email:             c.Email,
			Phone:             c.Phone,
			AppointmentsCount: c.AppointmentsCount,
			LastAppointment:   c.LastAppointment.Format(domain.DateFormat),
			TotalSpent:        c.TotalSpent,
		})
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

package domain

import (
	"time"

	"github.com/inkline/studio/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// ServiceType is the kind of work booked
type ServiceType string

const (
	ServiceConsultation ServiceType = "consultation"
	ServiceFlash        ServiceType = "flash"
	ServiceCustom       ServiceType = "custom"
	ServiceCoverUp      ServiceType = "cover_up"
	ServiceTouchUp      ServiceType = "touch_up"
)

// allowedTransitions граф допустимых переходов статусов
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
}

// Appointment represents a studio session booked by a customer
type Appointment struct {
	ID              int64
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ServiceType     ServiceType
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	Placement         *string
	Size              *string
	Description       *string
	ReferenceImageURL *string
	DepositAmount     *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot returns true if the appointment counts against availability
func (a *Appointment) OccupiesSlot() bool {
	return a.Status.OccupiesSlot()
}

// EndTime returns the start time shifted by the duration
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.DurationMinutes)
}

// OccupiesSlot returns true for pending and confirmed
func (s AppointmentStatus) OccupiesSlot() bool {
	for _, occupying := range OccupyingStatuses {
		if s == occupying {
			return true
		}
	}
	return false
}

// IsValid reports whether s belongs to the closed status set
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// IsFinal returns true if no further transition is possible
func (s AppointmentStatus) IsFinal() bool {
	return len(allowedTransitions[s]) == 0
}

// CanTransitionTo reports whether s may move to next
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid reports whether t belongs to the closed service set
func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceConsultation, ServiceFlash, ServiceCustom, ServiceCoverUp, ServiceTouchUp:
		return true
	}
	return false
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	StartDate *time.Time          // Начало периода (включительно), nil - без ограничения
	EndDate   *time.Time          // Конец периода (включительно), nil - без ограничения
	Statuses  []AppointmentStatus // Пусто - все статусы
	Email     *string             // Фильтр по клиенту
	Limit     uint64              // 0 - без ограничения
}

// IsSingleDay returns true if the filter selects exactly one date
func (f AppointmentsFilter) IsSingleDay() bool {
	return f.StartDate != nil && f.EndDate != nil && f.StartDate.Equal(*f.EndDate)
}

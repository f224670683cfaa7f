package create_booking

import (
	"time"

	"github.com/inkline/studio/internal/domain"
	"github.com/inkline/studio/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	ServiceType       domain.ServiceType
	Date              time.Time        // Дата сеанса (без времени)
	StartTime         types.TimeString // Время начала, например "14:30"
	DurationMinutes   int              // 0 - длительность по умолчанию
	Placement         *string
	Size              *string
	Description       *string
	ReferenceImageURL *string
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	ServiceType     string
	CreatedAt       time.Time
}

package mailer

import (
	"time"

	"github.com/inkline/studio/pkg/types"
)

// Message письмо в формате text/plain
type Message struct {
	To      string
	Subject string
	Body    string
}

// BookingNotice данные записи для уведомлений
type BookingNotice struct {
	ID              int64
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ServiceType     string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Description     string
}

// ContactNotice данные обращения для уведомления студии
type ContactNotice struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

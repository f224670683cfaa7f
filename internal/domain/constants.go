package domain

// Studio working day
const (
	SlotStepMinutes  = 30
	FirstSlotMinutes = 11 * 60 // 11:00
	LastSlotMinutes  = 19 * 60 // 19:00, last bookable start
	SlotCount        = (LastSlotMinutes-FirstSlotMinutes)/SlotStepMinutes + 1

	// Weekend starts are limited to [12:00, 17:00)
	WeekendOpenHour  = 12
	WeekendCloseHour = 17
)

// Business validation constants
const (
	DefaultDurationMinutes = 60
	MaxDurationMinutes     = 480 // 8 hours
	MaxDescriptionLength   = 2000
	MaxSubjectLength       = 150
	MinMessageLength       = 10
	MaxMessageLength       = 5000
	DefaultCurrency        = "USD"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses список статусов, которые занимают слот
// Используется при подсчёте доступных слотов
var OccupyingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

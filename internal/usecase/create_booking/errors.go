package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidTimeSlot возвращается, когда время не входит в сетку 11:00-19:00 с шагом 30 минут
	// или сеанс заканчивается после последнего слота
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrDateInPast возвращается для даты раньше сегодняшней
	ErrDateInPast = errors.New("create_booking: date is in the past")

	// ErrTooLateToBook возвращается, когда до начала сеанса меньше минимального времени
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда хотя бы один из слотов сеанса занят или закрыт
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

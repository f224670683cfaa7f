package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrDateInPast возвращается для даты раньше сегодняшней
	ErrDateInPast = errors.New("get_availability: date is in the past")

	// ErrInternal возвращается при внутренних ошибках usecase (например, недоступна БД)
	ErrInternal = errors.New("get_availability: internal error")
)
